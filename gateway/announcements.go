package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/RichelleAnne09/agots-express-dashboard/models"
)

const announcementsPath = "/api/announcements"

// AnnouncementFields is the create/update payload for an announcement.
type AnnouncementFields struct {
	Title   string `json:"title"`
	Type    string `json:"type"`
	Content string `json:"content"`
	Date    string `json:"date"`
}

// ListAnnouncements fetches every announcement.
func (c *Client) ListAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	var announcements []models.Announcement
	if err := c.do(ctx, http.MethodGet, announcementsPath, nil, &announcements); err != nil {
		return nil, err
	}
	return announcements, nil
}

// GetAnnouncement fetches one announcement by id.
func (c *Client) GetAnnouncement(ctx context.Context, id uint) (models.Announcement, error) {
	var a models.Announcement
	path := fmt.Sprintf("%s/%d", announcementsPath, id)
	if err := c.do(ctx, http.MethodGet, path, nil, &a); err != nil {
		return models.Announcement{}, err
	}
	return a, nil
}

// CreateAnnouncement creates a new announcement.
func (c *Client) CreateAnnouncement(ctx context.Context, fields AnnouncementFields) (models.Announcement, error) {
	var a models.Announcement
	if err := c.do(ctx, http.MethodPost, announcementsPath, fields, &a); err != nil {
		return models.Announcement{}, err
	}
	return a, nil
}

// UpdateAnnouncement replaces an existing announcement.
func (c *Client) UpdateAnnouncement(ctx context.Context, id uint, fields AnnouncementFields) (models.Announcement, error) {
	var a models.Announcement
	path := fmt.Sprintf("%s/%d", announcementsPath, id)
	if err := c.do(ctx, http.MethodPut, path, fields, &a); err != nil {
		return models.Announcement{}, err
	}
	return a, nil
}

// DeleteAnnouncement removes an announcement.
func (c *Client) DeleteAnnouncement(ctx context.Context, id uint) error {
	path := fmt.Sprintf("%s/%d", announcementsPath, id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
