package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/RichelleAnne09/agots-express-dashboard/gateway"
	"github.com/RichelleAnne09/agots-express-dashboard/models"
)

type fakeAnnouncementsGateway struct {
	announcements []models.Announcement
	nextID        uint
}

func (f *fakeAnnouncementsGateway) ListAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	return append([]models.Announcement(nil), f.announcements...), nil
}

func (f *fakeAnnouncementsGateway) GetAnnouncement(ctx context.Context, id uint) (models.Announcement, error) {
	for _, a := range f.announcements {
		if a.ID == id {
			return a, nil
		}
	}
	return models.Announcement{}, &gateway.NotFoundError{Message: "announcement not found"}
}

func (f *fakeAnnouncementsGateway) CreateAnnouncement(ctx context.Context, fields gateway.AnnouncementFields) (models.Announcement, error) {
	f.nextID++
	a := models.Announcement{ID: f.nextID, Title: fields.Title, Type: fields.Type, Content: fields.Content, Date: fields.Date}
	f.announcements = append(f.announcements, a)
	return a, nil
}

func (f *fakeAnnouncementsGateway) UpdateAnnouncement(ctx context.Context, id uint, fields gateway.AnnouncementFields) (models.Announcement, error) {
	for i := range f.announcements {
		if f.announcements[i].ID == id {
			f.announcements[i] = models.Announcement{ID: id, Title: fields.Title, Type: fields.Type, Content: fields.Content, Date: fields.Date}
			return f.announcements[i], nil
		}
	}
	return models.Announcement{}, &gateway.NotFoundError{Message: "announcement not found"}
}

func (f *fakeAnnouncementsGateway) DeleteAnnouncement(ctx context.Context, id uint) error {
	for i := range f.announcements {
		if f.announcements[i].ID == id {
			f.announcements = append(f.announcements[:i], f.announcements[i+1:]...)
			return nil
		}
	}
	return &gateway.NotFoundError{Message: "announcement not found"}
}

func setupAnnouncementRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewAnnouncementController(&fakeAnnouncementsGateway{})

	r := gin.New()
	r.GET("/announcements", ctrl.GetAllAnnouncements)
	r.POST("/announcements", ctrl.CreateAnnouncement)
	r.PUT("/announcements/:announcement_id", ctrl.UpdateAnnouncement)
	r.DELETE("/announcements/:announcement_id", ctrl.DeleteAnnouncement)
	return r
}

func TestAnnouncementCRUD(t *testing.T) {
	r := setupAnnouncementRouter()

	w := doJSON(r, "POST", "/announcements", map[string]string{
		"title":   "New opening hours",
		"type":    "update",
		"content": "We are now open until 10pm.",
		"date":    "2026-09-01",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, "PUT", "/announcements/1", map[string]string{
		"title":   "New opening hours",
		"type":    "update",
		"content": "We are now open until 11pm.",
		"date":    "2026-09-01",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, "GET", "/announcements", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Data []models.Announcement `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Data, 1)
	assert.Equal(t, "We are now open until 11pm.", list.Data[0].Content)

	w = doJSON(r, "DELETE", "/announcements/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, "DELETE", "/announcements/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateAnnouncementAllFieldsRequired(t *testing.T) {
	r := setupAnnouncementRouter()

	w := doJSON(r, "POST", "/announcements", map[string]string{
		"title": "Missing the rest",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Message string `json:"message"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "All fields are required", resp.Message)
}
