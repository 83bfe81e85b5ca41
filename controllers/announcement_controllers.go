package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RichelleAnne09/agots-express-dashboard/gateway"
	"github.com/RichelleAnne09/agots-express-dashboard/models"
	"github.com/RichelleAnne09/agots-express-dashboard/utils"
)

// AnnouncementsGateway is the upstream contract for the announcements screen.
type AnnouncementsGateway interface {
	ListAnnouncements(ctx context.Context) ([]models.Announcement, error)
	GetAnnouncement(ctx context.Context, id uint) (models.Announcement, error)
	CreateAnnouncement(ctx context.Context, fields gateway.AnnouncementFields) (models.Announcement, error)
	UpdateAnnouncement(ctx context.Context, id uint, fields gateway.AnnouncementFields) (models.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id uint) error
}

type AnnouncementController struct {
	Gateway AnnouncementsGateway
}

func NewAnnouncementController(gw AnnouncementsGateway) *AnnouncementController {
	return &AnnouncementController{Gateway: gw}
}

type announcementBody struct {
	Title   string `json:"title"`
	Type    string `json:"type"`
	Content string `json:"content"`
	Date    string `json:"date"`
}

// validate checks the all-fields-required rule of the announcements form.
func (b announcementBody) validate() error {
	if b.Title == "" || b.Type == "" || b.Content == "" || b.Date == "" {
		return errors.New("All fields are required")
	}
	return nil
}

func (b announcementBody) fields() gateway.AnnouncementFields {
	return gateway.AnnouncementFields{
		Title:   b.Title,
		Type:    b.Type,
		Content: b.Content,
		Date:    b.Date,
	}
}

func (ac *AnnouncementController) GetAllAnnouncements(c *gin.Context) {
	announcements, err := ac.Gateway.ListAnnouncements(c.Request.Context())
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of announcements", announcements)
}

func (ac *AnnouncementController) GetAnnouncement(c *gin.Context) {
	id, err := parseID(c.Param("announcement_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid announcement id"))
		return
	}

	announcement, err := ac.Gateway.GetAnnouncement(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Announcement detail", announcement)
}

func (ac *AnnouncementController) CreateAnnouncement(c *gin.Context) {
	var body announcementBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := body.validate(); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	announcement, err := ac.Gateway.CreateAnnouncement(c.Request.Context(), body.fields())
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Announcement created", announcement)
}

func (ac *AnnouncementController) UpdateAnnouncement(c *gin.Context) {
	id, err := parseID(c.Param("announcement_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid announcement id"))
		return
	}

	var body announcementBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := body.validate(); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	announcement, err := ac.Gateway.UpdateAnnouncement(c.Request.Context(), id, body.fields())
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Announcement updated", announcement)
}

func (ac *AnnouncementController) DeleteAnnouncement(c *gin.Context) {
	id, err := parseID(c.Param("announcement_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid announcement id"))
		return
	}

	if err := ac.Gateway.DeleteAnnouncement(c.Request.Context(), id); err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Announcement deleted", nil)
}
