package stubgateway

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type announcementPayload struct {
	Title   string `json:"title"`
	Type    string `json:"type"`
	Content string `json:"content"`
	Date    string `json:"date"`
}

func (p announcementPayload) validate() error {
	if p.Title == "" || p.Type == "" || p.Content == "" || p.Date == "" {
		return errors.New("title, type, content and date are required")
	}
	return nil
}

func (s *stubServer) listAnnouncements(c *gin.Context) {
	var records []AnnouncementRecord
	if err := s.db.Order("date desc").Find(&records).Error; err != nil {
		respondMessage(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, records)
}

func (s *stubServer) getAnnouncement(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "invalid announcement id")
		return
	}

	var record AnnouncementRecord
	if err := s.db.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondMessage(c, http.StatusNotFound, "announcement not found")
			return
		}
		respondMessage(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, record)
}

func (s *stubServer) createAnnouncement(c *gin.Context) {
	var payload announcementPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := payload.validate(); err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	record := AnnouncementRecord{
		Title:   payload.Title,
		Type:    payload.Type,
		Content: payload.Content,
		Date:    payload.Date,
	}
	if err := s.db.Create(&record).Error; err != nil {
		respondMessage(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (s *stubServer) updateAnnouncement(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "invalid announcement id")
		return
	}

	var payload announcementPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := payload.validate(); err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	var record AnnouncementRecord
	if err := s.db.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondMessage(c, http.StatusNotFound, "announcement not found")
			return
		}
		respondMessage(c, http.StatusInternalServerError, err.Error())
		return
	}

	record.Title = payload.Title
	record.Type = payload.Type
	record.Content = payload.Content
	record.Date = payload.Date

	if err := s.db.Save(&record).Error; err != nil {
		respondMessage(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, record)
}

func (s *stubServer) deleteAnnouncement(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "invalid announcement id")
		return
	}

	result := s.db.Delete(&AnnouncementRecord{}, id)
	if result.Error != nil {
		respondMessage(c, http.StatusInternalServerError, result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		respondMessage(c, http.StatusNotFound, "announcement not found")
		return
	}
	c.Status(http.StatusOK)
}
