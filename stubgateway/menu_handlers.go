package stubgateway

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// menuPayload is the create/update body. The dashboard normalizes the
// "None" sentinel before it gets here, so category is either null or one of
// the real tags.
type menuPayload struct {
	Name        string  `json:"name"`
	Category    *string `json:"category"`
	Price       int     `json:"price"`
	Description *string `json:"description"`
	Group       string  `json:"group"`
}

// validate re-checks what the real upstream would.
func (p menuPayload) validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	if p.Price <= 0 {
		return errors.New("price must be a positive number")
	}
	if p.Group == "" {
		return errors.New("group is required")
	}
	if p.Category != nil && *p.Category == "None" {
		return errors.New(`category must be null, not "None"`)
	}
	return nil
}

func respondMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

func (s *stubServer) listMenu(c *gin.Context) {
	var records []MenuRecord
	if err := s.db.Order("id").Find(&records).Error; err != nil {
		respondMessage(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, records)
}

func (s *stubServer) createMenu(c *gin.Context) {
	var payload menuPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := payload.validate(); err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	record := MenuRecord{
		Name:        payload.Name,
		Category:    payload.Category,
		Price:       payload.Price,
		Description: payload.Description,
		Group:       payload.Group,
	}
	if err := s.db.Create(&record).Error; err != nil {
		respondMessage(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (s *stubServer) updateMenu(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "invalid menu id")
		return
	}

	var payload menuPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := payload.validate(); err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	var record MenuRecord
	if err := s.db.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondMessage(c, http.StatusNotFound, "menu item not found")
			return
		}
		respondMessage(c, http.StatusInternalServerError, err.Error())
		return
	}

	// Full replace of the mutable fields.
	record.Name = payload.Name
	record.Category = payload.Category
	record.Price = payload.Price
	record.Description = payload.Description
	record.Group = payload.Group

	if err := s.db.Save(&record).Error; err != nil {
		respondMessage(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, record)
}

func (s *stubServer) deleteMenu(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "invalid menu id")
		return
	}

	result := s.db.Delete(&MenuRecord{}, id)
	if result.Error != nil {
		respondMessage(c, http.StatusInternalServerError, result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		respondMessage(c, http.StatusNotFound, "menu item not found")
		return
	}
	c.Status(http.StatusOK)
}
