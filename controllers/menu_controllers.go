package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/RichelleAnne09/agots-express-dashboard/gateway"
	"github.com/RichelleAnne09/agots-express-dashboard/models"
	"github.com/RichelleAnne09/agots-express-dashboard/services"
	"github.com/RichelleAnne09/agots-express-dashboard/utils"
)

type MenuController struct {
	Catalog *services.CatalogService
}

func NewMenuController(catalog *services.CatalogService) *MenuController {
	return &MenuController{Catalog: catalog}
}

// menuDraftBody is the edit-dialog payload. Price arrives as a JSON number
// but is carried as its raw text so validation can report a missing price
// instead of a bind failure.
type menuDraftBody struct {
	Name        string      `json:"name"`
	Price       json.Number `json:"price"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Group       string      `json:"group"`
}

func (b menuDraftBody) draft() models.MenuDraft {
	return models.MenuDraft{
		Name:        b.Name,
		Price:       b.Price.String(),
		Description: b.Description,
		Category:    models.Category(b.Category),
		Group:       models.Group(b.Group),
	}
}

// GetMenu lists the cached catalog. With ?group= it returns a single tab,
// filtered from the cache without mutating it.
func (mc *MenuController) GetMenu(c *gin.Context) {
	cache := mc.Catalog.Cache()

	if raw, ok := c.GetQuery("group"); ok {
		group := models.Group(raw)
		if !models.ValidGroup(group) {
			utils.RespondError(c, http.StatusBadRequest, errors.New("unknown group: "+raw))
			return
		}
		utils.RespondJSON(c, http.StatusOK, "List of menu items", cache.ViewByGroup(group))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of menu items", cache.Items())
}

// GetMenuStats returns the per-group item counts for the stats cards.
func (mc *MenuController) GetMenuStats(c *gin.Context) {
	counts := mc.Catalog.Cache().CountByGroup()

	data := make(map[string]int, len(counts)+1)
	for group, n := range counts {
		data[string(group)] = n
	}
	data["total"] = mc.Catalog.Cache().Len()

	utils.RespondJSON(c, http.StatusOK, "Menu item counts", data)
}

// GetMenuMeta returns the fixed dropdown values and the category badge
// table so the frontend renders from one canonical source.
func (mc *MenuController) GetMenuMeta(c *gin.Context) {
	badges := make(map[string]models.CategoryBadge)
	for _, category := range models.Categories() {
		if badge, ok := models.BadgeFor(category); ok {
			badges[string(category)] = badge
		}
	}

	utils.RespondJSON(c, http.StatusOK, "Menu metadata", gin.H{
		"categories": models.Categories(),
		"groups":     models.Groups(),
		"badges":     badges,
	})
}

// RefreshMenu forces a full reload from the upstream. On failure the cache
// keeps its prior contents.
func (mc *MenuController) RefreshMenu(c *gin.Context) {
	if err := mc.Catalog.Load(c.Request.Context()); err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu reloaded", mc.Catalog.Cache().Items())
}

// CreateMenuItem saves a new item through the edit pipeline.
func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	var body menuDraftBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	session := mc.Catalog.Edit(body.draft(), services.CreateMode())
	if err := session.Save(c.Request.Context()); err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Menu item saved successfully!", session.Result())
}

// UpdateMenuItem replaces an existing item's fields through the edit pipeline.
func (mc *MenuController) UpdateMenuItem(c *gin.Context) {
	id, err := parseID(c.Param("menu_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu id"))
		return
	}

	var body menuDraftBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	session := mc.Catalog.Edit(body.draft(), services.UpdateMode(id))
	if err := session.Save(c.Request.Context()); err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item saved successfully!", session.Result())
}

// DeleteMenuItem removes an item. No confirmation here; if the screen wants
// an "are you sure" step it happens before the request is made.
func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	id, err := parseID(c.Param("menu_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu id"))
		return
	}

	if err := mc.Catalog.Delete(c.Request.Context(), id); err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item deleted", nil)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	return uint(id), err
}

// statusForError maps the error taxonomy to HTTP statuses: validation and
// rejection are the caller's fault, a missing target is 404, and anything
// transport-shaped means the upstream is unreachable.
func statusForError(err error) int {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}
	var notFound *gateway.NotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, services.ErrNotInCache) {
		return http.StatusNotFound
	}
	var rejected *gateway.RejectedError
	if errors.As(err, &rejected) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadGateway
}
