package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/themut001/timecard-web-v3/models"
	"github.com/themut001/timecard-web-v3/services/notion"
)

type TagHandler struct {
	DB     *gorm.DB
	Syncer *notion.Syncer // nil when Notion credentials are not configured
}

func NewTagHandler(db *gorm.DB, syncer *notion.Syncer) *TagHandler {
	return &TagHandler{DB: db, Syncer: syncer}
}

// GET /api/tags
func (h *TagHandler) List(c echo.Context) error {
	var tags []models.Tag
	if err := h.DB.Order("name ASC").Find(&tags).Error; err != nil {
		return err
	}
	return respond(c, http.StatusOK, tags)
}

// GET /api/tags/active
func (h *TagHandler) Active(c echo.Context) error {
	var tags []models.Tag
	if err := h.DB.Where("is_active = ?", true).Order("name ASC").Find(&tags).Error; err != nil {
		return err
	}
	return respond(c, http.StatusOK, tags)
}

// GET /api/tags/search?q=keyword
func (h *TagHandler) Search(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "search query is required")
	}

	var tags []models.Tag
	if err := h.DB.Where("is_active = ?", true).
		Where("name ILIKE ?", "%"+q+"%").
		Order("name ASC").Limit(50).Find(&tags).Error; err != nil {
		return err
	}
	return respond(c, http.StatusOK, tags)
}

// POST /api/tags/sync (admin)
func (h *TagHandler) Sync(c echo.Context) error {
	if h.Syncer == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "notion integration is not configured")
	}

	res, err := h.Syncer.Run(c.Request().Context())
	if err != nil {
		log.Printf("notion sync failed: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to sync tags from Notion")
	}
	return respondMsg(c, http.StatusOK, res,
		fmt.Sprintf("tag sync completed (%d new, %d updated)", res.NewTags, res.UpdatedTags))
}
