package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/themut001/timecard-web-v3/models"
)

type RequestHandler struct {
	DB *gorm.DB
}

func NewRequestHandler(db *gorm.DB) *RequestHandler {
	return &RequestHandler{DB: db}
}

type requestCreateRequest struct {
	Type      string `json:"type" validate:"required"`
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate" validate:"required"`
	Reason    string `json:"reason" validate:"required"`
}

// POST /api/requests
func (h *RequestHandler) Create(c echo.Context) error {
	var req requestCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if !models.ValidRequestType(req.Type) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request type")
	}
	if req.EndDate < req.StartDate {
		return echo.NewHTTPError(http.StatusBadRequest, "endDate must not be before startDate")
	}

	row := models.Request{
		UserID:    userID(c),
		Type:      req.Type,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    strings.TrimSpace(req.Reason),
		Status:    models.RequestStatusPending,
	}
	if err := h.DB.Create(&row).Error; err != nil {
		return err
	}
	return respondMsg(c, http.StatusCreated, row, "request submitted")
}

// GET /api/requests/mine
func (h *RequestHandler) Mine(c echo.Context) error {
	var rows []models.Request
	if err := h.DB.Where("user_id = ?", userID(c)).
		Order("created_at DESC").Find(&rows).Error; err != nil {
		return err
	}
	return respond(c, http.StatusOK, rows)
}

// GET /api/admin/requests?status=&type=&userId=&page=&size=
func (h *RequestHandler) List(c echo.Context) error {
	page := atoiOr(c.QueryParam("page"), 1)
	size := atoiOr(c.QueryParam("size"), 20)
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 20
	}

	tx := h.DB.Model(&models.Request{}).Preload("User")
	if status := c.QueryParam("status"); status != "" {
		tx = tx.Where("status = ?", status)
	}
	if typ := c.QueryParam("type"); typ != "" {
		tx = tx.Where("type = ?", typ)
	}
	if uid := c.QueryParam("userId"); uid != "" {
		tx = tx.Where("user_id = ?", uid)
	}

	var rows []models.Request
	if err := tx.Order("created_at DESC").
		Offset((page - 1) * size).Limit(size).Find(&rows).Error; err != nil {
		return err
	}
	return respond(c, http.StatusOK, rows)
}

// GET /api/admin/requests/pending-count
func (h *RequestHandler) PendingCount(c echo.Context) error {
	var n int64
	if err := h.DB.Model(&models.Request{}).
		Where("status = ?", models.RequestStatusPending).Count(&n).Error; err != nil {
		return err
	}
	return respond(c, http.StatusOK, map[string]any{"count": n})
}

type requestDecisionRequest struct {
	RejectReason string `json:"rejectReason"`
}

// POST /api/admin/requests/:id/approve
func (h *RequestHandler) Approve(c echo.Context) error {
	return h.decide(c, models.RequestStatusApproved, "")
}

// POST /api/admin/requests/:id/reject
func (h *RequestHandler) Reject(c echo.Context) error {
	var body requestDecisionRequest
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(body.RejectReason) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "reject reason is required")
	}
	return h.decide(c, models.RequestStatusRejected, strings.TrimSpace(body.RejectReason))
}

func (h *RequestHandler) decide(c echo.Context, status, rejectReason string) error {
	var row models.Request
	if err := h.DB.First(&row, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "request not found")
		}
		return err
	}
	if row.Status != models.RequestStatusPending {
		return echo.NewHTTPError(http.StatusBadRequest, "request has already been decided")
	}

	now := time.Now()
	decider := userID(c)
	if err := h.DB.Model(&row).Updates(map[string]any{
		"status":        status,
		"reject_reason": rejectReason,
		"approved_at":   &now,
		"approved_by":   &decider,
	}).Error; err != nil {
		return err
	}

	msg := "request approved"
	if status == models.RequestStatusRejected {
		msg = "request rejected"
	}
	return respondMsg(c, http.StatusOK, row, msg)
}
