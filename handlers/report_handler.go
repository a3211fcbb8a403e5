package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/themut001/timecard-web-v3/models"
	"github.com/themut001/timecard-web-v3/reporting"
)

// maxDailyEffortHours caps the summed tag efforts of one report. Business
// rule, checked before any row is written.
const maxDailyEffortHours = 8

type ReportHandler struct {
	DB      *gorm.DB
	Reports *reporting.Store
}

func NewReportHandler(db *gorm.DB, reports *reporting.Store) *ReportHandler {
	return &ReportHandler{DB: db, Reports: reports}
}

type tagEffortInput struct {
	TagID string  `json:"tagId"`
	Hours float64 `json:"hours"`
}

type dailyReportRequest struct {
	Date        string           `json:"date"`
	WorkContent string           `json:"workContent"`
	Notes       string           `json:"notes"`
	TagEfforts  []tagEffortInput `json:"tagEfforts"`
}

func effortTotal(efforts []tagEffortInput) float64 {
	var total float64
	for _, e := range efforts {
		total += e.Hours
	}
	return total
}

func createEfforts(tx *gorm.DB, reportID string, inputs []tagEffortInput) error {
	if len(inputs) == 0 {
		return nil
	}
	efforts := make([]models.TagEffort, len(inputs))
	for i, in := range inputs {
		efforts[i] = models.TagEffort{DailyReportID: reportID, TagID: in.TagID, Hours: in.Hours}
	}
	return tx.Create(&efforts).Error
}

func (h *ReportHandler) load(id string) (*models.DailyReport, error) {
	var report models.DailyReport
	err := h.DB.Preload("TagEfforts.Tag").First(&report, "id = ?", id).Error
	return &report, err
}

// GET /api/reports/daily?date=YYYY-MM-DD
func (h *ReportHandler) Get(c echo.Context) error {
	date := c.QueryParam("date")
	if date == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "date is required")
	}

	var report models.DailyReport
	err := h.DB.Preload("TagEfforts.Tag").
		Where("user_id = ? AND date = ?", userID(c), date).First(&report).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return respond(c, http.StatusOK, nil)
	}
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, report)
}

// POST /api/reports/daily
func (h *ReportHandler) Create(c echo.Context) error {
	var req dailyReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Date == "" || req.WorkContent == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "date and work content are required")
	}
	total := effortTotal(req.TagEfforts)
	if total > maxDailyEffortHours {
		return echo.NewHTTPError(http.StatusBadRequest, "total effort hours must not exceed 8")
	}

	uid := userID(c)
	report := models.DailyReport{
		UserID:      uid,
		Date:        req.Date,
		WorkContent: req.WorkContent,
		Notes:       req.Notes,
		TotalHours:  total,
	}
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&report).Error; err != nil {
			return err
		}
		return createEfforts(tx, report.ID, req.TagEfforts)
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return echo.NewHTTPError(http.StatusBadRequest, "a report for this date already exists")
	}
	if err != nil {
		return err
	}

	saved, err := h.load(report.ID)
	if err != nil {
		return err
	}
	return respondMsg(c, http.StatusCreated, saved, "report saved")
}

// PUT /api/reports/daily/:id
func (h *ReportHandler) Update(c echo.Context) error {
	var req dailyReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.WorkContent == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "work content is required")
	}
	total := effortTotal(req.TagEfforts)
	if total > maxDailyEffortHours {
		return echo.NewHTTPError(http.StatusBadRequest, "total effort hours must not exceed 8")
	}

	var report models.DailyReport
	if err := h.DB.First(&report, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "report not found")
		}
		return err
	}
	if report.UserID != userID(c) {
		return echo.NewHTTPError(http.StatusForbidden, "not allowed to edit this report")
	}

	// full replace of the effort rows keeps the set consistent with the form
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("daily_report_id = ?", report.ID).Delete(&models.TagEffort{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&report).Updates(map[string]any{
			"work_content": req.WorkContent,
			"notes":        req.Notes,
			"total_hours":  total,
		}).Error; err != nil {
			return err
		}
		return createEfforts(tx, report.ID, req.TagEfforts)
	})
	if err != nil {
		return err
	}

	saved, err := h.load(report.ID)
	if err != nil {
		return err
	}
	return respondMsg(c, http.StatusOK, saved, "report updated")
}

// GET /api/reports/daily/list?startDate=&endDate=&limit=
func (h *ReportHandler) List(c echo.Context) error {
	limit := atoiOr(c.QueryParam("limit"), 30)
	if limit < 1 || limit > 100 {
		limit = 30
	}

	tx := h.DB.Preload("TagEfforts.Tag").Where("user_id = ?", userID(c))
	start := c.QueryParam("startDate")
	end := c.QueryParam("endDate")
	if start != "" && end != "" {
		tx = tx.Where("date >= ? AND date <= ?", start, end)
	}

	var reports []models.DailyReport
	if err := tx.Order("date DESC").Limit(limit).Find(&reports).Error; err != nil {
		return err
	}
	return respond(c, http.StatusOK, reports)
}

// GET /api/efforts/summary?startDate=&endDate=
// Per-tag hour shares for the calling user over the range.
func (h *ReportHandler) EffortSummary(c echo.Context) error {
	start := c.QueryParam("startDate")
	end := c.QueryParam("endDate")
	if start == "" || end == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "startDate and endDate are required")
	}

	totals, err := h.Reports.TagTotals(start, end, userID(c))
	if err != nil {
		return err
	}
	shares, _ := reporting.Percentages(totals)
	return respond(c, http.StatusOK, shares)
}
