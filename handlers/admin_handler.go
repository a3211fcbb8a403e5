package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/themut001/timecard-web-v3/models"
	"github.com/themut001/timecard-web-v3/reporting"
	"github.com/themut001/timecard-web-v3/services/notion"
	"github.com/themut001/timecard-web-v3/timeclock"
)

type AdminHandler struct {
	DB      *gorm.DB
	Reports *reporting.Store
}

func NewAdminHandler(db *gorm.DB, reports *reporting.Store) *AdminHandler {
	return &AdminHandler{DB: db, Reports: reports}
}

// GET /api/admin/employees
func (h *AdminHandler) Employees(c echo.Context) error {
	var users []models.User
	if err := h.DB.Preload("Department").Order("employee_id ASC").Find(&users).Error; err != nil {
		return err
	}
	return respond(c, http.StatusOK, users)
}

// GET /api/admin/attendance/all?date=YYYY-MM-DD
func (h *AdminHandler) AttendanceAll(c echo.Context) error {
	date := c.QueryParam("date")
	if date == "" {
		date = timeclock.DateOf(time.Now())
	}

	var recs []models.AttendanceRecord
	if err := h.DB.Preload("User").
		Joins("JOIN users ON users.id = attendance_records.user_id").
		Where("attendance_records.date = ?", date).
		Order("users.employee_id ASC").
		Find(&recs).Error; err != nil {
		return err
	}
	return respond(c, http.StatusOK, recs)
}

type attendanceUpdateRequest struct {
	ClockIn   *time.Time `json:"clockIn"`
	ClockOut  *time.Time `json:"clockOut"`
	BreakTime int        `json:"breakTime"`
	Status    string     `json:"status"`
}

// PUT /api/admin/attendance/:id
// Admin edit of a day's stamps; total hours are recomputed when both stamps
// are present. Unlike clock-out, an absent break here means zero minutes.
func (h *AdminHandler) UpdateAttendance(c echo.Context) error {
	var rec models.AttendanceRecord
	if err := h.DB.First(&rec, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "attendance record not found")
		}
		return err
	}

	var req attendanceUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	status := rec.Status
	if req.Status != "" {
		s := timeclock.Status(req.Status)
		if !s.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid status")
		}
		status = s
	}

	var total float64
	if req.ClockIn != nil && req.ClockOut != nil {
		total = timeclock.TotalHours(*req.ClockIn, *req.ClockOut, req.BreakTime)
	}

	if err := h.DB.Model(&rec).Updates(map[string]any{
		"clock_in":    req.ClockIn,
		"clock_out":   req.ClockOut,
		"break_time":  req.BreakTime,
		"total_hours": total,
		"status":      status,
	}).Error; err != nil {
		return err
	}

	if err := h.DB.First(&rec, "id = ?", rec.ID).Error; err != nil {
		return err
	}
	return respondMsg(c, http.StatusOK, rec, "attendance record updated")
}

// GET /api/admin/reports/monthly?year=&month=
func (h *AdminHandler) MonthlyReports(c echo.Context) error {
	start, end := monthRange(c.QueryParam("year"), c.QueryParam("month"))

	sums, err := h.Reports.DepartmentSummaries(start, end)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, map[string]any{
		"period":            map[string]string{"startDate": start, "endDate": end},
		"departmentSummary": sums,
	})
}

// GET /api/admin/tags/efforts?startDate=&endDate=&userId=
func (h *AdminHandler) TagEfforts(c echo.Context) error {
	start := c.QueryParam("startDate")
	end := c.QueryParam("endDate")
	if start == "" || end == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "startDate and endDate are required")
	}
	uid := c.QueryParam("userId")

	tagTotals, err := h.Reports.TagTotals(start, end, uid)
	if err != nil {
		return err
	}
	userTotals, err := h.Reports.UserTotals(start, end, uid)
	if err != nil {
		return err
	}
	shares, grand := reporting.Percentages(tagTotals)

	return respond(c, http.StatusOK, map[string]any{
		"period":      map[string]string{"startDate": start, "endDate": end},
		"tagSummary":  shares,
		"userSummary": userTotals,
		"totalHours":  grand,
	})
}

// GET /api/admin/tags/sync-status
func (h *AdminHandler) SyncStatus(c echo.Context) error {
	var setting models.Setting
	err := h.DB.First(&setting, "key = ?", notion.SyncSettingKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return respond(c, http.StatusOK, nil)
	}
	if err != nil {
		return err
	}

	var res notion.SyncResult
	if err := json.Unmarshal([]byte(setting.Value), &res); err != nil {
		log.Printf("sync status: corrupt %s setting: %v", notion.SyncSettingKey, err)
		return respond(c, http.StatusOK, nil)
	}
	return respond(c, http.StatusOK, res)
}
