package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/themut001/timecard-web-v3/models"
	"github.com/themut001/timecard-web-v3/timeclock"
)

type AttendanceHandler struct {
	DB *gorm.DB
}

func NewAttendanceHandler(db *gorm.DB) *AttendanceHandler {
	return &AttendanceHandler{DB: db}
}

func (h *AttendanceHandler) todayRecord(uid string, now time.Time) (*models.AttendanceRecord, error) {
	var rec models.AttendanceRecord
	err := h.DB.Where("user_id = ? AND date = ?", uid, timeclock.DateOf(now)).First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// GET /api/attendance/today
func (h *AttendanceHandler) Today(c echo.Context) error {
	rec, err := h.todayRecord(userID(c), time.Now())
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return respond(c, http.StatusOK, nil)
	}
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, rec)
}

// POST /api/attendance/clock-in
func (h *AttendanceHandler) ClockIn(c echo.Context) error {
	now := time.Now()
	uid := userID(c)

	rec, err := h.todayRecord(uid, now)
	switch {
	case err == nil:
		if rec.ClockIn != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "already clocked in today")
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		rec = &models.AttendanceRecord{UserID: uid, Date: timeclock.DateOf(now)}
	default:
		return err
	}

	status := timeclock.ClockInStatus(now)
	rec.ClockIn = &now
	rec.Status = status
	if err := h.DB.Save(rec).Error; err != nil {
		// two racing first stamps: the loser hits the (user_id, date) index
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return echo.NewHTTPError(http.StatusBadRequest, "already clocked in today")
		}
		return err
	}

	msg := "clocked in"
	if status == timeclock.StatusLate {
		msg = "clocked in (late)"
	}
	return respondMsg(c, http.StatusOK, rec, msg)
}

// POST /api/attendance/clock-out
func (h *AttendanceHandler) ClockOut(c echo.Context) error {
	now := time.Now()

	rec, err := h.todayRecord(userID(c), now)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusBadRequest, "not clocked in yet")
	}
	if err != nil {
		return err
	}
	if rec.ClockIn == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "not clocked in yet")
	}
	if rec.ClockOut != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "already clocked out today")
	}

	breakMin := rec.BreakTime
	if breakMin <= 0 {
		breakMin = timeclock.DefaultBreakMinutes
	}

	rec.ClockOut = &now
	rec.TotalHours = timeclock.TotalHours(*rec.ClockIn, now, breakMin)
	rec.Status = timeclock.ClockOutStatus(rec.Status, now)
	if err := h.DB.Save(rec).Error; err != nil {
		return err
	}

	msg := "clocked out"
	if rec.Status == timeclock.StatusEarlyLeave {
		msg = "clocked out (early leave)"
	}
	return respondMsg(c, http.StatusOK, rec, msg)
}

// GET /api/attendance/history?year=&month=
func (h *AttendanceHandler) History(c echo.Context) error {
	start, end := monthRange(c.QueryParam("year"), c.QueryParam("month"))

	var recs []models.AttendanceRecord
	if err := h.DB.Where("user_id = ? AND date >= ? AND date <= ?", userID(c), start, end).
		Order("date DESC").Find(&recs).Error; err != nil {
		return err
	}
	return respond(c, http.StatusOK, recs)
}

type attendanceSummary struct {
	TotalDays    int     `json:"totalDays"`
	PresentDays  int     `json:"presentDays"`
	AbsentDays   int     `json:"absentDays"`
	LateDays     int     `json:"lateDays"`
	TotalHours   float64 `json:"totalHours"`
	AverageHours float64 `json:"averageHours"`
}

// GET /api/attendance/summary?year=&month=
func (h *AttendanceHandler) Summary(c echo.Context) error {
	start, end := monthRange(c.QueryParam("year"), c.QueryParam("month"))

	var recs []models.AttendanceRecord
	if err := h.DB.Where("user_id = ? AND date >= ? AND date <= ?", userID(c), start, end).
		Find(&recs).Error; err != nil {
		return err
	}

	sum := attendanceSummary{TotalDays: len(recs)}
	for _, r := range recs {
		switch r.Status {
		case timeclock.StatusPresent:
			sum.PresentDays++
		case timeclock.StatusAbsent:
			sum.AbsentDays++
		case timeclock.StatusLate:
			sum.LateDays++
		case timeclock.StatusEarlyLeave:
			// counted in totals only
		}
		sum.TotalHours += r.TotalHours
	}
	if sum.TotalDays > 0 {
		sum.AverageHours = sum.TotalHours / float64(sum.TotalDays)
	}
	return respond(c, http.StatusOK, sum)
}
