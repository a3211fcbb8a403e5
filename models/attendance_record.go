package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/themut001/timecard-web-v3/timeclock"
)

// AttendanceRecord is one row per user per calendar day. The composite unique
// index enforces the one-record-per-day invariant at the database level.
type AttendanceRecord struct {
	ID         string           `json:"id" gorm:"primaryKey;size:36"`
	UserID     string           `json:"userId" gorm:"size:36;not null;uniqueIndex:idx_attendance_user_date"`
	Date       string           `json:"date" gorm:"size:10;not null;uniqueIndex:idx_attendance_user_date"` // YYYY-MM-DD
	ClockIn    *time.Time       `json:"clockIn"`
	ClockOut   *time.Time       `json:"clockOut"`
	BreakTime  int              `json:"breakTime" gorm:"not null;default:0"` // minutes
	TotalHours float64          `json:"totalHours" gorm:"not null;default:0"`
	Status     timeclock.Status `json:"status" gorm:"size:20;not null"`
	User       *User            `json:"user,omitempty"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

func (r *AttendanceRecord) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
