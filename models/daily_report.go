package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyReport is one free-text report per user per day plus its per-tag hour
// breakdown. TagEfforts live and die with the report: updates replace the
// whole set inside one transaction rather than diffing rows.
type DailyReport struct {
	ID          string      `json:"id" gorm:"primaryKey;size:36"`
	UserID      string      `json:"userId" gorm:"size:36;not null;uniqueIndex:idx_report_user_date"`
	Date        string      `json:"date" gorm:"size:10;not null;uniqueIndex:idx_report_user_date"` // YYYY-MM-DD
	WorkContent string      `json:"workContent" gorm:"type:text;not null"`
	Notes       string      `json:"notes" gorm:"type:text"`
	TotalHours  float64     `json:"totalHours" gorm:"not null;default:0"`
	TagEfforts  []TagEffort `json:"tagEfforts" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func (r *DailyReport) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

type TagEffort struct {
	ID            string    `json:"id" gorm:"primaryKey;size:36"`
	DailyReportID string    `json:"dailyReportId" gorm:"size:36;not null;index"`
	TagID         string    `json:"tagId" gorm:"size:36;not null;index"`
	Hours         float64   `json:"hours" gorm:"not null"`
	Tag           *Tag      `json:"tag,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (e *TagEffort) BeforeCreate(*gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
