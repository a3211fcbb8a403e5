package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RequestTypeLeave      = "leave"
	RequestTypeOvertime   = "overtime"
	RequestTypeLate       = "late"
	RequestTypeEarlyLeave = "early_leave"

	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

// Request is an employee-submitted leave/overtime application, decided by an
// admin. ApprovedBy records the deciding user for both outcomes.
type Request struct {
	ID           string     `json:"id" gorm:"primaryKey;size:36"`
	UserID       string     `json:"userId" gorm:"size:36;not null;index"`
	Type         string     `json:"type" gorm:"size:20;not null"`
	StartDate    string     `json:"startDate" gorm:"size:10;not null"` // YYYY-MM-DD
	EndDate      string     `json:"endDate" gorm:"size:10;not null"`   // YYYY-MM-DD
	Reason       string     `json:"reason" gorm:"type:text;not null"`
	Status       string     `json:"status" gorm:"size:20;not null;default:'pending'"`
	RejectReason string     `json:"rejectReason" gorm:"type:text"`
	ApprovedAt   *time.Time `json:"approvedAt"`
	ApprovedBy   *string    `json:"approvedBy" gorm:"size:36"`
	User         *User      `json:"user,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (r *Request) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// ValidRequestType reports whether t is an accepted request type.
func ValidRequestType(t string) bool {
	switch t {
	case RequestTypeLeave, RequestTypeOvertime, RequestTypeLate, RequestTypeEarlyLeave:
		return true
	}
	return false
}
