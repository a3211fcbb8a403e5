package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

type User struct {
	ID           string      `json:"id" gorm:"primaryKey;size:36"`
	EmployeeID   string      `json:"employeeId" gorm:"uniqueIndex;size:20;not null"`
	Name         string      `json:"name" gorm:"size:120;not null"`
	Email        string      `json:"email" gorm:"uniqueIndex;size:120;not null"`
	PasswordHash string      `json:"-" gorm:"not null"` // bcrypt hash
	Role         string      `json:"role" gorm:"size:20;not null;default:'employee'"` // "employee" | "admin"
	DepartmentID string      `json:"departmentId" gorm:"size:36;index"`
	Department   *Department `json:"department,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
