package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Department is mostly static reference data; ManagerID points at the user
// responsible for it (linked in code, not as a DB constraint, to avoid a
// circular users<->departments dependency at migration time).
type Department struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Name      string    `json:"name" gorm:"uniqueIndex;size:120;not null"`
	ManagerID string    `json:"managerId" gorm:"size:36"`
	CreatedAt time.Time `json:"createdAt"`
}

func (d *Department) BeforeCreate(*gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
