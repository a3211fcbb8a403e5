package models

import "time"

// Setting is a generic key/value row; values are opaque JSON blobs owned by
// whoever writes the key.
type Setting struct {
	Key       string    `json:"key" gorm:"primaryKey;size:64"`
	Value     string    `json:"value" gorm:"type:text;not null"`
	UpdatedAt time.Time `json:"updatedAt"`
}
