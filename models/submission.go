package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Submission is one accepted diagnostic-form submission. The full form payload
// is kept as-is in Fields; UserEmail is duplicated into its own column so the
// database can enforce one submission per address.
type Submission struct {
	Id        string         `json:"id" gorm:"primaryKey"`
	UserEmail string         `json:"user_email" gorm:"uniqueIndex;not null"`
	Fields    datatypes.JSON `json:"fields" gorm:"type:jsonb"`
	CreatedAt time.Time      `json:"created_at"`
}

func (s *Submission) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	s.Id = uuid.NewString()
	return
}
