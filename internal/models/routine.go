package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Routine is a named group of exercises owned by one subject.
type Routine struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID   string    `gorm:"size:128;not null;index:idx_routines_owner_name,priority:1" json:"ownerId"`
	Name      string    `gorm:"size:200;not null;index:idx_routines_owner_name,priority:2" json:"name"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

func (r *Routine) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (Routine) TableName() string {
	return "routines"
}
