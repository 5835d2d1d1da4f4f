package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Exercise belongs to a Routine. OrderPosition is only meaningful among
// siblings of the same routine and is not unique.
type Exercise struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RoutineID     uuid.UUID `gorm:"type:uuid;not null;index:idx_exercises_routine_order,priority:1" json:"routineId"`
	OwnerID       string    `gorm:"size:128;not null;index" json:"ownerId"`
	Name          string    `gorm:"size:200;not null" json:"name"`
	TotalSets     int       `gorm:"not null" json:"totalSets"`
	OrderPosition int       `gorm:"not null;default:0;index:idx_exercises_routine_order,priority:2" json:"orderPosition"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (e *Exercise) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

func (Exercise) TableName() string {
	return "exercises"
}
