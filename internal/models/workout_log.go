package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkoutLog records one performed set of an Exercise. TotalSets is copied
// from the exercise when the log is created and never follows later edits.
type WorkoutLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ExerciseID uuid.UUID `gorm:"type:uuid;not null;index" json:"exerciseId"`
	OwnerID    string    `gorm:"size:128;not null;index:idx_workout_logs_owner_date,priority:1" json:"ownerId"`
	Weight     float64   `gorm:"not null" json:"weight"`
	Reps       int       `gorm:"not null" json:"reps"`
	TotalSets  int       `json:"totalSets"`
	Date       time.Time `gorm:"not null;index:idx_workout_logs_owner_date,priority:2" json:"date"`
	Notes      string    `gorm:"type:text" json:"notes"`
}

func (l *WorkoutLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

func (WorkoutLog) TableName() string {
	return "workout_logs"
}
