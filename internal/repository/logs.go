package repository

import (
	"context"
	"time"

	"github.com/ahmetcoskunkizilkaya/workout-logger-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/workout-logger-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/workout-logger-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NewLog struct {
	ExerciseID uuid.UUID
	Weight     float64
	Reps       int
	Date       time.Time
	Notes      string
}

// CreateLog records a set against one of the owner's exercises, copying the
// exercise's current totalSets onto the log.
func (s *Scoped) CreateLog(ctx context.Context, in NewLog) (*models.WorkoutLog, error) {
	if err := s.check(); err != nil {
		return nil, err
	}

	log := models.WorkoutLog{
		ID:         uuid.New(),
		ExerciseID: in.ExerciseID,
		OwnerID:    s.ownerID,
		Weight:     in.Weight,
		Reps:       in.Reps,
		Date:       in.Date,
		Notes:      in.Notes,
	}

	err := database.Atomic(ctx, s.db,
		func(tx *gorm.DB) error {
			exercise, err := s.findExercise(tx, in.ExerciseID)
			if err != nil {
				return err
			}
			log.TotalSets = exercise.TotalSets
			return nil
		},
		func(tx *gorm.DB) error {
			return tx.Create(&log).Error
		},
	)
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// ListLogs returns every log of the owner, oldest first.
func (s *Scoped) ListLogs(ctx context.Context) ([]models.WorkoutLog, error) {
	if err := s.check(); err != nil {
		return nil, err
	}

	logs := []models.WorkoutLog{}
	err := s.owned(s.db.WithContext(ctx)).
		Order("date ASC").
		Order("id").
		Find(&logs).Error
	return logs, err
}

// ListLogsForExercise returns the owner's logs of one exercise, oldest first.
func (s *Scoped) ListLogsForExercise(ctx context.Context, exerciseID uuid.UUID) ([]models.WorkoutLog, error) {
	if err := s.check(); err != nil {
		return nil, err
	}

	logs := []models.WorkoutLog{}
	err := s.owned(s.db.WithContext(ctx)).
		Where("exercise_id = ?", exerciseID).
		Order("date ASC").
		Order("id").
		Find(&logs).Error
	return logs, err
}

func (s *Scoped) Progress(ctx context.Context, exerciseID uuid.UUID) ([]dto.ProgressPoint, error) {
	logs, err := s.ListLogsForExercise(ctx, exerciseID)
	if err != nil {
		return nil, err
	}

	points := make([]dto.ProgressPoint, len(logs))
	for i, l := range logs {
		points[i] = dto.ProgressPoint{Date: l.Date, Weight: l.Weight, Reps: l.Reps}
	}
	return points, nil
}

func (s *Scoped) GetLog(ctx context.Context, id uuid.UUID) (*models.WorkoutLog, error) {
	if err := s.check(); err != nil {
		return nil, err
	}

	var log models.WorkoutLog
	if err := s.owned(s.db.WithContext(ctx)).First(&log, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &log, nil
}

// DeleteLog removes a single log of the owner.
func (s *Scoped) DeleteLog(ctx context.Context, id uuid.UUID) error {
	if err := s.check(); err != nil {
		return err
	}
	return database.Atomic(ctx, s.db, s.deleteOwned(&models.WorkoutLog{}, id))
}
