package repository

import (
	"context"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/workout-logger-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/workout-logger-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (s *Scoped) CreateRoutine(ctx context.Context, name string) (*models.Routine, error) {
	if err := s.check(); err != nil {
		return nil, err
	}

	routine := models.Routine{
		ID:      uuid.New(),
		OwnerID: s.ownerID,
		Name:    name,
	}
	if err := s.db.WithContext(ctx).Create(&routine).Error; err != nil {
		return nil, fmt.Errorf("failed to create routine: %w", err)
	}
	return &routine, nil
}

// ListRoutines returns the owner's routines, newest first.
func (s *Scoped) ListRoutines(ctx context.Context) ([]models.Routine, error) {
	if err := s.check(); err != nil {
		return nil, err
	}

	routines := []models.Routine{}
	err := s.owned(s.db.WithContext(ctx)).
		Order("created_at DESC").
		Order("id").
		Find(&routines).Error
	return routines, err
}

func (s *Scoped) GetRoutine(ctx context.Context, id uuid.UUID) (*models.Routine, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return s.findRoutine(s.db.WithContext(ctx), id)
}

func (s *Scoped) findRoutine(tx *gorm.DB, id uuid.UUID) (*models.Routine, error) {
	var routine models.Routine
	if err := s.owned(tx).First(&routine, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &routine, nil
}

// DeleteRoutine removes the routine, its exercises and their logs in one
// transaction. Nothing is deleted unless the routine belongs to the owner.
func (s *Scoped) DeleteRoutine(ctx context.Context, id uuid.UUID) error {
	if err := s.check(); err != nil {
		return err
	}

	var exerciseIDs []uuid.UUID
	return database.Atomic(ctx, s.db,
		s.deleteOwned(&models.Routine{}, id),
		func(tx *gorm.DB) error {
			return tx.Model(&models.Exercise{}).
				Where("routine_id = ?", id).
				Pluck("id", &exerciseIDs).Error
		},
		func(tx *gorm.DB) error {
			return deleteWhereIn(tx, &models.Exercise{}, "id", exerciseIDs)
		},
		func(tx *gorm.DB) error {
			return deleteWhereIn(tx, &models.WorkoutLog{}, "exercise_id", exerciseIDs)
		},
	)
}
