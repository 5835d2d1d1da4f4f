package repository

import (
	"context"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/workout-logger-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/workout-logger-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/workout-logger-backend/internal/models"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"gorm.io/gorm"
)

// CreateExercise appends an exercise to one of the owner's routines. The
// routine lookup is the authorization check: a routine that is missing or
// belongs to someone else yields ErrNotFound and nothing is written.
func (s *Scoped) CreateExercise(ctx context.Context, routineID uuid.UUID, name string, totalSets int) (*models.Exercise, error) {
	if err := s.check(); err != nil {
		return nil, err
	}

	exercise := models.Exercise{
		ID:        uuid.New(),
		RoutineID: routineID,
		OwnerID:   s.ownerID,
		Name:      name,
		TotalSets: totalSets,
	}

	err := database.Atomic(ctx, s.db,
		func(tx *gorm.DB) error {
			_, err := s.findRoutine(tx, routineID)
			return err
		},
		func(tx *gorm.DB) error {
			next, err := nextPosition(tx, routineID)
			exercise.OrderPosition = next
			return err
		},
		func(tx *gorm.DB) error {
			return tx.Create(&exercise).Error
		},
	)
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

// nextPosition places a new exercise after every existing sibling.
func nextPosition(tx *gorm.DB, routineID uuid.UUID) (int, error) {
	var next int
	err := tx.Model(&models.Exercise{}).
		Where("routine_id = ?", routineID).
		Select("COALESCE(MAX(order_position), -1) + 1").
		Scan(&next).Error
	if err != nil {
		return 0, fmt.Errorf("failed to compute order position: %w", err)
	}
	return next, nil
}

// ListExercises returns a routine's exercises by orderPosition. Equal
// positions keep insertion order.
func (s *Scoped) ListExercises(ctx context.Context, routineID uuid.UUID) ([]models.Exercise, error) {
	if err := s.check(); err != nil {
		return nil, err
	}

	exercises := []models.Exercise{}
	err := s.owned(s.db.WithContext(ctx)).
		Where("routine_id = ?", routineID).
		Order("order_position ASC").
		Order("created_at ASC").
		Order("id").
		Find(&exercises).Error
	return exercises, err
}

func (s *Scoped) GetExercise(ctx context.Context, id uuid.UUID) (*models.Exercise, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return s.findExercise(s.db.WithContext(ctx), id)
}

func (s *Scoped) findExercise(tx *gorm.DB, id uuid.UUID) (*models.Exercise, error) {
	var exercise models.Exercise
	if err := s.owned(tx).First(&exercise, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &exercise, nil
}

// ExerciseChanges lists the editable fields of an exercise; nil means keep.
type ExerciseChanges struct {
	Name      *string
	TotalSets *int
}

// UpdateExercise edits an exercise in place. Logs already written keep the
// totalSets they were created with.
func (s *Scoped) UpdateExercise(ctx context.Context, id uuid.UUID, changes ExerciseChanges) (*models.Exercise, error) {
	if err := s.check(); err != nil {
		return nil, err
	}

	var exercise *models.Exercise
	err := database.Atomic(ctx, s.db,
		func(tx *gorm.DB) error {
			var err error
			exercise, err = s.findExercise(tx, id)
			return err
		},
		func(tx *gorm.DB) error {
			updates := map[string]interface{}{}
			if changes.Name != nil {
				updates["name"] = *changes.Name
				exercise.Name = *changes.Name
			}
			if changes.TotalSets != nil {
				updates["total_sets"] = *changes.TotalSets
				exercise.TotalSets = *changes.TotalSets
			}
			if len(updates) == 0 {
				return nil
			}
			return s.owned(tx.Model(&models.Exercise{})).Where("id = ?", id).Updates(updates).Error
		},
	)
	if err != nil {
		return nil, err
	}
	return exercise, nil
}

// DeleteExercise removes the exercise and all of its logs in one
// transaction.
func (s *Scoped) DeleteExercise(ctx context.Context, id uuid.UUID) error {
	if err := s.check(); err != nil {
		return err
	}

	return database.Atomic(ctx, s.db,
		s.deleteOwned(&models.Exercise{}, id),
		func(tx *gorm.DB) error {
			return deleteWhereIn(tx, &models.WorkoutLog{}, "exercise_id", []uuid.UUID{id})
		},
	)
}

// ReorderExercises sets orderPosition for each item whose exercise belongs
// to routineID and to the owner. Items pointing elsewhere match nothing and
// are skipped. Updates are independent: a failed item does not undo the
// others, and all failures are returned together.
func (s *Scoped) ReorderExercises(ctx context.Context, routineID uuid.UUID, items []dto.ReorderItem) (int64, error) {
	if err := s.check(); err != nil {
		return 0, err
	}

	var (
		updated int64
		result  *multierror.Error
	)
	for _, item := range items {
		exerciseID, err := uuid.Parse(item.ExerciseID)
		if err != nil {
			continue
		}
		res := s.owned(s.db.WithContext(ctx).Model(&models.Exercise{})).
			Where("id = ? AND routine_id = ?", exerciseID, routineID).
			Update("order_position", item.Order)
		if res.Error != nil {
			result = multierror.Append(result, fmt.Errorf("exercise %s: %w", exerciseID, res.Error))
			continue
		}
		updated += res.RowsAffected
	}
	return updated, result.ErrorOrNil()
}
