//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/workout-logger-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/workout-logger-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/workout-logger-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupPostgres starts a throwaway PostgreSQL container and returns a
// migrated connection to it.
func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("workout_logger"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, database.Migrate(db))
	return db
}

func TestPostgresCascadeAndOrdering(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()
	repo := New(db)
	s := repo.For(alice)

	routine, err := s.CreateRoutine(ctx, "Push Day")
	require.NoError(t, err)
	bench, err := s.CreateExercise(ctx, routine.ID, "Bench", 3)
	require.NoError(t, err)
	dips, err := s.CreateExercise(ctx, routine.ID, "Dips", 3)
	require.NoError(t, err)
	assert.Equal(t, 0, bench.OrderPosition)
	assert.Equal(t, 1, dips.OrderPosition)

	_, err = s.ReorderExercises(ctx, routine.ID, []dto.ReorderItem{
		{ExerciseID: bench.ID.String(), Order: 1},
		{ExerciseID: dips.ID.String(), Order: 0},
	})
	require.NoError(t, err)
	listed, err := s.ListExercises(ctx, routine.ID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, dips.ID, listed[0].ID)

	for _, ex := range []*models.Exercise{bench, dips} {
		_, err := s.CreateLog(ctx, NewLog{ExerciseID: ex.ID, Weight: 60, Reps: 8, Date: time.Now().UTC()})
		require.NoError(t, err)
	}

	require.ErrorIs(t, repo.For(bob).DeleteRoutine(ctx, routine.ID), ErrNotFound)
	assert.EqualValues(t, 2, count(t, db, &models.WorkoutLog{}, "owner_id = ?", alice))

	require.NoError(t, s.DeleteRoutine(ctx, routine.ID))
	assert.Zero(t, count(t, db, &models.Routine{}, "owner_id = ?", alice))
	assert.Zero(t, count(t, db, &models.Exercise{}, "owner_id = ?", alice))
	assert.Zero(t, count(t, db, &models.WorkoutLog{}, "owner_id = ?", alice))
}
