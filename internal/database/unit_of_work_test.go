package database_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ahmetcoskunkizilkaya/workout-logger-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/workout-logger-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/workout-logger-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func countRoutines(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Routine{}).Count(&n).Error)
	return n
}

func TestAtomicCommitsAllOps(t *testing.T) {
	db := testutil.NewDB(t)

	err := database.Atomic(context.Background(), db,
		func(tx *gorm.DB) error { return tx.Create(&models.Routine{OwnerID: "u1", Name: "Push"}).Error },
		func(tx *gorm.DB) error { return tx.Create(&models.Routine{OwnerID: "u1", Name: "Pull"}).Error },
	)

	require.NoError(t, err)
	assert.EqualValues(t, 2, countRoutines(t, db))
}

func TestAtomicRollsBackOnFailure(t *testing.T) {
	db := testutil.NewDB(t)
	errBoom := errors.New("boom")
	thirdRan := false

	err := database.Atomic(context.Background(), db,
		func(tx *gorm.DB) error { return tx.Create(&models.Routine{OwnerID: "u1", Name: "Push"}).Error },
		func(tx *gorm.DB) error { return errBoom },
		func(tx *gorm.DB) error {
			thirdRan = true
			return nil
		},
	)

	require.ErrorIs(t, err, errBoom)
	assert.False(t, thirdRan, "ops after a failure must not run")
	assert.EqualValues(t, 0, countRoutines(t, db))
}

func TestAtomicWithNoOps(t *testing.T) {
	db := testutil.NewDB(t)
	require.NoError(t, database.Atomic(context.Background(), db))
}

func TestPing(t *testing.T) {
	db := testutil.NewDB(t)
	require.NoError(t, database.Ping(context.Background(), db))
}
