package database

import (
	"context"

	"gorm.io/gorm"
)

// Op is one store operation inside a unit of work. Ops run against the
// transaction handle they are given and must not touch the outer *gorm.DB.
type Op func(tx *gorm.DB) error

// Atomic runs ops in order inside a single transaction. The first op that
// returns an error stops the sequence and rolls back everything written by
// the ops before it; that error is returned unchanged so callers can match
// sentinels with errors.Is.
func Atomic(ctx context.Context, db *gorm.DB, ops ...Op) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, op := range ops {
			if err := op(tx); err != nil {
				return err
			}
		}
		return nil
	})
}
