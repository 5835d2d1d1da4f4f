package repository

import (
	"fmt"

	"github.com/ahmetcoskunkizilkaya/workout-logger-backend/internal/database"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// deleteOwned is the root step of every cascade: it deletes the owner's
// record and aborts the unit with ErrNotFound when nothing matched.
func (s *Scoped) deleteOwned(model interface{}, id uuid.UUID) database.Op {
	return func(tx *gorm.DB) error {
		result := s.owned(tx).Where("id = ?", id).Delete(model)
		if result.Error != nil {
			return fmt.Errorf("failed to delete %T: %w", model, result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	}
}

// deleteWhereIn deletes every row of model whose column is in ids.
func deleteWhereIn(tx *gorm.DB, model interface{}, column string, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	if err := tx.Where(column+" IN ?", ids).Delete(model).Error; err != nil {
		return fmt.Errorf("failed to delete %T by %s: %w", model, column, err)
	}
	return nil
}
