// Package repository is the only path from request handlers to workout
// data. Every accessor hangs off a Scoped value bound to one subject, so a
// caller cannot read or write owner data without naming the owner.
package repository

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/workout-logger-backend/internal/owner"
	"gorm.io/gorm"
)

var (
	// ErrNotFound covers both "does not exist" and "owned by someone else".
	ErrNotFound = errors.New("record not found")
	ErrNoOwner  = errors.New("repository used without an owner")
)

type Repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// For returns the accessors for records owned by ownerID.
func (r *Repository) For(ownerID string) *Scoped {
	return &Scoped{db: r.db, ownerID: ownerID}
}

type Scoped struct {
	db      *gorm.DB
	ownerID string
}

func (s *Scoped) OwnerID() string {
	return s.ownerID
}

// owned applies the owner filter. All reads and writes of owner data go
// through it.
func (s *Scoped) owned(tx *gorm.DB) *gorm.DB {
	return tx.Scopes(owner.ForOwner(s.ownerID))
}

func (s *Scoped) check() error {
	if s.ownerID == "" {
		return ErrNoOwner
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
