// Package repository wraps gorm access to the hosted tables.
package repository

import (
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// Repositories bundles every table accessor over one connection (or one
// transaction, see Tx).
type Repositories struct {
	db       *gorm.DB
	Orders   *OrderRepository
	Dishes   *DishRepository
	Profiles *ProfileRepository
	Partners *PartnerRepository
	Feedback *FeedbackRepository
}

func New(db *gorm.DB) *Repositories {
	return &Repositories{
		db:       db,
		Orders:   &OrderRepository{db: db},
		Dishes:   &DishRepository{db: db},
		Profiles: &ProfileRepository{db: db},
		Partners: &PartnerRepository{db: db},
		Feedback: &FeedbackRepository{db: db},
	}
}

// Tx runs fn with repositories bound to a single transaction.
func (r *Repositories) Tx(fn func(tx *Repositories) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}

func (r *Repositories) DB() *gorm.DB {
	return r.db
}
