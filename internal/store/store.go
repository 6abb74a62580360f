// Package store is the persistence boundary: narrow per-collection
// interfaces so handlers and the enrollment coordinator can be exercised
// against fakes, with a single gorm-backed implementation behind them.
package store

import (
	"context"
	"errors"

	"github.com/tajrubatahsin16/LanguageShala-server/models"
)

var (
	// ErrNotFound means a dereferenced id has no backing record.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate means an insert collided with a uniqueness constraint.
	ErrDuplicate = errors.New("record already exists")
)

// UserStore covers identity lookups and role grants.
type UserStore interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	ListUsersByRole(ctx context.Context, role string) ([]models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	SetUserRole(ctx context.Context, id uint, role string) (*models.User, error)
}

// ClassStore covers class-offering CRUD.
type ClassStore interface {
	ListClasses(ctx context.Context) ([]models.Class, error)
	ListClassesByStatus(ctx context.Context, status string) ([]models.Class, error)
	ListClassesByEmail(ctx context.Context, email string) ([]models.Class, error)
	FindClassByID(ctx context.Context, id uint) (*models.Class, error)
	CreateClass(ctx context.Context, class *models.Class) error
	UpdateClass(ctx context.Context, class *models.Class) error
	SetClassStatus(ctx context.Context, id uint, status string) (*models.Class, error)
	SetClassFeedback(ctx context.Context, id uint, feedback string) (*models.Class, error)
}

// SelectionStore covers a student's pending selections.
type SelectionStore interface {
	ListSelections(ctx context.Context) ([]models.SelectedClass, error)
	ListSelectionsByStudent(ctx context.Context, email string) ([]models.SelectedClass, error)
	FindSelectionByID(ctx context.Context, id uint) (*models.SelectedClass, error)
	CreateSelection(ctx context.Context, sel *models.SelectedClass) error
	DeleteSelection(ctx context.Context, id uint) error
	HasLiveSelection(ctx context.Context, email string, classID uint) (bool, error)
}

// PaymentStore reads the payment ledger and applies the one multi-write
// operation in the system. FinalizeEnrollment must insert the payment and
// remove the referenced selection as a single transaction, keyed by
// payment.SelectionID: when a payment for that selection already exists it
// returns the stored row with applied=false and writes nothing.
type PaymentStore interface {
	ListPayments(ctx context.Context) ([]models.Payment, error)
	ListPaymentsByEmail(ctx context.Context, email string) ([]models.Payment, error)
	FinalizeEnrollment(ctx context.Context, payment *models.Payment) (applied *models.Payment, fresh bool, err error)
}
