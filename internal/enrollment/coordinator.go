// Package enrollment orchestrates the selection → payment-intent →
// confirmed-payment workflow. It owns the policy decisions; durability
// and atomicity live in the store, the charge itself in the gateway.
package enrollment

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/tajrubatahsin16/LanguageShala-server/internal/payments"
	"github.com/tajrubatahsin16/LanguageShala-server/internal/store"
	"github.com/tajrubatahsin16/LanguageShala-server/models"
)

// Currency is the only currency the platform charges in.
const Currency = "usd"

var (
	// ErrAlreadySelected means the student already holds a live selection
	// for the class. Duplicate selects are rejected, not absorbed.
	ErrAlreadySelected = errors.New("class already selected")
	// ErrSelectionNotFound means the referenced selection does not exist
	// and no payment has ever settled it.
	ErrSelectionNotFound = errors.New("selection not found")
)

// Coordinator drives the enrollment state machine for a (student, class)
// pair: none → selected → (paid | cancelled).
type Coordinator struct {
	selections store.SelectionStore
	ledger     store.PaymentStore
	gateway    payments.Gateway
}

func NewCoordinator(selections store.SelectionStore, ledger store.PaymentStore, gateway payments.Gateway) *Coordinator {
	return &Coordinator{selections: selections, ledger: ledger, gateway: gateway}
}

// Select records a student's intent to enroll. At most one live selection
// may exist per (student, class) pair; a second Select fails with
// ErrAlreadySelected. The pre-check keeps the common case friendly, the
// store's unique index settles concurrent races.
func (c *Coordinator) Select(ctx context.Context, sel *models.SelectedClass) error {
	exists, err := c.selections.HasLiveSelection(ctx, sel.StudentEmail, sel.ClassID)
	if err != nil {
		return fmt.Errorf("check live selection: %w", err)
	}
	if exists {
		return ErrAlreadySelected
	}

	if err := c.selections.CreateSelection(ctx, sel); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return ErrAlreadySelected
		}
		return err
	}
	return nil
}

// Cancel removes a pending selection. Cancelled is terminal: enrolling
// again takes a fresh Select.
func (c *Coordinator) Cancel(ctx context.Context, id uint) error {
	if err := c.selections.DeleteSelection(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrSelectionNotFound
		}
		return err
	}
	return nil
}

// CreateIntent asks the gateway for a pending charge over the class price
// and returns the client secret. It writes nothing durable, so callers
// may retry freely. A price of zero still produces a well-formed
// zero-amount intent.
func (c *Coordinator) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount := MinorUnits(price)
	secret, err := c.gateway.CreateIntent(ctx, amount, Currency)
	if err != nil {
		return "", fmt.Errorf("payment gateway: %w", err)
	}
	return secret, nil
}

// Finalize settles a confirmed payment: one ledger row in, the selection
// out, atomically. The selection id is the idempotency key, so a retried
// Finalize for an already-settled selection returns the stored payment
// without touching anything.
func (c *Coordinator) Finalize(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	if payment.TransactionID == "" {
		payment.TransactionID = uuid.NewString()
	}

	settled, _, err := c.ledger.FinalizeEnrollment(ctx, payment)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSelectionNotFound
		}
		return nil, err
	}
	return settled, nil
}

// MinorUnits converts a decimal price into the integer minor-unit amount
// the gateway expects.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}
