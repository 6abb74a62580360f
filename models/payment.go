package models

import "time"

// Payment is an append-only ledger entry for a completed charge. Rows are
// never updated or deleted. SelectionID records which selection the charge
// settled and doubles as the idempotency key for finalization: its unique
// index guarantees a retried finalize cannot produce a second row.
type Payment struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	StudentEmail  string    `json:"email" gorm:"index;not null"`
	ClassID       uint      `json:"classId" gorm:"not null"`
	ClassName     string    `json:"className"`
	Amount        float64   `json:"amount" gorm:"type:numeric(12,2)"`
	TransactionID string    `json:"transactionId"`
	SelectionID   uint      `json:"selectionId" gorm:"uniqueIndex;not null"`
	CreatedAt     time.Time `json:"createdAt"`
}
