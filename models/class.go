package models

import "time"

// Class approval states. A class is created pending and moves forward to
// approved or denied by an admin; there is no transition back to pending.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDenied   = "denied"
)

// Class is an offering created by an instructor.
type Class struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"not null"`
	Instructor string    `json:"instructor"`
	Email      string    `json:"email" gorm:"index"` // instructor email
	Photo      string    `json:"photo"`
	Seats      int       `json:"seats"`
	Price      float64   `json:"price" gorm:"type:numeric(12,2)"`
	Status     string    `json:"status" gorm:"default:pending"`
	Feedback   string    `json:"feedback"`
	Enrolled   int       `json:"enrolled"`
	CreatedAt  time.Time `json:"createdAt"`
}
