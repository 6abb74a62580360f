package models

import "time"

// SelectedClass is a student's pending intent to enroll in a class. The
// composite unique index enforces at most one live selection per
// (student, class) pair; a selection is removed either by cancellation or
// by a successful payment, never both.
type SelectedClass struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	StudentEmail string    `json:"sEmail" gorm:"uniqueIndex:idx_student_class;not null"`
	ClassID      uint      `json:"classId" gorm:"uniqueIndex:idx_student_class;not null"`
	ClassName    string    `json:"className"`
	Price        float64   `json:"price" gorm:"type:numeric(12,2)"`
	CreatedAt    time.Time `json:"createdAt"`
}
