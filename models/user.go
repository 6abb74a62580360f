package models

import "time"

// Role values stored on a user. Anything else (including the empty
// string) is treated as a plain student.
const (
	RoleAdmin      = "admin"
	RoleInstructor = "instructor"
	RoleStudent    = "student"
)

// User is an identity registered on the platform. Authentication happens
// upstream (the identity provider); we only keep the profile and the role.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Photo     string    `json:"photo"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// EffectiveRole normalizes the stored role: users registered without an
// explicit role are students.
func (u *User) EffectiveRole() string {
	if u.Role == "" {
		return RoleStudent
	}
	return u.Role
}
