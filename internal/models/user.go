package models

import "time"

// User represents an account holder of the inventory application.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	FirstName string    `json:"firstName" gorm:"type:varchar(100);not null"`
	LastName  string    `json:"lastName" gorm:"type:varchar(100);not null"`
	FullName  string    `json:"fullName" gorm:"type:varchar(201);index"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	Password  string    `json:"-" gorm:"type:varchar(255);not null"` // bcrypt hash, never serialized
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SetName updates the first and last name and keeps FullName in sync.
func (u *User) SetName(firstName, lastName string) {
	u.FirstName = firstName
	u.LastName = lastName
	u.FullName = firstName + " " + lastName
}
