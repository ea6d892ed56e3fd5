package model

import "time"

// User represents an authenticated user. Users are created out-of-band
// (seed CLI or seed endpoint); there is no public registration route.
// A user owns zero or more CartItems, linked by user_id.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:80;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
