package model

import "time"

// EmailVerificationCode is keyed by email instead of user ID because
// it exists before the user row does. Multiple codes may coexist for
// the same address; redeeming any of them deletes them all.
type EmailVerificationCode struct {
	ID        int    `gorm:"primaryKey;autoIncrement"`
	Email     string `gorm:"index; not null"`
	Code      string `gorm:"not null"`
	ExpiresAt time.Time
	CreatedAt time.Time
}
