// FILE: internal/entity/user_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a devotee account created through the OTP login flow. Mobile is
// stored normalized to its last 10 digits.
type User struct {
	Id          uuid.UUID
	Name        string
	Mobile      string
	OTP         *string
	OTPExpiry   *time.Time
	OTPVerified bool
	LastLoginAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// AuthorizedAdmin may publish programs, photos and satsang pages. Identified
// by name+phone with a bcrypt passcode.
type AuthorizedAdmin struct {
	Id           uuid.UUID
	Name         string
	Phone        string
	PasscodeHash string
	CreatedAt    time.Time
}
