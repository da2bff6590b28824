// FILE: internal/entity/bhakt_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Bhakt is a registered member of the bhaktgan community.
type Bhakt struct {
	Id           uuid.UUID
	Name         string
	Email        string
	Phone        string
	City         string
	SevaInterest string
	SubmittedAt  time.Time
}

// ContactMessage is a message left through the contact page.
type ContactMessage struct {
	Id        uuid.UUID
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}
