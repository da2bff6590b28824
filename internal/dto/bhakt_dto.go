package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterBhaktRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=100"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required"`
	City         string `json:"city" validate:"required"`
	SevaInterest string `json:"seva_interest"`
}

type RegisterBhaktResponse struct {
	Id uuid.UUID `json:"id"`
}

type BhaktResponse struct {
	Id           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	City         string    `json:"city"`
	SevaInterest string    `json:"seva_interest,omitempty"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=5"`
}

type ContactResponse struct {
	Id uuid.UUID `json:"id"`
}
