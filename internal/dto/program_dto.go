package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubmitProgramRequest struct {
	Title       string    `json:"title" validate:"required,max=255"`
	Description string    `json:"description"`
	Location    string    `json:"location" validate:"required,max=255"`
	ProgramDate time.Time `json:"program_date" validate:"required"`
	SubmittedBy string    `json:"submitted_by" validate:"required,min=2,max=100"`
}

type SubmitProgramResponse struct {
	Id uuid.UUID `json:"id"`
}

type ProgramResponse struct {
	Id          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location"`
	ProgramDate time.Time `json:"program_date"`
	SubmittedBy string    `json:"submitted_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
