package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePhotoRequest struct {
	Title       string                 `json:"title" validate:"required,max=255"`
	Description string                 `json:"description"`
	Category    string                 `json:"category" validate:"required,max=100"`
	FileURL     string                 `json:"file_url" validate:"required,url"`
	Metadata    map[string]interface{} `json:"metadata"`
}

type CreatePhotoResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdatePhotoRequest struct {
	Id          uuid.UUID
	Title       string                 `json:"title" validate:"required,max=255"`
	Description string                 `json:"description"`
	Category    string                 `json:"category" validate:"required,max=100"`
	FileURL     string                 `json:"file_url" validate:"required,url"`
	Metadata    map[string]interface{} `json:"metadata"`
	IsActive    *bool                  `json:"is_active"`
}

type PhotoResponse struct {
	Id          uuid.UUID              `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description,omitempty"`
	Category    string                 `json:"category"`
	FileURL     string                 `json:"file_url"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	UploadedBy  string                 `json:"uploaded_by,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   *time.Time             `json:"updated_at"`
}

type PhotoStatsResponse struct {
	Total      int64                  `json:"total"`
	ByCategory []CategoryStatResponse `json:"by_category"`
}
