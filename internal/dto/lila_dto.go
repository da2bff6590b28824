package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateLilaRequest struct {
	Title    string `json:"title" validate:"required,max=255"`
	Category string `json:"category" validate:"required,max=100"`
	Content  string `json:"content" validate:"required"`
	Excerpt  string `json:"excerpt"`
	ImageURL string `json:"image_url"`
}

type CreateLilaResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateLilaRequest struct {
	Id       uuid.UUID
	Title    string `json:"title" validate:"required,max=255"`
	Category string `json:"category" validate:"required,max=100"`
	Content  string `json:"content" validate:"required"`
	Excerpt  string `json:"excerpt"`
	ImageURL string `json:"image_url"`
	IsActive *bool  `json:"is_active"`
}

type LilaSummaryResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Category  string     `json:"category"`
	Excerpt   string     `json:"excerpt"`
	ImageURL  string     `json:"image_url,omitempty"`
	ViewCount int        `json:"view_count"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type LilaDetailResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Category  string     `json:"category"`
	Content   string     `json:"content"`
	Excerpt   string     `json:"excerpt"`
	ImageURL  string     `json:"image_url,omitempty"`
	ViewCount int        `json:"view_count"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type LilaListResponse struct {
	Lilas []LilaSummaryResponse `json:"lilas"`
	Total int64                 `json:"total"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
}

type CategoryStatResponse struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}
