package mapper

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"sadguru-seva-be/internal/entity"
	"sadguru-seva-be/internal/model"
)

type PhotoMapper struct{}

func NewPhotoMapper() *PhotoMapper {
	return &PhotoMapper{}
}

func (m *PhotoMapper) ToEntity(p *model.Photo) *entity.Photo {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	var metadata map[string]interface{}
	if len(p.Metadata) > 0 {
		// Column content is validated on the way in, so a decode failure
		// here just leaves metadata empty.
		_ = json.Unmarshal(p.Metadata, &metadata)
	}

	return &entity.Photo{
		Id:          p.Id,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		FileURL:     p.FileURL,
		Metadata:    metadata,
		UploadedBy:  p.UploadedBy,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *PhotoMapper) ToModel(p *entity.Photo) *model.Photo {
	if p == nil {
		return nil
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	var metadata datatypes.JSON
	if p.Metadata != nil {
		if raw, err := json.Marshal(p.Metadata); err == nil {
			metadata = raw
		}
	}

	return &model.Photo{
		Id:          p.Id,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		FileURL:     p.FileURL,
		Metadata:    metadata,
		UploadedBy:  p.UploadedBy,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *PhotoMapper) ToEntities(photos []*model.Photo) []*entity.Photo {
	entities := make([]*entity.Photo, len(photos))
	for i, p := range photos {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
