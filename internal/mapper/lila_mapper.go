package mapper

import (
	"time"

	"sadguru-seva-be/internal/entity"
	"sadguru-seva-be/internal/model"
)

type LilaMapper struct{}

func NewLilaMapper() *LilaMapper {
	return &LilaMapper{}
}

func (m *LilaMapper) ToEntity(l *model.Lila) *entity.Lila {
	if l == nil {
		return nil
	}

	var updatedAt *time.Time
	if !l.UpdatedAt.IsZero() {
		t := l.UpdatedAt
		updatedAt = &t
	}

	return &entity.Lila{
		Id:        l.Id,
		Title:     l.Title,
		Category:  l.Category,
		Content:   l.Content,
		Excerpt:   l.Excerpt,
		ImageURL:  l.ImageURL,
		ViewCount: l.ViewCount,
		IsActive:  l.IsActive,
		CreatedAt: l.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *LilaMapper) ToModel(l *entity.Lila) *model.Lila {
	if l == nil {
		return nil
	}

	var updatedAt time.Time
	if l.UpdatedAt != nil {
		updatedAt = *l.UpdatedAt
	}

	return &model.Lila{
		Id:        l.Id,
		Title:     l.Title,
		Category:  l.Category,
		Content:   l.Content,
		Excerpt:   l.Excerpt,
		ImageURL:  l.ImageURL,
		ViewCount: l.ViewCount,
		IsActive:  l.IsActive,
		CreatedAt: l.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *LilaMapper) ToEntities(lilas []*model.Lila) []*entity.Lila {
	entities := make([]*entity.Lila, len(lilas))
	for i, l := range lilas {
		entities[i] = m.ToEntity(l)
	}
	return entities
}
