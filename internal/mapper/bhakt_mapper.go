package mapper

import (
	"sadguru-seva-be/internal/entity"
	"sadguru-seva-be/internal/model"
)

type BhaktMapper struct{}

func NewBhaktMapper() *BhaktMapper {
	return &BhaktMapper{}
}

func (m *BhaktMapper) ToEntity(b *model.Bhakt) *entity.Bhakt {
	if b == nil {
		return nil
	}
	return &entity.Bhakt{
		Id:           b.Id,
		Name:         b.Name,
		Email:        b.Email,
		Phone:        b.Phone,
		City:         b.City,
		SevaInterest: b.SevaInterest,
		SubmittedAt:  b.SubmittedAt,
	}
}

func (m *BhaktMapper) ToModel(b *entity.Bhakt) *model.Bhakt {
	if b == nil {
		return nil
	}
	return &model.Bhakt{
		Id:           b.Id,
		Name:         b.Name,
		Email:        b.Email,
		Phone:        b.Phone,
		City:         b.City,
		SevaInterest: b.SevaInterest,
		SubmittedAt:  b.SubmittedAt,
	}
}

func (m *BhaktMapper) ToEntities(bhakts []*model.Bhakt) []*entity.Bhakt {
	entities := make([]*entity.Bhakt, len(bhakts))
	for i, b := range bhakts {
		entities[i] = m.ToEntity(b)
	}
	return entities
}

func (m *BhaktMapper) ContactToModel(c *entity.ContactMessage) *model.ContactMessage {
	if c == nil {
		return nil
	}
	return &model.ContactMessage{
		Id:        c.Id,
		Name:      c.Name,
		Email:     c.Email,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	}
}

func (m *BhaktMapper) ContactToEntity(c *model.ContactMessage) *entity.ContactMessage {
	if c == nil {
		return nil
	}
	return &entity.ContactMessage{
		Id:        c.Id,
		Name:      c.Name,
		Email:     c.Email,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	}
}
