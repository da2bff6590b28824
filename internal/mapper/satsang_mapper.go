package mapper

import (
	"sadguru-seva-be/internal/entity"
	"sadguru-seva-be/internal/model"
)

type SatsangMapper struct{}

func NewSatsangMapper() *SatsangMapper {
	return &SatsangMapper{}
}

func (m *SatsangMapper) ToEntity(s *model.Satsang) *entity.Satsang {
	if s == nil {
		return nil
	}
	return &entity.Satsang{
		Id:         s.Id,
		PageNumber: s.PageNumber,
		Title:      s.Title,
		Content:    s.Content,
		ContentEn:  s.ContentEn,
		Author:     s.Author,
		IsActive:   s.IsActive,
		CreatedAt:  s.CreatedAt,
	}
}

func (m *SatsangMapper) ToModel(s *entity.Satsang) *model.Satsang {
	if s == nil {
		return nil
	}
	return &model.Satsang{
		Id:         s.Id,
		PageNumber: s.PageNumber,
		Title:      s.Title,
		Content:    s.Content,
		ContentEn:  s.ContentEn,
		Author:     s.Author,
		IsActive:   s.IsActive,
		CreatedAt:  s.CreatedAt,
	}
}

func (m *SatsangMapper) ProgramToEntity(p *model.Program) *entity.Program {
	if p == nil {
		return nil
	}
	return &entity.Program{
		Id:          p.Id,
		Title:       p.Title,
		Description: p.Description,
		Location:    p.Location,
		ProgramDate: p.ProgramDate,
		SubmittedBy: p.SubmittedBy,
		CreatedAt:   p.CreatedAt,
	}
}

func (m *SatsangMapper) ProgramToModel(p *entity.Program) *model.Program {
	if p == nil {
		return nil
	}
	return &model.Program{
		Id:          p.Id,
		Title:       p.Title,
		Description: p.Description,
		Location:    p.Location,
		ProgramDate: p.ProgramDate,
		SubmittedBy: p.SubmittedBy,
		CreatedAt:   p.CreatedAt,
	}
}

func (m *SatsangMapper) ProgramsToEntities(programs []*model.Program) []*entity.Program {
	entities := make([]*entity.Program, len(programs))
	for i, p := range programs {
		entities[i] = m.ProgramToEntity(p)
	}
	return entities
}
