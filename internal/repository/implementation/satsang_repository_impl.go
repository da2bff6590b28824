package implementation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"sadguru-seva-be/internal/entity"
	"sadguru-seva-be/internal/mapper"
	"sadguru-seva-be/internal/model"
	"sadguru-seva-be/internal/repository/contract"
	"sadguru-seva-be/internal/repository/specification"
)

type SatsangRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SatsangMapper
}

func NewSatsangRepository(db *gorm.DB) contract.SatsangRepository {
	return &SatsangRepositoryImpl{
		db:     db,
		mapper: mapper.NewSatsangMapper(),
	}
}

func (r *SatsangRepositoryImpl) Create(ctx context.Context, page *entity.Satsang) error {
	m := r.mapper.ToModel(page)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*page = *r.mapper.ToEntity(m)
	return nil
}

func (r *SatsangRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Satsang, error) {
	var m model.Satsang
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SatsangRepositoryImpl) MaxPageNumber(ctx context.Context) (int, error) {
	var max int
	err := r.db.WithContext(ctx).Model(&model.Satsang{}).
		Select("COALESCE(MAX(page_number), 0)").
		Where("is_active = ?", true).
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max, nil
}

type ProgramRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SatsangMapper
}

func NewProgramRepository(db *gorm.DB) contract.ProgramRepository {
	return &ProgramRepositoryImpl{
		db:     db,
		mapper: mapper.NewSatsangMapper(),
	}
}

func (r *ProgramRepositoryImpl) Create(ctx context.Context, program *entity.Program) error {
	m := r.mapper.ProgramToModel(program)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*program = *r.mapper.ProgramToEntity(m)
	return nil
}

func (r *ProgramRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Program, error) {
	var models []*model.Program
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ProgramsToEntities(models), nil
}
