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

type BhaktRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BhaktMapper
}

func NewBhaktRepository(db *gorm.DB) contract.BhaktRepository {
	return &BhaktRepositoryImpl{
		db:     db,
		mapper: mapper.NewBhaktMapper(),
	}
}

func (r *BhaktRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *BhaktRepositoryImpl) Create(ctx context.Context, bhakt *entity.Bhakt) error {
	m := r.mapper.ToModel(bhakt)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*bhakt = *r.mapper.ToEntity(m)
	return nil
}

func (r *BhaktRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Bhakt, error) {
	var m model.Bhakt
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *BhaktRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Bhakt, error) {
	var models []*model.Bhakt
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *BhaktRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Bhakt{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type ContactRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BhaktMapper
}

func NewContactRepository(db *gorm.DB) contract.ContactRepository {
	return &ContactRepositoryImpl{
		db:     db,
		mapper: mapper.NewBhaktMapper(),
	}
}

func (r *ContactRepositoryImpl) Create(ctx context.Context, msg *entity.ContactMessage) error {
	m := r.mapper.ContactToModel(msg)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*msg = *r.mapper.ContactToEntity(m)
	return nil
}

func (r *ContactRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ContactMessage, error) {
	var models []*model.ContactMessage
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ContactMessage, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ContactToEntity(m)
	}
	return entities, nil
}
