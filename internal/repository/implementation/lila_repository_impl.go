package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sadguru-seva-be/internal/entity"
	"sadguru-seva-be/internal/mapper"
	"sadguru-seva-be/internal/model"
	"sadguru-seva-be/internal/repository/contract"
	"sadguru-seva-be/internal/repository/specification"
)

type LilaRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LilaMapper
}

func NewLilaRepository(db *gorm.DB) contract.LilaRepository {
	return &LilaRepositoryImpl{
		db:     db,
		mapper: mapper.NewLilaMapper(),
	}
}

func (r *LilaRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *LilaRepositoryImpl) Create(ctx context.Context, lila *entity.Lila) error {
	m := r.mapper.ToModel(lila)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*lila = *r.mapper.ToEntity(m)
	return nil
}

func (r *LilaRepositoryImpl) Update(ctx context.Context, lila *entity.Lila) error {
	m := r.mapper.ToModel(lila)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*lila = *r.mapper.ToEntity(m)
	return nil
}

func (r *LilaRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Lila{}, id).Error
}

func (r *LilaRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Lila, error) {
	var m model.Lila
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *LilaRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Lila, error) {
	var models []*model.Lila
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *LilaRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Lila{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *LilaRepositoryImpl) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Lila{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func (r *LilaRepositoryImpl) CategoryStats(ctx context.Context) ([]*entity.CategoryStat, error) {
	var stats []*entity.CategoryStat
	err := r.db.WithContext(ctx).Model(&model.Lila{}).
		Select("category, COUNT(*) AS count").
		Where("is_active = ?", true).
		Group("category").
		Order("count DESC").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}
