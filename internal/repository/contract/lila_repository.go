package contract

import (
	"context"

	"github.com/google/uuid"

	"sadguru-seva-be/internal/entity"
	"sadguru-seva-be/internal/repository/specification"
)

type LilaRepository interface {
	Create(ctx context.Context, lila *entity.Lila) error
	Update(ctx context.Context, lila *entity.Lila) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Lila, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Lila, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// IncrementViewCount bumps the counter atomically in the database.
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
	CategoryStats(ctx context.Context) ([]*entity.CategoryStat, error)
}
