package contract

import (
	"context"

	"sadguru-seva-be/internal/entity"
	"sadguru-seva-be/internal/repository/specification"
)

type BhaktRepository interface {
	Create(ctx context.Context, bhakt *entity.Bhakt) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Bhakt, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Bhakt, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type ContactRepository interface {
	Create(ctx context.Context, msg *entity.ContactMessage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ContactMessage, error)
}
