package contract

import (
	"context"

	"sadguru-seva-be/internal/entity"
	"sadguru-seva-be/internal/repository/specification"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type AdminRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AuthorizedAdmin, error)
	Create(ctx context.Context, admin *entity.AuthorizedAdmin) error
}
