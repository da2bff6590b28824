package contract

import (
	"context"

	"sadguru-seva-be/internal/entity"
	"sadguru-seva-be/internal/repository/specification"
)

type SatsangRepository interface {
	Create(ctx context.Context, page *entity.Satsang) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Satsang, error)
	// MaxPageNumber returns the highest seeded page, 0 when the table is empty.
	MaxPageNumber(ctx context.Context) (int, error)
}

type ProgramRepository interface {
	Create(ctx context.Context, program *entity.Program) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Program, error)
}
