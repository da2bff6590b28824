package unitofwork

import (
	"context"

	"sadguru-seva-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	AdminRepository() contract.AdminRepository
	BhaktRepository() contract.BhaktRepository
	ContactRepository() contract.ContactRepository
	JapaSessionRepository() contract.JapaSessionRepository
	JapaDailyCountRepository() contract.JapaDailyCountRepository
	LilaRepository() contract.LilaRepository
	SatsangRepository() contract.SatsangRepository
	ProgramRepository() contract.ProgramRepository
	PhotoRepository() contract.PhotoRepository
}
