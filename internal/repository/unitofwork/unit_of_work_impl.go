package unitofwork

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"sadguru-seva-be/internal/repository/contract"
	"sadguru-seva-be/internal/repository/implementation"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AdminRepository() contract.AdminRepository {
	return implementation.NewAdminRepository(u.getDB())
}

func (u *UnitOfWorkImpl) BhaktRepository() contract.BhaktRepository {
	return implementation.NewBhaktRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ContactRepository() contract.ContactRepository {
	return implementation.NewContactRepository(u.getDB())
}

func (u *UnitOfWorkImpl) JapaSessionRepository() contract.JapaSessionRepository {
	return implementation.NewJapaSessionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) JapaDailyCountRepository() contract.JapaDailyCountRepository {
	return implementation.NewJapaDailyCountRepository(u.getDB())
}

func (u *UnitOfWorkImpl) LilaRepository() contract.LilaRepository {
	return implementation.NewLilaRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SatsangRepository() contract.SatsangRepository {
	return implementation.NewSatsangRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ProgramRepository() contract.ProgramRepository {
	return implementation.NewProgramRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PhotoRepository() contract.PhotoRepository {
	return implementation.NewPhotoRepository(u.getDB())
}
