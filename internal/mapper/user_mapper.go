package mapper

import (
	"time"

	"sadguru-seva-be/internal/entity"
	"sadguru-seva-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}

	var updatedAt *time.Time
	if !u.UpdatedAt.IsZero() {
		t := u.UpdatedAt
		updatedAt = &t
	}

	return &entity.User{
		Id:          u.Id,
		Name:        u.Name,
		Mobile:      u.Mobile,
		OTP:         u.OTP,
		OTPExpiry:   u.OTPExpiry,
		OTPVerified: u.OTPVerified,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}

	var updatedAt time.Time
	if u.UpdatedAt != nil {
		updatedAt = *u.UpdatedAt
	}

	return &model.User{
		Id:          u.Id,
		Name:        u.Name,
		Mobile:      u.Mobile,
		OTP:         u.OTP,
		OTPExpiry:   u.OTPExpiry,
		OTPVerified: u.OTPVerified,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *UserMapper) AdminToEntity(a *model.AuthorizedAdmin) *entity.AuthorizedAdmin {
	if a == nil {
		return nil
	}
	return &entity.AuthorizedAdmin{
		Id:           a.Id,
		Name:         a.Name,
		Phone:        a.Phone,
		PasscodeHash: a.PasscodeHash,
		CreatedAt:    a.CreatedAt,
	}
}

func (m *UserMapper) AdminToModel(a *entity.AuthorizedAdmin) *model.AuthorizedAdmin {
	if a == nil {
		return nil
	}
	return &model.AuthorizedAdmin{
		Id:           a.Id,
		Name:         a.Name,
		Phone:        a.Phone,
		PasscodeHash: a.PasscodeHash,
		CreatedAt:    a.CreatedAt,
	}
}
