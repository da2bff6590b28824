package specification

import "gorm.io/gorm"

// ByMobile filters users by their normalized 10-digit mobile number.
type ByMobile struct {
	Mobile string
}

func (s ByMobile) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("mobile = ?", s.Mobile)
}

// ByEmail filters by email, case-insensitive.
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(email) = LOWER(?)", s.Email)
}

// ByNameAndPhone matches the harijap login pair against registered bhaktgan.
// Name comparison is case-insensitive; phone is matched on its last 10
// digits so "+91" prefixes registered earlier still line up.
type ByNameAndPhone struct {
	Name  string
	Phone string
}

func (s ByNameAndPhone) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(name) = LOWER(?) AND RIGHT(regexp_replace(phone, '\\D', '', 'g'), 10) = ?", s.Name, s.Phone)
}
