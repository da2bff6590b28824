package specification

import "gorm.io/gorm"

// ByCategory filters lilas or photos by category.
type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Category)
}

// TitleOrContentSearch does a case-insensitive substring search across
// title, content and excerpt.
type TitleOrContentSearch struct {
	Query string
}

func (s TitleOrContentSearch) Apply(db *gorm.DB) *gorm.DB {
	q := "%" + s.Query + "%"
	return db.Where("title ILIKE ? OR content ILIKE ? OR excerpt ILIKE ?", q, q, q)
}
