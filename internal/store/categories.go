package store

import (
	"whosmudassir/shop-api/internal/model"

	"gorm.io/gorm"
)

const (
	DefaultPageSize = 6
	MaxPageSize     = 100
)

type CategoryPage struct {
	Categories  []model.Category `json:"categories"`
	TotalCount  int64            `json:"totalCount"`
	TotalPages  int              `json:"totalPages"`
	CurrentPage int              `json:"currentPage"`
}

type Categories struct {
	db *gorm.DB
}

func NewCategories(db *gorm.DB) *Categories {
	return &Categories{db: db}
}

// List returns one page of categories with offset pagination.
// Out-of-range inputs are clamped rather than rejected.
func (s *Categories) List(page, limit int) (*CategoryPage, error) {
	if page < 1 {
		page = 1
	}

	if limit < 1 {
		limit = DefaultPageSize
	} else if limit > MaxPageSize {
		limit = MaxPageSize
	}

	var categories []model.Category

	err := s.db.
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&categories).
		Error
	if err != nil {
		return nil, err
	}

	var total int64
	if err := s.db.Model(model.Category{}).Count(&total).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &CategoryPage{
		Categories:  categories,
		TotalCount:  total,
		TotalPages:  totalPages,
		CurrentPage: page,
	}, nil
}

// SaveInterests replaces the user's saved interests with the given
// category ids.
func (s *Categories) SaveInterests(userID string, categoryIDs []int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&model.UserCategory{}).Error; err != nil {
			return err
		}

		for _, id := range categoryIDs {
			if err := tx.Create(&model.UserCategory{UserID: userID, CategoryID: id}).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Interests returns the ids of the categories the user marked as
// interests.
func (s *Categories) Interests(userID string) ([]int, error) {
	var ids []int

	err := s.db.Model(model.UserCategory{}).
		Where("user_id = ?", userID).
		Order("category_id").
		Pluck("category_id", &ids).
		Error

	return ids, err
}
