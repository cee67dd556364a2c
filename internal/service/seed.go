package service

import (
	"whosmudassir/shop-api/internal/model"

	"github.com/brianvoe/gofakeit/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedCategories fills the categories table with n fake product names.
// Duplicate names are skipped so the seed can be re-run.
func SeedCategories(db *gorm.DB, n int) error {
	categories := make([]model.Category, 0, n)
	for range n {
		categories = append(categories, model.Category{Name: gofakeit.ProductName()})
	}

	err := db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&categories).
		Error
	if err != nil {
		return err
	}

	zap.L().Info("Seeded categories", zap.Int("count", n))
	return nil
}
