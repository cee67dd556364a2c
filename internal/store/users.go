// Package store wraps the database behind the handful of lookups the
// handlers actually need.
package store

import (
	"errors"

	"whosmudassir/shop-api/internal/model"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type Users struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

func (s *Users) FindByEmail(email string) (*model.User, error) {
	var user model.User

	err := s.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	return &user, nil
}

func (s *Users) FindByID(id string) (*model.User, error) {
	var user model.User

	err := s.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	return &user, nil
}

func (s *Users) Exists(email string) (bool, error) {
	var found bool

	err := s.db.Model(model.User{}).
		Select("count(*) > 0").
		Where("email = ?", email).
		Find(&found).
		Error

	return found, err
}

func (s *Users) Create(user *model.User) error {
	return s.db.Create(user).Error
}
