package model

import "time"

type Category struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"unique; not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserCategory marks a category as one of a user's saved interests.
type UserCategory struct {
	UserID     string    `gorm:"primaryKey" json:"userId"`
	CategoryID int       `gorm:"primaryKey" json:"categoryId"`
	CreatedAt  time.Time `json:"createdAt"`
}
