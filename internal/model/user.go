package model

import "time"

type User struct {
	ID           string `gorm:"primaryKey"`
	Name         string
	Email        string `gorm:"unique; not null"`
	PasswordHash string `gorm:"not null" json:"-"`
	Verified     bool   `gorm:"default:false"`
	CreatedAt    time.Time

	Interests []UserCategory `gorm:"foreignKey:UserID"`
}

// PublicUser is the client-visible subset of a User. Everything that
// ends up inside a session token or a JSON response goes through here
// so the password hash can never leak by accident.
type PublicUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Verified:  u.Verified,
		CreatedAt: u.CreatedAt,
	}
}
