package internal

import (
	"whosmudassir/shop-api/internal/service"
	"whosmudassir/shop-api/internal/session"
	"whosmudassir/shop-api/internal/store"
	"whosmudassir/shop-api/pkg/security"

	"gorm.io/gorm"
)

type Deps struct {
	DB         *gorm.DB
	Argon      *security.ArgonHash
	Sessions   *session.Manager
	Users      *store.Users
	Codes      *store.Codes
	Categories *store.Categories
	Mailer     service.Mailer
}
