package store

import (
	"errors"
	"time"

	"whosmudassir/shop-api/internal/model"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"
)

const (
	codeCharset = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	codeLength  = 8

	// CodeTTL is how long an issued verification code stays redeemable.
	CodeTTL = 15 * time.Minute
)

var ErrCodeNotFound = errors.New("verification code invalid or expired")

// Codes issues and redeems the one-time email verification codes used
// during signup.
type Codes struct {
	db *gorm.DB
}

func NewCodes(db *gorm.DB) *Codes {
	return &Codes{db: db}
}

// Issue persists a fresh 8-character code for the address and returns
// it. Outstanding codes for the same address stay valid until one of
// them is redeemed.
func (s *Codes) Issue(email string) (string, error) {
	code, err := gonanoid.Generate(codeCharset, codeLength)
	if err != nil {
		return "", err
	}

	rec := model.EmailVerificationCode{
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().Add(CodeTTL),
		CreatedAt: time.Now(),
	}

	if err := s.db.Create(&rec).Error; err != nil {
		return "", err
	}

	return code, nil
}

// Redeem checks the (email, code) pair and, on success, deletes every
// code for that address so none of them can be replayed.
func (s *Codes) Redeem(email, code string) error {
	var rec model.EmailVerificationCode

	err := s.db.Where("email = ? AND code = ?", email, code).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCodeNotFound
		}

		return err
	}

	if rec.ExpiresAt.Before(time.Now()) {
		return ErrCodeNotFound
	}

	return s.db.Where("email = ?", email).Delete(&model.EmailVerificationCode{}).Error
}
