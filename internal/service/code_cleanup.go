package service

import (
	"time"

	"whosmudassir/shop-api/internal/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CodeCleanup periodically deletes expired verification codes.
// Expiry itself is enforced at redeem time, this just keeps the table
// from growing forever.
func CodeCleanup(t time.Duration, db *gorm.DB) {
	ticker := time.NewTicker(t)

	zap.L().Debug("Verification code cleanup attached", zap.Duration("tick_every", t))

	go func() {
		for range ticker.C {
			r := db.
				Where("expires_at < ?", time.Now()).
				Delete(&model.EmailVerificationCode{})
			if r.Error != nil {
				zap.L().Error("Failed to cleanup expired verification codes", zap.Error(r.Error))
				continue
			}

			if r.RowsAffected > 0 {
				zap.L().Debug("Cleaned up expired verification codes", zap.Int64("deleted", r.RowsAffected))
			}
		}
	}()
}
