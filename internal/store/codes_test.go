package store

import (
	"testing"
	"time"

	"whosmudassir/shop-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndRedeem(t *testing.T) {
	db := newTestDB(t)
	codes := NewCodes(db)

	code, err := codes.Issue("alice@x.com")
	require.NoError(t, err)
	assert.Len(t, code, codeLength)

	require.NoError(t, codes.Redeem("alice@x.com", code))
}

func TestRedeemWrongCode(t *testing.T) {
	db := newTestDB(t)
	codes := NewCodes(db)

	_, err := codes.Issue("alice@x.com")
	require.NoError(t, err)

	assert.ErrorIs(t, codes.Redeem("alice@x.com", "WRONGCOD"), ErrCodeNotFound)
}

func TestRedeemWrongEmail(t *testing.T) {
	db := newTestDB(t)
	codes := NewCodes(db)

	code, err := codes.Issue("alice@x.com")
	require.NoError(t, err)

	assert.ErrorIs(t, codes.Redeem("bob@x.com", code), ErrCodeNotFound)
}

func TestRedeemExpiredCode(t *testing.T) {
	db := newTestDB(t)
	codes := NewCodes(db)

	rec := model.EmailVerificationCode{
		Email:     "alice@x.com",
		Code:      "OLDCODE1",
		ExpiresAt: time.Now().Add(-time.Minute),
		CreatedAt: time.Now().Add(-16 * time.Minute),
	}
	require.NoError(t, db.Create(&rec).Error)

	assert.ErrorIs(t, codes.Redeem("alice@x.com", "OLDCODE1"), ErrCodeNotFound)
}

func TestRedeemDeletesAllCodesForEmail(t *testing.T) {
	db := newTestDB(t)
	codes := NewCodes(db)

	// Issuing twice leaves both codes valid
	first, err := codes.Issue("alice@x.com")
	require.NoError(t, err)
	second, err := codes.Issue("alice@x.com")
	require.NoError(t, err)

	other, err := codes.Issue("bob@x.com")
	require.NoError(t, err)

	require.NoError(t, codes.Redeem("alice@x.com", second))

	// Redemption burned every code for the address, replaying the
	// still-unexpired first one must fail
	assert.ErrorIs(t, codes.Redeem("alice@x.com", first), ErrCodeNotFound)
	assert.ErrorIs(t, codes.Redeem("alice@x.com", second), ErrCodeNotFound)

	// Other addresses are untouched
	assert.NoError(t, codes.Redeem("bob@x.com", other))
}
