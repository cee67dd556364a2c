package store

import (
	"testing"

	"whosmudassir/shop-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsersCreateAndFind(t *testing.T) {
	db := newTestDB(t)
	users := NewUsers(db)

	u := model.User{
		ID:           "abc123",
		Name:         "Alice",
		Email:        "alice@x.com",
		PasswordHash: "$argon2id$...",
		Verified:     true,
	}
	require.NoError(t, users.Create(&u))

	byEmail, err := users.FindByEmail("alice@x.com")
	require.NoError(t, err)
	assert.Equal(t, "abc123", byEmail.ID)

	byID, err := users.FindByID("abc123")
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", byID.Email)

	found, err := users.Exists("alice@x.com")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestUsersNotFound(t *testing.T) {
	db := newTestDB(t)
	users := NewUsers(db)

	_, err := users.FindByEmail("ghost@x.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = users.FindByID("ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)

	found, err := users.Exists("ghost@x.com")
	require.NoError(t, err)
	assert.False(t, found)
}
