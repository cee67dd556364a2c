package store

import (
	"fmt"
	"testing"

	"whosmudassir/shop-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCategories(t *testing.T, s *Categories, n int) {
	t.Helper()

	for i := 1; i <= n; i++ {
		err := s.db.Create(&model.Category{Name: fmt.Sprintf("Category %02d", i)}).Error
		require.NoError(t, err)
	}
}

func TestListPagination(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategories(db)
	seedCategories(t, categories, 10)

	page, err := categories.List(2, 3)
	require.NoError(t, err)

	assert.Equal(t, int64(10), page.TotalCount)
	assert.Equal(t, 4, page.TotalPages)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Len(t, page.Categories, 3)
}

func TestListLastPagePartial(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategories(db)
	seedCategories(t, categories, 10)

	page, err := categories.List(4, 3)
	require.NoError(t, err)
	assert.Len(t, page.Categories, 1)
}

func TestListClampsBadInput(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategories(db)
	seedCategories(t, categories, 3)

	page, err := categories.List(0, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, page.CurrentPage)
	assert.Len(t, page.Categories, 3)
}

func TestSaveInterestsReplaces(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategories(db)
	seedCategories(t, categories, 5)

	require.NoError(t, categories.SaveInterests("user1", []int{1, 2, 3}))
	require.NoError(t, categories.SaveInterests("user1", []int{2, 4}))

	ids, err := categories.Interests("user1")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, ids)
}

func TestInterestsEmpty(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategories(db)

	ids, err := categories.Interests("nobody")
	require.NoError(t, err)
	assert.Empty(t, ids)
}
