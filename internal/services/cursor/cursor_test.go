package services

import (
	"testing"

	"inkai_studio/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeItems() []models.GalleryItem {
	return []models.GalleryItem{
		{ID: "1", Title: "Geometric Dragon", ImageURL: "/1.png"},
		{ID: "2", Title: "Minimalist Rose", ImageURL: "/2.png"},
		{ID: "3", Title: "Tribal Phoenix", ImageURL: "/3.png"},
	}
}

func TestCursor_OpenCloseCurrent(t *testing.T) {
	items := threeItems()
	c := NewCursor(func() []models.GalleryItem { return items })

	_, ok := c.Current()
	assert.False(t, ok)

	c.Open(items[1])

	current, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "2", current.ID)

	c.Close()
	_, ok = c.Current()
	assert.False(t, ok)
}

func TestCursor_NextWrapsAround(t *testing.T) {
	items := threeItems()
	c := NewCursor(func() []models.GalleryItem { return items })

	c.Open(items[2])

	next, ok := c.Next()
	require.True(t, ok)
	assert.Equal(t, "1", next.ID)
}

func TestCursor_PreviousWrapsAround(t *testing.T) {
	items := threeItems()
	c := NewCursor(func() []models.GalleryItem { return items })

	c.Open(items[0])

	prev, ok := c.Previous()
	require.True(t, ok)
	assert.Equal(t, "3", prev.ID)
}

func TestCursor_FullCycleReturnsToStart(t *testing.T) {
	items := threeItems()
	c := NewCursor(func() []models.GalleryItem { return items })

	c.Open(items[0])
	for i := 0; i < len(items); i++ {
		_, ok := c.Next()
		require.True(t, ok)
	}

	current, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "1", current.ID)
}

func TestCursor_NavigationFollowsLiveList(t *testing.T) {
	items := threeItems()
	c := NewCursor(func() []models.GalleryItem { return items })

	c.Open(items[0])

	// Список перестроился (смена сортировки), открытый дизайн теперь
	// в середине; навигация идет от новой позиции
	items = []models.GalleryItem{items[2], items[0], items[1]}

	next, ok := c.Next()
	require.True(t, ok)
	assert.Equal(t, "2", next.ID)
}

func TestCursor_OpenItemFilteredOut(t *testing.T) {
	items := threeItems()
	c := NewCursor(func() []models.GalleryItem { return items })

	c.Open(items[0])

	// Открытый дизайн пропал из списка: Next начинает с его головы
	items = items[1:]

	idx, ok := c.Resolve()
	assert.Equal(t, -1, idx)
	assert.False(t, ok)

	next, ok := c.Next()
	require.True(t, ok)
	assert.Equal(t, "2", next.ID)
}

func TestCursor_EmptyListClosesCursor(t *testing.T) {
	items := threeItems()
	c := NewCursor(func() []models.GalleryItem { return items })

	c.Open(items[0])
	items = nil

	_, ok := c.Next()
	assert.False(t, ok)

	_, ok = c.Current()
	assert.False(t, ok)
}

func TestCursor_Enabled(t *testing.T) {
	items := threeItems()
	c := NewCursor(func() []models.GalleryItem { return items })

	assert.True(t, c.Enabled())

	items = items[:1]
	assert.False(t, c.Enabled())

	items = nil
	assert.False(t, c.Enabled())
}

func TestCursor_NavigationWithoutOpenItem(t *testing.T) {
	c := NewCursor(func() []models.GalleryItem { return threeItems() })

	_, ok := c.Next()
	assert.False(t, ok)

	_, ok = c.Previous()
	assert.False(t, ok)
}

func TestCursor_OpenResetsViewState(t *testing.T) {
	items := threeItems()
	c := NewCursor(func() []models.GalleryItem { return items })

	c.Open(items[0])
	c.SetZoom(2.5)
	c.ToggleBeforeAfter()

	view := c.View()
	assert.Equal(t, 2.5, view.Zoom)
	assert.True(t, view.ShowBeforeAfter)

	// Переход к соседнему дизайну сбрасывает просмотр
	_, ok := c.Next()
	require.True(t, ok)

	view = c.View()
	assert.Equal(t, 1.0, view.Zoom)
	assert.False(t, view.ShowBeforeAfter)
	assert.Equal(t, 50, view.SliderPosition)
}
