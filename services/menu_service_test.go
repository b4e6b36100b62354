package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/akinalp/milan/models"
	"github.com/akinalp/milan/pkg"
	"github.com/akinalp/milan/repository"
)

func menuFixture() []models.MenuItem {
	return []models.MenuItem{
		{ID: "1", Name: "Masala Dosa", Category: "South Indian", IsFeatured: true},
		{ID: "2", Name: "Paneer Butter Masala", Category: "Main Course"},
		{ID: "3", Name: "Idli", Category: "South Indian", IsFeatured: true},
		{ID: "4", Name: "Gulab Jamun", Category: "Sweets", IsFeatured: true},
	}
}

func menuIDs(items []models.MenuItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestFilterMenu(t *testing.T) {
	items := menuFixture()

	assert.Equal(t, []string{"1", "2", "3", "4"}, menuIDs(FilterMenu(items, "", "")))
	assert.Equal(t, []string{"1", "2", "3", "4"}, menuIDs(FilterMenu(items, "All", " ")))
	assert.Equal(t, []string{"1", "3"}, menuIDs(FilterMenu(items, "South Indian", "")))
	assert.Equal(t, []string{"1", "2"}, menuIDs(FilterMenu(items, "", "MASALA")))
	assert.Equal(t, []string{"1"}, menuIDs(FilterMenu(items, "South Indian", "masala")))
	assert.Empty(t, FilterMenu(items, "Drinks", ""))
}

func TestMenuCategories(t *testing.T) {
	assert.Equal(t, []string{"All", "South Indian", "Main Course", "Sweets"}, MenuCategories(menuFixture()))
	assert.Equal(t, []string{"All"}, MenuCategories(nil))
}

func TestFeaturedItems(t *testing.T) {
	assert.Equal(t, []string{"1", "3"}, menuIDs(FeaturedItems(menuFixture(), 2)))
	assert.Equal(t, []string{"1", "3", "4"}, menuIDs(FeaturedItems(menuFixture(), 10)))
	assert.NotNil(t, FeaturedItems(nil, 3))
}

func TestMenuServiceCreateDefaultsToVeg(t *testing.T) {
	svc := NewMenuService(repository.NewSQLiteMenuRepo(newTestDB(t)), nil, zap.NewNop())
	ctx := context.Background()

	item, err := svc.Create(ctx, &models.CreateMenuItemRequest{Name: "Veg Thali", Price: 250, Category: "Thali"})
	require.NoError(t, err)
	assert.True(t, item.IsVeg)
	assert.NotEmpty(t, item.ID)

	_, err = svc.Create(ctx, &models.CreateMenuItemRequest{Name: "", Category: "Thali"})
	assert.ErrorIs(t, err, pkg.ErrBadRequest)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestSearchUdhar(t *testing.T) {
	records := []models.UdharRecord{
		{ID: "1", CustomerName: "Mohan Lal", Phone: "9876500001"},
		{ID: "2", CustomerName: "Sita", Phone: "9123400002"},
	}

	assert.Len(t, SearchUdhar(records, "  "), 2)
	assert.Len(t, SearchUdhar(records, "mohan"), 1)
	require.Len(t, SearchUdhar(records, "91234"), 1)
	assert.Equal(t, "2", SearchUdhar(records, "91234")[0].ID)
	assert.Empty(t, SearchUdhar(records, "ravi"))
}
