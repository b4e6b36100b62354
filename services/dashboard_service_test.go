package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akinalp/milan/models"
	"github.com/akinalp/milan/repository"
)

func TestDashboardStats(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	menu := repository.NewSQLiteMenuRepo(db)
	reviews := repository.NewSQLiteReviewRepo(db)
	messages := repository.NewSQLiteMessageRepo(db)
	staff := repository.NewSQLiteStaffRepo(db)
	gallery := repository.NewSQLiteGalleryRepo(db)

	require.NoError(t, menu.Create(ctx, &models.MenuItem{Name: "Idli", Price: 60, Category: "South Indian"}))
	require.NoError(t, reviews.Create(ctx, &models.Review{UserName: "A", Rating: 5, Content: "x", Source: models.ReviewSourceGoogle, IsApproved: true}))
	require.NoError(t, reviews.Create(ctx, &models.Review{UserName: "B", Rating: 2, Content: "y", Source: models.ReviewSourceWebsite}))
	require.NoError(t, messages.Create(ctx, &models.CustomerMessage{Name: "C", Phone: "1", Message: "hi"}))
	require.NoError(t, staff.Create(ctx, &models.StaffMember{Name: "D", Role: "Chef"}))

	img := &models.GalleryImage{URL: "a.jpg"}
	require.NoError(t, gallery.Create(ctx, img))
	for range 3 {
		_, err := gallery.IncrementLikes(ctx, img.ID)
		require.NoError(t, err)
	}

	stats, err := NewDashboardService(menu, reviews, messages, staff, gallery).Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &models.DashboardStats{Dishes: 1, Reviews: 1, Messages: 1, Staff: 1, TotalLikes: 3}, stats)
}
