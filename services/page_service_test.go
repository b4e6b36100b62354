package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/akinalp/milan/models"
	"github.com/akinalp/milan/pkg/metrics"
	"github.com/akinalp/milan/repository"
)

func newPageFixture(t *testing.T) (PageService, *sqlFixtures) {
	t.Helper()
	db := newTestDB(t)
	log := zap.NewNop()
	f := &sqlFixtures{
		menu:       repository.NewSQLiteMenuRepo(db),
		highlights: repository.NewSQLiteHighlightRepo(db),
		scans:      repository.NewSQLiteScanRepo(db),
		reviews:    repository.NewSQLiteReviewRepo(db),
		hero:       repository.NewSQLiteSlideRepo(db, repository.SlideTableHero),
		settings:   repository.NewSQLiteSettingRepo(db),
	}

	settings := NewSettingsService(f.settings, nil, nil, log)
	svc := NewPageService(
		NewMenuService(f.menu, nil, log),
		NewHighlightService(f.highlights, nil, log),
		NewScanService(f.scans, nil, log),
		NewReviewService(f.reviews, nil, newFakeNotifier(), &recordingHub{}, metrics.New(), log),
		NewSlideService(f.hero, nil, "hero", log),
		NewSlideService(repository.NewSQLiteSlideRepo(db, repository.SlideTableMakrana), nil, "makrana", log),
		NewGalleryService(repository.NewSQLiteGalleryRepo(db), nil, nil, &recordingHub{}, metrics.New(), log),
		settings,
		"Milan",
	)
	return svc, f
}

type sqlFixtures struct {
	menu       repository.MenuRepository
	highlights repository.HighlightRepository
	scans      repository.ScanRepository
	reviews    repository.ReviewRepository
	hero       repository.SlideRepository
	settings   repository.SettingRepository
}

func TestPageMenuAggregate(t *testing.T) {
	svc, f := newPageFixture(t)
	ctx := context.Background()

	require.NoError(t, f.menu.Create(ctx, &models.MenuItem{Name: "Idli", Price: 60, Category: "South Indian", IsFeatured: true}))
	require.NoError(t, f.menu.Create(ctx, &models.MenuItem{Name: "Lassi", Price: 80, Category: "Drinks"}))
	require.NoError(t, f.highlights.Create(ctx, &models.MenuHighlight{Name: "Thali", Image: "t.jpg"}))
	require.NoError(t, f.scans.Create(ctx, &models.MenuScan{Title: "Page 1", Image: "p1.jpg", Order: ptr(1)}))

	page, err := svc.Menu(ctx)
	require.NoError(t, err)

	assert.Len(t, page.Items, 2)
	assert.ElementsMatch(t, []string{"All", "South Indian", "Drinks"}, page.Categories)
	assert.Equal(t, "All", page.Categories[0])
	require.Len(t, page.Featured, 1)
	assert.Equal(t, "Idli", page.Featured[0].Name)
	assert.Len(t, page.Highlights, 1)
	assert.Len(t, page.Scans, 1)
}

func TestPageHomeOnlyApprovedReviews(t *testing.T) {
	svc, f := newPageFixture(t)
	ctx := context.Background()

	require.NoError(t, f.reviews.Create(ctx, &models.Review{UserName: "A", Rating: 5, Content: "x", Source: models.ReviewSourceGoogle, IsApproved: true}))
	require.NoError(t, f.reviews.Create(ctx, &models.Review{UserName: "B", Rating: 1, Content: "y", Source: models.ReviewSourceWebsite}))
	require.NoError(t, f.hero.Create(ctx, &models.SlideImage{ImageURL: "/api/uploads/hero.jpg"}))

	page, err := svc.Home(ctx)
	require.NoError(t, err)

	require.Len(t, page.Reviews, 1)
	assert.Equal(t, "A", page.Reviews[0].UserName)
	assert.Equal(t, []string{"/api/uploads/hero.jpg"}, page.HeroImages)
	assert.Empty(t, page.LogoURL)
}

func TestPageSiteInfo(t *testing.T) {
	svc, f := newPageFixture(t)
	ctx := context.Background()

	require.NoError(t, f.settings.Upsert(ctx, models.SettingLogoURL, []byte(`{"url":"/api/uploads/logo.png"}`)))

	info, err := svc.SiteInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Milan", info.RestaurantName)
	assert.Equal(t, "/api/uploads/logo.png", info.LogoURL)
}
