package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/akinalp/milan/models"
	"github.com/akinalp/milan/pkg"
	"github.com/akinalp/milan/pkg/cache"
	"github.com/akinalp/milan/repository"
)

func TestParseContactInfo(t *testing.T) {
	assert.Equal(t, models.ContactInfo{}, ParseContactInfo(""))
	assert.Equal(t, models.ContactInfo{}, ParseContactInfo("{broken"))

	got := ParseContactInfo(`{"whatsapp":"917023","phone":"0294","address":"Udaipur","mapsLink":"https://maps.app.goo.gl/x"}`)
	assert.Equal(t, models.ContactInfo{
		WhatsApp: "917023",
		Phone:    "0294",
		Address:  "Udaipur",
		MapsLink: "https://maps.app.goo.gl/x",
	}, got)
}

func TestSettingsContactCacheInvalidation(t *testing.T) {
	values := cache.New[string, string](time.Minute, time.Minute)
	t.Cleanup(values.Close)
	svc := NewSettingsService(repository.NewSQLiteSettingRepo(newTestDB(t)), values, nil, zap.NewNop())
	ctx := context.Background()

	empty, err := svc.GetContact(ctx)
	require.NoError(t, err)
	assert.Equal(t, &models.ContactInfo{}, empty)

	_, err = svc.SetContact(ctx, &models.ContactInfo{Phone: " 0294 123 ", Address: "Udaipur"})
	require.NoError(t, err)

	got, err := svc.GetContact(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0294 123", got.Phone, "write drops the cached value")

	_, err = svc.SetContact(ctx, &models.ContactInfo{MapsLink: "ftp://x"})
	assert.ErrorIs(t, err, pkg.ErrBadRequest)
}

func TestSettingsSetLogoRemovesReplacedImage(t *testing.T) {
	store := &fakeStore{}
	svc := NewSettingsService(repository.NewSQLiteSettingRepo(newTestDB(t)), nil, store, zap.NewNop())
	ctx := context.Background()

	url, err := svc.SetLogo(ctx, &models.SetLogoRequest{URL: " /api/uploads/1-logo.png "})
	require.NoError(t, err)
	assert.Equal(t, "/api/uploads/1-logo.png", url)
	assert.Empty(t, store.deleted, "nothing to replace yet")

	_, err = svc.SetLogo(ctx, &models.SetLogoRequest{URL: "/api/uploads/1-logo.png"})
	require.NoError(t, err)
	assert.Empty(t, store.deleted, "same url is kept")

	_, err = svc.SetLogo(ctx, &models.SetLogoRequest{URL: "/api/uploads/2-logo.png"})
	require.NoError(t, err)
	assert.Equal(t, []string{"/api/uploads/1-logo.png"}, store.deleted)

	logo, err := svc.GetLogo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/api/uploads/2-logo.png", logo)
}
