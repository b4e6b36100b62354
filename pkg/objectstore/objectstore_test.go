package objectstore

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akinalp/milan/pkg/supabase"
)

func TestObjectName(t *testing.T) {
	now := time.UnixMilli(1700000000123)

	tests := []struct {
		in, want string
	}{
		{"Paneer Tikka.JPG", "1700000000123-paneer-tikka.jpg"},
		{"../../etc/passwd", "1700000000123-passwd"},
		{`C:\photos\Dal  Makhani.png`, "1700000000123-dal-makhani.png"},
		{"", "1700000000123-image"},
		{"..", "1700000000123-image"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ObjectName(tt.in, now), tt.in)
	}
}

func TestGuestObjects(t *testing.T) {
	now := time.UnixMilli(1700000000123)

	name := GuestObjectName("My Meal.png", now)
	assert.Equal(t, "guest-1700000000123-my-meal.png", name)
	assert.True(t, IsGuestObject("/api/uploads/"+name))
	assert.True(t, IsGuestObject("https://x.supabase.co/storage/v1/object/public/images/"+name+"?v=1"))

	assert.False(t, IsGuestObject("/api/uploads/"+ObjectName("guest-1.png", now)), "admin names start with a timestamp")
	assert.False(t, IsGuestObject("/api/uploads/guest-"))
	assert.False(t, IsGuestObject("/api/uploads/..%2Fguest-1-a.png"))
	assert.False(t, IsGuestObject("/api/uploads/%zz"))
}

func TestLocalStorePutDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	url, err := store.Put(ctx, "123-dosa.jpg", []byte("img"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "/api/uploads/123-dosa.jpg", url)
	assert.True(t, store.Owns(url))

	data, err := os.ReadFile(filepath.Join(dir, "123-dosa.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "img", string(data))

	_, err = store.Put(ctx, "123-dosa.jpg", []byte("again"), "image/jpeg")
	assert.Error(t, err, "existing files are not overwritten")

	require.NoError(t, store.Delete(ctx, url))
	_, err = os.Stat(filepath.Join(dir, "123-dosa.jpg"))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, store.Delete(ctx, url), "deleting twice is fine")
}

func TestLocalStoreIgnoresForeignURLs(t *testing.T) {
	root := t.TempDir()
	outside := filepath.Join(root, "keep.jpg")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0644))

	store, err := NewLocalStore(filepath.Join(root, "uploads"))
	require.NoError(t, err)

	assert.False(t, store.Owns("https://images.unsplash.com/keep.jpg"))
	require.NoError(t, store.Delete(context.Background(), "https://images.unsplash.com/keep.jpg"))
	require.NoError(t, store.Delete(context.Background(), "/api/uploads/..%2Fkeep.jpg"))

	_, err = os.Stat(outside)
	assert.NoError(t, err, "paths cannot escape the upload directory")
}

func TestSupabaseStore(t *testing.T) {
	var uploaded, removed string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			uploaded = r.URL.Path
		case http.MethodDelete:
			removed = r.URL.Path
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client, err := supabase.New(supabase.Config{URL: srv.URL, APIKey: "k"})
	require.NoError(t, err)
	store := NewSupabaseStore(client.Bucket("images"))
	ctx := context.Background()

	url, err := store.Put(ctx, "1-naan.jpg", []byte("x"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/storage/v1/object/public/images/1-naan.jpg", url)
	assert.Equal(t, "/storage/v1/object/images/1-naan.jpg", uploaded)
	assert.True(t, store.Owns(url))

	require.NoError(t, store.Delete(ctx, url))
	assert.Equal(t, "/storage/v1/object/images", removed)

	removed = ""
	require.NoError(t, store.Delete(ctx, "/api/uploads/other.jpg"))
	assert.Empty(t, removed)
}
