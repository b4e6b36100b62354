package services

import (
	"bytes"
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/akinalp/milan/models"
	"github.com/akinalp/milan/pkg"
	"github.com/akinalp/milan/pkg/metrics"
	"github.com/akinalp/milan/pkg/objectstore"
	"github.com/akinalp/milan/repository"
	"github.com/akinalp/milan/ws"
)

func newReviewFixture(t *testing.T) (ReviewService, *recordingHub, *fakeNotifier) {
	t.Helper()
	hub := &recordingHub{}
	notifier := newFakeNotifier()
	repo := repository.NewSQLiteReviewRepo(newTestDB(t))
	return NewReviewService(repo, nil, notifier, hub, metrics.New(), zap.NewNop()), hub, notifier
}

func TestReviewSubmitIsAlwaysPending(t *testing.T) {
	svc, hub, notifier := newReviewFixture(t)
	ctx, cancel := context.WithCancel(context.Background())

	review, err := svc.Submit(ctx, &models.CreateReviewRequest{
		UserName:   "Kavya",
		Rating:     5,
		Content:    "Loved the thali",
		Source:     models.ReviewSourceGoogle,
		IsApproved: true,
	})
	require.NoError(t, err)
	cancel()

	assert.False(t, review.IsApproved)
	assert.Equal(t, models.ReviewSourceWebsite, review.Source)
	assert.Equal(t, []string{ws.OpReviewCreate}, hub.ops())

	select {
	case got := <-notifier.reviews:
		assert.Equal(t, review.ID, got.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("pending review notification was not sent")
	}

	approved, err := svc.ListApproved(context.Background())
	require.NoError(t, err)
	assert.Empty(t, approved)
}

func TestReviewModeration(t *testing.T) {
	svc, _, _ := newReviewFixture(t)
	ctx := context.Background()

	review, err := svc.Create(ctx, &models.CreateReviewRequest{
		UserName: "Arjun", Rating: 4, Content: "Good dosa", Images: []string{" ", "/api/uploads/1-dosa.jpg"},
		Tags: []string{"Dosa"}, Source: models.ReviewSourceGoogle,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/api/uploads/1-dosa.jpg"}, review.Images)

	toggled, err := svc.ToggleApproved(ctx, review.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsApproved)

	replied, err := svc.Reply(ctx, review.ID, &models.ReplyReviewRequest{Response: "  Thank you!  "})
	require.NoError(t, err)
	require.NotNil(t, replied.OwnerResponse)
	assert.Equal(t, "Thank you!", *replied.OwnerResponse)

	cleared, err := svc.Reply(ctx, review.ID, &models.ReplyReviewRequest{Response: ""})
	require.NoError(t, err)
	assert.Nil(t, cleared.OwnerResponse)

	feed, err := svc.Feed(ctx, FeedQuery{Tag: "dosa"})
	require.NoError(t, err)
	require.Len(t, feed.Reviews, 1)
	assert.Equal(t, "4.0", feed.Stats.Average)

	require.NoError(t, svc.Delete(ctx, review.ID))
	_, err = svc.ToggleApproved(ctx, review.ID)
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestReviewImagesStayInGuestUploads(t *testing.T) {
	dir := t.TempDir()
	store, err := objectstore.NewLocalStore(dir)
	require.NoError(t, err)
	repo := repository.NewSQLiteReviewRepo(newTestDB(t))
	svc := NewReviewService(repo, store, newFakeNotifier(), &recordingHub{}, metrics.New(), zap.NewNop())
	uploads := NewUploadService(store, 1<<20, 1<<20, metrics.New(), zap.NewNop())
	ctx := context.Background()
	exists := func(url string) bool {
		_, err := os.Stat(filepath.Join(dir, path.Base(url)))
		return err == nil
	}

	logo, err := uploads.Upload(ctx, bytes.NewReader(tinyPNG(t)), "logo.png")
	require.NoError(t, err)
	guest, err := uploads.UploadPublic(ctx, bytes.NewReader(tinyPNG(t)), "my meal.png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path.Base(guest.URL), objectstore.GuestPrefix), guest.URL)

	for _, img := range []string{logo.URL, "https://cdn.example.com/guest-1-a.png", "/api/uploads/..%2Fguest-1-a.png"} {
		_, err = svc.Submit(ctx, &models.CreateReviewRequest{UserName: "Spam", Rating: 1, Content: "x", Images: []string{img}})
		assert.ErrorIs(t, err, pkg.ErrBadRequest, img)
	}

	// Admin yorumundaki site görseli yorumla birlikte silinmez.
	imported, err := svc.Create(ctx, &models.CreateReviewRequest{
		UserName: "Meera", Rating: 5, Content: "Lovely", Images: []string{logo.URL}, Source: models.ReviewSourceGoogle,
	})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, imported.ID))
	assert.True(t, exists(logo.URL), "site image survives review deletion")

	submitted, err := svc.Submit(ctx, &models.CreateReviewRequest{
		UserName: "Ravi", Rating: 4, Content: "Nice", Images: []string{guest.URL},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{guest.URL}, submitted.Images)
	require.NoError(t, svc.Delete(ctx, submitted.ID))
	assert.False(t, exists(guest.URL), "guest upload is removed with its review")
}
