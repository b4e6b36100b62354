package services

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/akinalp/milan/pkg"
	"github.com/akinalp/milan/pkg/imageutil"
	"github.com/akinalp/milan/pkg/metrics"
)

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 200, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newUploadFixture(maxSize, publicMax int64) *uploadService {
	svc := NewUploadService(&fakeStore{}, maxSize, publicMax, metrics.New(), zap.NewNop()).(*uploadService)
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return svc
}

func TestUploadStoresImage(t *testing.T) {
	svc := newUploadFixture(1<<20, 1<<20)

	res, err := svc.Upload(context.Background(), bytes.NewReader(tinyPNG(t)), "Logo Final.png")
	require.NoError(t, err)
	assert.Equal(t, "/api/uploads/1700000000000-logo-final.png", res.URL)
	assert.Equal(t, "image/png", res.ContentType)
	assert.False(t, res.Compressed)
}

func TestUploadRejects(t *testing.T) {
	// PNG imzası ve IHDR bile 16 byte'ı aşar.
	svc := newUploadFixture(1<<20, 16)
	ctx := context.Background()

	_, err := svc.UploadPublic(ctx, bytes.NewReader(tinyPNG(t)), "a.png")
	assert.ErrorIs(t, err, pkg.ErrBadRequest, "public limit applies")

	_, err = svc.Upload(ctx, strings.NewReader(""), "a.png")
	assert.ErrorIs(t, err, pkg.ErrBadRequest)

	_, err = svc.Upload(ctx, strings.NewReader("%PDF-1.4 not an image"), "menu.pdf")
	assert.ErrorIs(t, err, pkg.ErrBadRequest)
}

func TestUploadFilename(t *testing.T) {
	assert.Equal(t, "dosa.png", uploadFilename(" dosa.png ", imageutil.Result{}))
	assert.Equal(t, "dosa.jpg", uploadFilename("dosa.png", imageutil.Result{Compressed: true}))
	assert.Len(t, uploadFilename("", imageutil.Result{}), 36)
}
