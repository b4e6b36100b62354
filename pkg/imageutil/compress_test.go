package imageutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: uint8(x ^ y), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestCompressSmallImageUnchanged(t *testing.T) {
	data := encodePNG(t, 64, 48)

	res := Compress(data)

	assert.False(t, res.Compressed)
	assert.Equal(t, "image/png", res.ContentType)
	assert.Equal(t, data, res.Data)
}

func TestCompressLargeImageIsResized(t *testing.T) {
	data := encodePNG(t, 2400, 600)

	res := Compress(data)

	require.True(t, res.Compressed)
	assert.Equal(t, "image/jpeg", res.ContentType)
	assert.LessOrEqual(t, len(res.Data), MaxBytes)

	img, err := imaging.Decode(bytes.NewReader(res.Data))
	require.NoError(t, err)
	assert.Equal(t, MaxDimension, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())
}

func TestCompressNonImage(t *testing.T) {
	data := []byte("%PDF-1.4 not an image")

	res := Compress(data)

	assert.False(t, res.Compressed)
	assert.False(t, IsImage(res.ContentType))
}

func TestIsImage(t *testing.T) {
	for _, ct := range []string{"image/jpeg", "image/png", "image/gif", "image/webp"} {
		assert.True(t, IsImage(ct), ct)
	}
	assert.False(t, IsImage("image/svg+xml"))
	assert.False(t, IsImage("text/html; charset=utf-8"))
}
