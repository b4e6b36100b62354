// Package imageutil, yüklenen resimleri depolamadan önce küçültür.
//
// Kurallar:
//   - Uzun kenar en fazla MaxDimension piksel.
//   - JPEG olarak yeniden kodlanır; kalite MaxBytes altına inene kadar düşürülür.
//   - Herhangi bir adım başarısız olursa orijinal byte'lar döner.
package imageutil

import (
	"bytes"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/png"
	"net/http"

	"github.com/disintegration/imaging"
)

const (
	// MaxDimension, uzun kenarın piksel sınırı.
	MaxDimension = 1200
	// MaxBytes, hedef dosya boyutu (0.5MB).
	MaxBytes = 500 * 1024
	// maxPixels, decode edilecek en büyük resim (decompression bomb koruması).
	maxPixels = 50_000_000
)

var qualitySteps = []int{85, 75, 65, 55, 45, 35}

// Result, sıkıştırma sonucu.
type Result struct {
	Data        []byte
	ContentType string
	Compressed  bool // false → orijinal byte'lar döndü
}

// Compress, resmi küçültmeyi dener.
// Zaten sınırlar içindeyse veya decode edilemiyorsa orijinali döner.
func Compress(data []byte) Result {
	original := Result{Data: data, ContentType: http.DetectContentType(data)}

	// Animasyonlu GIF'ler tek kareye düşmesin.
	if original.ContentType == "image/gif" {
		return original
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || cfg.Width*cfg.Height > maxPixels {
		return original
	}
	if len(data) <= MaxBytes && cfg.Width <= MaxDimension && cfg.Height <= MaxDimension {
		return original
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return original
	}

	b := img.Bounds()
	if b.Dx() > MaxDimension || b.Dy() > MaxDimension {
		img = imaging.Fit(img, MaxDimension, MaxDimension, imaging.Lanczos)
	}

	// JPEG alfa kanalı taşımaz — şeffaf alanlar beyaza basılır.
	flat := imaging.New(img.Bounds().Dx(), img.Bounds().Dy(), color.White)
	flat = imaging.Overlay(flat, img, image.Pt(0, 0), 1.0)

	var best []byte
	for _, q := range qualitySteps {
		var buf bytes.Buffer
		if err := imaging.Encode(&buf, flat, imaging.JPEG, imaging.JPEGQuality(q)); err != nil {
			return original
		}
		best = buf.Bytes()
		if len(best) <= MaxBytes {
			break
		}
	}

	// Yeniden kodlama dosyayı büyüttüyse ve boyut zaten uygunsa orijinal kalır.
	if len(best) >= len(data) && cfg.Width <= MaxDimension && cfg.Height <= MaxDimension {
		return original
	}

	return Result{Data: best, ContentType: "image/jpeg", Compressed: true}
}

// IsImage, içerik türü desteklenen bir resim mi?
func IsImage(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/png", "image/gif", "image/webp":
		return true
	}
	return false
}
