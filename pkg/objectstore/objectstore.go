// Package objectstore, yüklenen resimlerin saklandığı depoyu soyutlar.
//
// İki implementasyon vardır:
//   - localStore: upload dizinine yazar, /api/uploads/ altından servis edilir.
//   - supabaseStore: Supabase Storage bucket'ına yükler, public URL döner.
//
// Delete sadece deponun kendi ürettiği URL'lere dokunur (Owns). Dış URL'ler
// (ör. elle girilmiş bir görsel linki) sessizce atlanır.
package objectstore

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// Store, resim deposu.
type Store interface {
	// Put, veriyi name altında saklar ve public URL döner.
	Put(ctx context.Context, name string, data []byte, contentType string) (string, error)
	// Delete, URL bu depoya aitse nesneyi siler. Ait değilse nil döner.
	Delete(ctx context.Context, publicURL string) error
	// Owns, URL bu deponun ürettiği bir URL mi?
	Owns(publicURL string) bool
}

var whitespace = regexp.MustCompile(`\s+`)

// ObjectName, yüklenen dosya için benzersiz isim üretir:
// "<unix-millis>-<dosya adı, boşluklar '-' ve küçük harf>".
// Dizin bileşenleri atılır.
func ObjectName(filename string, now time.Time) string {
	if i := strings.LastIndexAny(filename, `/\`); i >= 0 {
		filename = filename[i+1:]
	}
	filename = strings.ToLower(whitespace.ReplaceAllString(filename, "-"))
	if filename == "" || filename == "." || filename == ".." {
		filename = "image"
	}
	return fmt.Sprintf("%d-%s", now.UnixMilli(), filename)
}

// GuestPrefix, ziyaretçi yüklemelerinin isim öneki. Admin yüklemeleri zaman
// damgasıyla başladığından bu alana düşemez.
const GuestPrefix = "guest-"

// GuestObjectName, ziyaretçi yüklemesi için ObjectName'in GuestPrefix'li hali.
func GuestObjectName(filename string, now time.Time) string {
	return GuestPrefix + ObjectName(filename, now)
}

// IsGuestObject, URL'in son segmenti ziyaretçi yükleme alanında mı?
// Depoya ait olup olmadığına bakmaz; onu Store.Owns söyler.
func IsGuestObject(publicURL string) bool {
	name, err := url.PathUnescape(lastSegment(publicURL))
	if err != nil || strings.ContainsAny(name, `/\`) {
		return false
	}
	return strings.HasPrefix(name, GuestPrefix) && len(name) > len(GuestPrefix)
}

// lastSegment, URL'in son path segmentini döner (query string hariç).
func lastSegment(u string) string {
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		u = u[:i]
	}
	if i := strings.LastIndex(u, "/"); i >= 0 {
		return u[i+1:]
	}
	return u
}
