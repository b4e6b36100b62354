package services

import (
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/akinalp/milan/models"
)

// Yorum listesi sıralama seçenekleri.
const (
	SortRelevant = "relevant"
	SortNewest   = "newest"
	SortHighest  = "highest"
	SortLowest   = "lowest"
)

// SourceAll, kaynak filtresi uygulanmaz.
const SourceAll = "All"

// FilterTags, yorum sayfasındaki sabit etiket listesi. Sayaçlar sadece
// bu etiketler için tutulur; "All" toplam yorum sayısıdır.
var FilterTags = []string{
	"All",
	"Vegetarian",
	"Dosa",
	"Service",
	"Sweets",
	"Pav Bhaji",
	"Behavior",
	"South Indian Food",
	"Malai Kofta",
	"White Sauce Pasta",
	"Sambhar",
	"Price",
	"Meal",
}

// FeedQuery, public yorum listesi sorgusu. Boş alanlar varsayılanı kullanır.
type FeedQuery struct {
	Source string // All | Google | Website
	Tag    string // All | FilterTags'ten biri | serbest metin
	Sort   string // relevant | newest | highest | lowest
}

// BuildReviewFeed, onaylı yorumlardan filtrelenmiş/sıralanmış feed üretir.
// Etiket sayaçları ve puan istatistikleri filtreden bağımsız, tüm listeden hesaplanır.
func BuildReviewFeed(reviews []models.Review, q FeedQuery) models.ReviewFeed {
	list := FilterReviews(reviews, q.Source, q.Tag)
	SortReviews(list, q.Sort)
	return models.ReviewFeed{
		Reviews:   list,
		TagCounts: TagCounts(reviews),
		Stats:     RatingStats(reviews),
	}
}

// FilterReviews, kaynağa ve etikete göre süzer; girdi dilimini değiştirmez.
//
// Etiket filtresi büyük/küçük harf duyarsızdır: yorumun etiketlerinden biri
// aranan metni içeriyorsa veya yorum metni içeriyorsa eşleşir.
func FilterReviews(reviews []models.Review, source, tag string) []models.Review {
	source = strings.TrimSpace(source)
	needle := strings.ToLower(strings.TrimSpace(tag))
	if strings.EqualFold(needle, "all") {
		needle = ""
	}

	out := make([]models.Review, 0, len(reviews))
	for _, r := range reviews {
		if source != "" && source != SourceAll && string(r.Source) != source {
			continue
		}
		if needle != "" && !reviewMatches(r, needle) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func reviewMatches(r models.Review, needle string) bool {
	for _, t := range r.Tags {
		if strings.Contains(strings.ToLower(t), needle) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(r.Content), needle)
}

// ReviewScore, "en alakalı" sıralamasının puanı:
// metin uzunluğu/10 + like×5 + resim×10. Uzunluk kod noktası (rune) sayısıdır.
func ReviewScore(r models.Review) float64 {
	return float64(utf8.RuneCountInString(r.Content))/10 + float64(r.Likes*5) + float64(len(r.Images)*10)
}

// SortReviews, listeyi yerinde ve stabil sıralar. Bilinmeyen değer "relevant" sayılır.
func SortReviews(reviews []models.Review, by string) {
	switch by {
	case SortNewest:
		slices.SortStableFunc(reviews, func(a, b models.Review) int {
			return b.Date.Compare(a.Date)
		})
	case SortHighest:
		slices.SortStableFunc(reviews, func(a, b models.Review) int {
			return b.Rating - a.Rating
		})
	case SortLowest:
		slices.SortStableFunc(reviews, func(a, b models.Review) int {
			return a.Rating - b.Rating
		})
	default:
		slices.SortStableFunc(reviews, func(a, b models.Review) int {
			sa, sb := ReviewScore(a), ReviewScore(b)
			switch {
			case sa > sb:
				return -1
			case sa < sb:
				return 1
			}
			return 0
		})
	}
}

// TagCounts, FilterTags'teki her etiketin kaç yorumda geçtiği.
// Eşleşme büyük/küçük harf duyarsız tam eşitliktir; "All" toplamı verir.
func TagCounts(reviews []models.Review) map[string]int {
	counts := map[string]int{"All": len(reviews)}
	for _, r := range reviews {
		for _, t := range r.Tags {
			for _, canonical := range FilterTags {
				if strings.EqualFold(t, canonical) {
					counts[canonical]++
					break
				}
			}
		}
	}
	return counts
}

// RatingStats, toplam, tek ondalıklı ortalama ve 1-5 yıldız dağılımı.
func RatingStats(reviews []models.Review) models.ReviewStats {
	stats := models.ReviewStats{
		Total:        len(reviews),
		Average:      "0.0",
		Distribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}
	if len(reviews) == 0 {
		return stats
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
		if _, ok := stats.Distribution[r.Rating]; ok {
			stats.Distribution[r.Rating]++
		}
	}
	stats.Average = strconv.FormatFloat(float64(sum)/float64(len(reviews)), 'f', 1, 64)
	return stats
}
