package chatbot

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/yeremiapane/restaurant-concierge/services"
)

// Recommendations -> hasil ranking. Rated=false artinya belum ada rating sama sekali
// dan Items berisi item pertama dari katalog.
type Recommendations struct {
	Rated bool
	Items []services.MenuItemWithRating
}

// Recommend memilih maksimal limit item. Jika ada item yang punya rating, hanya item
// tersebut yang diurutkan (rata-rata tertinggi dulu, seri tetap urutan katalog).
func Recommend(items []services.MenuItemWithRating, limit int) Recommendations {
	rated := make([]services.MenuItemWithRating, 0, len(items))
	for _, item := range items {
		if item.RatingCount > 0 {
			rated = append(rated, item)
		}
	}

	if len(rated) == 0 {
		return Recommendations{Items: firstN(items, limit)}
	}

	sort.SliceStable(rated, func(i, j int) bool {
		return rated[i].AverageRating > rated[j].AverageRating
	})
	return Recommendations{Rated: true, Items: firstN(rated, limit)}
}

func FormatRecommendations(r Recommendations) string {
	lines := make([]string, 0, len(r.Items))

	if !r.Rated {
		for _, item := range r.Items {
			lines = append(lines, fmt.Sprintf("🍽️ %s - %s", item.Name, menuPrice(item.Price)))
		}
		return "Here are our popular dishes:\n" + strings.Join(lines, "\n") + "\n\nTry them and rate your favorites! ⭐"
	}

	for _, item := range r.Items {
		noun := "review"
		if item.RatingCount > 1 {
			noun = "reviews"
		}
		lines = append(lines, fmt.Sprintf("⭐ %s (%.1f/5 from %d %s) - %s",
			item.Name, item.AverageRating, item.RatingCount, noun, menuPrice(item.Price)))
	}
	return "Our top-rated dishes:\n" + strings.Join(lines, "\n") + "\n\nHighly recommended by our guests! 🌟"
}

// menuPrice -> harga apa adanya tanpa pemisah ribuan, contoh 1299.5 -> "₹1299.5"
func menuPrice(price float64) string {
	return "₹" + strconv.FormatFloat(price, 'f', -1, 64)
}

func firstN(items []services.MenuItemWithRating, n int) []services.MenuItemWithRating {
	if len(items) > n {
		return items[:n]
	}
	return items
}
