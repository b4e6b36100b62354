package models

// DashboardStats, admin ana sayfasındaki sayaç kartları.
type DashboardStats struct {
	Dishes     int `json:"dishes"`
	Reviews    int `json:"reviews"` // Sadece onaylı yorumlar
	Messages   int `json:"messages"`
	Staff      int `json:"staff"`
	TotalLikes int `json:"total_likes"`
}
