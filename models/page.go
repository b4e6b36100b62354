package models

// Public sayfa aggregate'leri — her sayfanın tek istekte ihtiyaç duyduğu veri.

// HomePage, ana sayfa verisi.
type HomePage struct {
	Featured      []MenuItem     `json:"featured"`
	Reviews       []Review       `json:"reviews"`
	HeroImages    []string       `json:"hero_images"`
	MakranaImages []string       `json:"makrana_images"`
	Showcase      []GalleryImage `json:"showcase"`
	Contact       ContactInfo    `json:"contact"`
	LogoURL       string         `json:"logo_url"`
}

// MenuPage, menü sayfası verisi.
type MenuPage struct {
	Highlights []MenuHighlight `json:"highlights"`
	Scans      []MenuScan      `json:"scans"`
	Items      []MenuItem      `json:"items"`
	Categories []string        `json:"categories"`
	Featured   []MenuItem      `json:"featured"`
}

// GalleryPage, galeri sayfası verisi.
type GalleryPage struct {
	Images []GalleryImage `json:"images"`
}

// AboutPage, hakkımızda sayfası verisi.
type AboutPage struct {
	Contact    ContactInfo `json:"contact"`
	LogoURL    string      `json:"logo_url"`
	HeroImages []string    `json:"hero_images"`
}

// SiteInfo, navbar/footer'ın ihtiyaç duyduğu ortak bilgiler.
type SiteInfo struct {
	RestaurantName string      `json:"restaurant_name"`
	LogoURL        string      `json:"logo_url"`
	Contact        ContactInfo `json:"contact"`
}
