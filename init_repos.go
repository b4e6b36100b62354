// Package main — Repository katmanı başlatma.
//
// initRepositories, tüm repository implementasyonlarını oluşturur.
// Hepsi aynı *sql.DB'yi paylaşır; sql.DB thread-safe bir connection pool'dur.
package main

import (
	"database/sql"

	"github.com/akinalp/milan/pkg/crypto"
	"github.com/akinalp/milan/repository"
)

// Repositories, tüm repository instance'larını tutan container struct.
type Repositories struct {
	Menu      repository.MenuRepository
	Highlight repository.HighlightRepository
	Scan      repository.ScanRepository
	Review    repository.ReviewRepository
	Message   repository.MessageRepository
	Setting   repository.SettingRepository
	Hero      repository.SlideRepository
	Makrana   repository.SlideRepository
	Gallery   repository.GalleryRepository
	Staff     repository.StaffRepository
	Udhar     repository.UdharRepository
	Stock     repository.StockRepository
	Cart      repository.CartStore
}

// initRepositories, veritabanı bağlantısından tüm repository'leri oluşturur.
// cartStore nil ise sepetler SQLite'taki carts tablosunda tutulur.
// staffCipher nil değilse personel Aadhar numaraları şifreli yazılır.
func initRepositories(conn *sql.DB, cartStore repository.CartStore, staffCipher *crypto.Cipher) *Repositories {
	if cartStore == nil {
		cartStore = repository.NewSQLiteCartStore(conn)
	}
	staff := repository.NewSQLiteStaffRepo(conn)
	if staffCipher != nil {
		staff = repository.NewEncryptedStaffRepo(staff, staffCipher)
	}
	return &Repositories{
		Menu:      repository.NewSQLiteMenuRepo(conn),
		Highlight: repository.NewSQLiteHighlightRepo(conn),
		Scan:      repository.NewSQLiteScanRepo(conn),
		Review:    repository.NewSQLiteReviewRepo(conn),
		Message:   repository.NewSQLiteMessageRepo(conn),
		Setting:   repository.NewSQLiteSettingRepo(conn),
		Hero:      repository.NewSQLiteSlideRepo(conn, repository.SlideTableHero),
		Makrana:   repository.NewSQLiteSlideRepo(conn, repository.SlideTableMakrana),
		Gallery:   repository.NewSQLiteGalleryRepo(conn),
		Staff:     staff,
		Udhar:     repository.NewSQLiteUdharRepo(conn),
		Stock:     repository.NewSQLiteStockRepo(conn),
		Cart:      cartStore,
	}
}
