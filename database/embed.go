package database

import (
	"embed"
	"io/fs"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// Migrations, binary'ye gömülü migration dosyalarını kök dizin olarak döner.
// database.New'e doğrudan verilebilir:
//
//	db, err := database.New(cfg.Database.Path, database.Migrations(), logger)
func Migrations() fs.FS {
	sub, err := fs.Sub(embeddedMigrations, "migrations")
	if err != nil {
		// Sabit pattern; fs.Sub yalnızca geçersiz path'te hata döner.
		panic(err)
	}
	return sub
}
