// Package database, SQLite bağlantısını açar ve gömülü migration'ları uygular.
//
// Restoranın tüm kalıcı verisi (menü, yorumlar, galeri, stok, udhar defteri,
// personel, ayarlar, sepetler) tek bir SQLite dosyasında durur.
package database

import (
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	_ "modernc.org/sqlite" // pure-Go driver, CGO gerekmez
)

// MemoryPath, test'lerde kullanılan in-memory veritabanı yolu.
const MemoryPath = ":memory:"

// connPragmas, her bağlantıda uygulanır. busy_timeout, eşzamanlı yazarların
// SQLITE_BUSY yerine kilidi beklemesini sağlar (ör. aynı anda gelen like'lar).
const connPragmas = "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"

// sentinelTable, migration kaydı olmayan eski kurulumları tanımak için bakılan tablo.
const sentinelTable = "menu_items"

// skippableErrors, yarım kalmış bir migration tekrar çalışırken atlanabilecek hatalar.
var skippableErrors = []string{
	"duplicate column name",
}

// DB, *sql.DB havuzunu ve logger'ı taşır.
type DB struct {
	Conn   *sql.DB
	logger *zap.Logger
}

// New, dbPath'teki veritabanını açar (dizin yoksa oluşturur) ve migrations
// içindeki .sql dosyalarından uygulanmamış olanları isim sırasıyla çalıştırır.
func New(dbPath string, migrations fs.FS, logger *zap.Logger) (*DB, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if dbPath != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", dbPath+connPragmas)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Her in-memory bağlantı ayrı bir veritabanıdır.
	if dbPath == MemoryPath {
		conn.SetMaxOpenConns(1)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := &DB{Conn: conn, logger: logger.Named("database")}
	if err := db.migrate(migrations); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	db.logger.Info("connected and migrations applied", zap.String("path", dbPath))
	return db, nil
}

// Close, bağlantı havuzunu kapatır.
func (db *DB) Close() error {
	return db.Conn.Close()
}

// migrate, schema_migrations tablosuna göre eksik migration'ları uygular.
func (db *DB) migrate(migrations fs.FS) error {
	if _, err := db.Conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			filename TEXT PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	files, err := migrationFiles(migrations)
	if err != nil {
		return err
	}
	applied, err := db.appliedMigrations()
	if err != nil {
		return err
	}

	if len(applied) == 0 {
		adopted, err := db.adoptExisting(files)
		if err != nil || adopted {
			return err
		}
	}

	for _, file := range files {
		if applied[file] {
			continue
		}

		content, err := fs.ReadFile(migrations, file)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", file, err)
		}
		if err := db.execStatements(file, string(content)); err != nil {
			return err
		}
		if err := db.markApplied(file); err != nil {
			return err
		}
		db.logger.Info("migration applied", zap.String("file", file))
	}
	return nil
}

// migrationFiles, kök dizindeki .sql dosyalarını isim sırasıyla döner.
func migrationFiles(migrations fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(migrations, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

func (db *DB) appliedMigrations() (map[string]bool, error) {
	rows, err := db.Conn.Query(`SELECT filename FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("failed to query schema_migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan migration row: %w", err)
		}
		applied[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate migration rows: %w", err)
	}
	return applied, nil
}

// adoptExisting, kaydı olmayan ama şeması kurulu bir veritabanında tüm
// dosyaları uygulanmış sayar. Şema yoksa false döner.
func (db *DB) adoptExisting(files []string) (bool, error) {
	var n int
	if err := db.Conn.QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, sentinelTable,
	).Scan(&n); err != nil {
		return false, fmt.Errorf("failed to check existing tables: %w", err)
	}
	if n == 0 {
		return false, nil
	}

	for _, file := range files {
		if err := db.markApplied(file); err != nil {
			return false, err
		}
	}
	db.logger.Info("adopted existing schema", zap.Int("migrations", len(files)))
	return true, nil
}

func (db *DB) markApplied(file string) error {
	if _, err := db.Conn.Exec(`INSERT INTO schema_migrations (filename) VALUES (?)`, file); err != nil {
		return fmt.Errorf("failed to record migration %s: %w", file, err)
	}
	return nil
}

// execStatements, dosyayı statement statement çalıştırır; skippableErrors
// uyarı olarak loglanıp geçilir.
func (db *DB) execStatements(file, content string) error {
	for i, stmt := range splitStatements(content) {
		_, err := db.Conn.Exec(stmt)
		if err == nil {
			continue
		}
		if !skippable(err) {
			return fmt.Errorf("failed to execute migration %s (statement %d): %w", file, i+1, err)
		}
		db.logger.Warn("statement skipped",
			zap.String("file", file),
			zap.Int("statement", i+1),
			zap.Error(err),
		)
	}
	return nil
}

func skippable(err error) bool {
	msg := err.Error()
	for _, pattern := range skippableErrors {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

// splitStatements, SQL metnini ';' ile böler. Tek tırnaklı literal'lerdeki
// ';' ve '' kaçışları korunur, "--" satır yorumları atılır.
func splitStatements(sql string) []string {
	var (
		out      []string
		cur      strings.Builder
		inString bool
	)
	flush := func() {
		if s := strings.TrimSpace(cur.String()); s != "" {
			out = append(out, s)
		}
		cur.Reset()
	}

	for i := 0; i < len(sql); i++ {
		ch := sql[i]
		switch {
		case !inString && ch == '-' && i+1 < len(sql) && sql[i+1] == '-':
			for i < len(sql) && sql[i] != '\n' {
				i++
			}
			cur.WriteByte('\n')
		case inString && ch == '\'' && i+1 < len(sql) && sql[i+1] == '\'':
			cur.WriteString("''")
			i++
		case ch == '\'':
			inString = !inString
			cur.WriteByte(ch)
		case ch == ';' && !inString:
			flush()
		default:
			cur.WriteByte(ch)
		}
	}
	flush()
	return out
}
