package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/akinalp/milan/config"
	"github.com/akinalp/milan/database"
	"github.com/akinalp/milan/models"
	"github.com/akinalp/milan/pkg/logger"
	"github.com/akinalp/milan/repository"
	"github.com/akinalp/milan/services"
)

// openDatabase, tek seferlik komutlar için config + logger + DB kurar.
func openDatabase() (*database.DB, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	log, err := logger.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return nil, nil, err
	}
	db, err := database.New(cfg.Database.Path, database.Migrations(), log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, log, nil
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, log, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			return db.Close()
		},
	}
}

func newHashPasswordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
		Long:  "Hashes the given password, or reads one line from stdin when no argument is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var password string
			if len(args) == 1 {
				password = args[0]
			} else {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("failed to read password: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}
			if strings.TrimSpace(password) == "" {
				return errors.New("password cannot be empty")
			}

			hash, err := services.HashPassword(password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

// menuFile, import-menu YAML formatı:
//
//	items:
//	  - name: Paneer Tikka
//	    price: 260
//	    category: Starters
//	    is_veg: true
//	    is_featured: true
type menuFile struct {
	Items []menuFileItem `yaml:"items"`
}

type menuFileItem struct {
	Name       string  `yaml:"name"`
	Price      float64 `yaml:"price"`
	Category   string  `yaml:"category"`
	IsVeg      *bool   `yaml:"is_veg"`
	Image      string  `yaml:"image"`
	IsFeatured bool    `yaml:"is_featured"`
}

func (i menuFileItem) request() *models.CreateMenuItemRequest {
	return &models.CreateMenuItemRequest{
		Name:       i.Name,
		Price:      i.Price,
		Category:   i.Category,
		IsVeg:      i.IsVeg,
		Image:      i.Image,
		IsFeatured: i.IsFeatured,
	}
}

// parseMenuFile, YAML'ı okur ve her kaydı doğrular. İlk hatada durur.
func parseMenuFile(data []byte) ([]*models.CreateMenuItemRequest, error) {
	var file menuFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("invalid menu file: %w", err)
	}
	if len(file.Items) == 0 {
		return nil, errors.New("menu file has no items")
	}

	reqs := make([]*models.CreateMenuItemRequest, 0, len(file.Items))
	for i, item := range file.Items {
		req := item.request()
		if err := req.Validate(); err != nil {
			return nil, fmt.Errorf("item %d (%q): %w", i+1, item.Name, err)
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

func newImportMenuCommand() *cobra.Command {
	var (
		path   string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "import-menu",
		Short: "Import menu items from a YAML file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			reqs, err := parseMenuFile(data)
			if err != nil {
				return err
			}
			if dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "%d item(s) valid\n", len(reqs))
				return nil
			}

			db, log, err := openDatabase()
			if err != nil {
				return err
			}
			defer db.Close()
			defer func() { _ = log.Sync() }()

			// Import resim yüklemez; image alanı hazır URL olmalı.
			menu := services.NewMenuService(repository.NewSQLiteMenuRepo(db.Conn), nil, log)
			for _, req := range reqs {
				if _, err := menu.Create(cmd.Context(), req); err != nil {
					return fmt.Errorf("failed to import %q: %w", req.Name, err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d item(s) imported\n", len(reqs))
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", "", "YAML file with an items list")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate the file without writing")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
