// Package main, Milan Restaurant backend'inin giriş noktasıdır.
//
// Komutlar (cobra):
//
//	milan                 → serve (varsayılan)
//	milan serve           → HTTP server + WebSocket hub + cron
//	milan migrate         → sadece migration'ları uygular
//	milan hash-password   → ADMIN_PASSWORD_HASH için bcrypt hash üretir
//	milan import-menu     → YAML dosyasından menü yükler
//
// Global değişken yok — her komut kendi bağımlılıklarını kurar.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	serve := newServeCommand()

	root := &cobra.Command{
		Use:           "milan",
		Short:         "Milan Restaurant site and back office server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}

	root.AddCommand(
		serve,
		newMigrateCommand(),
		newHashPasswordCommand(),
		newImportMenuCommand(),
	)
	return root
}
