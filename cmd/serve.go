package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/conneroisu/storecraft/internal/sections"
	"github.com/conneroisu/storecraft/internal/server"
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"s"},
	Short:   "Start the preview server with live reload",
	Long: `Serve a live preview of the store. The store document is watched and
every connected browser reloads after a change. A store that fails to load
keeps the last good preview and reports the error to the browser.

Examples:
  storecraft serve                   # Serve on localhost:8080
  storecraft serve -p 3000 --no-open # Custom port, no browser
  storecraft serve -s shop.json      # Serve a JSON store document`,
	RunE: runServe,
}

var serveFlags *StandardFlags

func init() {
	rootCmd.AddCommand(serveCmd)

	serveFlags = AddStandardFlags(serveCmd, "server")
}

func runServe(cmd *cobra.Command, _ []string) error {
	if err := serveFlags.ValidateFlags(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(a.config, sections.NewRegistry(), a.logger)
	fmt.Fprintf(cmd.OutOrStdout(), "Previewing %s at http://%s\n", a.config.Store.Path, a.config.Address())

	return srv.Start(ctx)
}
