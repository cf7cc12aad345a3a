package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/trendview/internal/loader"
	"github.com/ziadkadry99/trendview/internal/server"
	"github.com/ziadkadry99/trendview/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the live viewer web server",
	Long: `Loads the snapshot once in the background and serves the viewer page.
Each browser tab gets its own live session; sections, language tabs and
source filters update over a WebSocket.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides config)")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Port = port
	}

	notice, err := site.RenderNotice(cfg.Notice)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load failures are logged by the store and shown in every session.
	store := loader.NewStore()
	go store.Run(ctx, loader.New(cfg.Snapshot))

	srv := server.New(server.Config{
		Port:     cfg.Port,
		AllowAll: cfg.AllowAllOrigins,
		Verbose:  verbose,
	}, store, server.Options{
		Notice:     notice,
		Controller: controllerOptions(cfg),
	})

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	if open, _ := cmd.Flags().GetBool("open"); open {
		go site.OpenBrowser(fmt.Sprintf("http://localhost:%d", cfg.Port))
	}

	fmt.Fprintf(os.Stderr, "trendview %s serving %s on port %d\n", Version, cfg.Snapshot, cfg.Port)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
