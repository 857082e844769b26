package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dilharaj/airgallery/internal/analysis"
	"github.com/dilharaj/airgallery/internal/config"
	"github.com/dilharaj/airgallery/internal/gallery"
	"github.com/dilharaj/airgallery/internal/logger"
	"github.com/dilharaj/airgallery/internal/metrics"
	"github.com/dilharaj/airgallery/internal/netutil"
	"github.com/dilharaj/airgallery/internal/version"
	"github.com/dilharaj/airgallery/internal/web"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var serveDir string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the gallery over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serveDir, "dir", "d", "", "Directory to serve (overrides GALLERY_DIR)")
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if serveDir != "" {
		cfg.GalleryDir = serveDir
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger.Init(cfg.LogLevel)
	log := logger.Default()

	names, err := gallery.Scan(cfg.GalleryDir)
	if err != nil {
		return fmt.Errorf("failed to scan gallery directory: %w", err)
	}
	log.Info("gallery directory scanned", "dir", cfg.GalleryDir, "images", len(names))

	var dec analysis.Decoder
	if cfg.DisableAnalysis {
		dec = analysis.NewSizeOnlyDecoder()
		log.Warn("image analysis disabled, serving size-only metadata")
	} else {
		dec = analysis.NewFullDecoder()
		log.Info("image analysis enabled", "palette_size", cfg.PaletteSize)
	}

	cache := analysis.NewCache()
	assembler := analysis.NewAssembler(dec, log).WithPaletteSize(cfg.PaletteSize)

	metrics.SetAppInfo(version.Version, cfg.Environment)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", web.NewRouter(&web.Config{
		GalleryDir: cfg.GalleryDir,
		Cache:      cache,
		Assembler:  assembler,
	}))

	port := cfg.Port
	if port == 0 {
		port, err = netutil.FindAvailablePort(8000)
		if err != nil {
			return fmt.Errorf("failed to find a free port: %w", err)
		}
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      metrics.HTTPMetricsMiddleware(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)

	go func() {
		log.Info("server starting",
			"port", port,
			"local_url", fmt.Sprintf("http://localhost:%d", port),
			"network_url", fmt.Sprintf("http://%s:%d", netutil.LocalIP(), port),
		)
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-shutdown:
		log.Info("shutdown signal received", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			_ = server.Close()
			return fmt.Errorf("forced shutdown: %w", err)
		}
	}

	log.Info("server stopped gracefully", "cached_records", cache.Len())
	return nil
}
