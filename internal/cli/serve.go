package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/asghar-0017/aparntment-frontend/internal/app/share"
	"github.com/asghar-0017/aparntment-frontend/internal/infra/api"
	"github.com/asghar-0017/aparntment-frontend/internal/infra/cache"
	"github.com/asghar-0017/aparntment-frontend/internal/infra/config"
	ginserver "github.com/asghar-0017/aparntment-frontend/internal/infra/http/gin"
	"github.com/asghar-0017/aparntment-frontend/internal/infra/obs"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the front-end HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")

	return cmd
}

func runServe(addrOverride string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if addrOverride != "" {
		cfg.HTTPAddr = addrOverride
	}
	logger := obs.NewLogger(cfg.Env)

	client := api.NewClient(cfg.APIBaseURL, cfg.APITimeout, logger)

	var store cache.Store
	switch cfg.CacheMode {
	case "redis":
		store, err = cache.NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return err
		}
	default:
		store = cache.NewMemoryStore()
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("cache close failed", "error", err)
		}
	}()
	listings := cache.NewListings(store, cfg.CacheTTL, logger)

	shareSvc := share.NewService(client, cfg.PublicBaseURL, cfg.WhatsAppNumber)

	handlers := ginserver.Handlers{
		Listing: ginserver.ListingHandler{Catalog: client, Cache: listings, Availability: client},
		Booking: ginserver.BookingHandler{Catalog: client, Cache: listings, API: client, Logger: logger},
		Share:   ginserver.ShareHandler{Catalog: client, Cache: listings, Share: shareSvc},
		Report:  ginserver.ReportHandler{API: client},
		Pages:   ginserver.PagesHandler{},
	}

	health := obs.HealthHandlers{
		Ready: func(ctx context.Context) error {
			_, err := client.Apartments(ctx)
			return err
		},
	}

	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, health, handlers)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr, "api_base_url", cfg.APIBaseURL, "cache_mode", cfg.CacheMode)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logger.Info("HTTP server stopped")
	return nil
}
