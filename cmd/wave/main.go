package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/supabase-community/supabase-go"

	"wave/internal/config"
	"wave/internal/db"
	httpx "wave/internal/http"
	"wave/internal/identity"
	"wave/internal/logging"
	"wave/internal/media"
	"wave/internal/suggestion"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		slog.Error("db connect failed", "error", err)
		os.Exit(1)
	}
	if err := db.AutoMigrateAndIndexes(gdb); err != nil {
		slog.Error("db migrate failed", "error", err)
		os.Exit(1)
	}

	sb, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, nil)
	if err != nil {
		slog.Error("supabase client failed", "error", err)
		os.Exit(1)
	}

	var verifier identity.Verifier
	if cfg.SupabaseJWTSecret != "" {
		verifier = identity.NewTokenVerifier(cfg.SupabaseJWTSecret)
	} else {
		verifier = identity.NewRemoteVerifier(sb, cfg.ExternalTimeout)
	}

	uploader := media.NewSupabaseStorage(sb, cfg.StorageBucket, cfg.ExternalTimeout)
	textGen := suggestion.NewGeminiClient(cfg.GeminiAPIURL, cfg.GeminiAPIKey, cfg.ExternalTimeout)
	geocoder := suggestion.NewMapsGeocoder(cfg.MapsAPIURL, cfg.MapsAPIKey, cfg.ExternalTimeout)

	r := httpx.NewRouter(cfg, gdb, verifier, uploader, textGen, geocoder)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}
