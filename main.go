package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"named-colors-backend/internal/colors"
	"named-colors-backend/internal/env"
	"named-colors-backend/internal/handler"
	"named-colors-backend/internal/repository"
	memoryrepo "named-colors-backend/internal/repository/memory"
	sqliterepo "named-colors-backend/internal/repository/sqlite"
	"named-colors-backend/internal/routes"
	"named-colors-backend/internal/service"
)

func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	cfg := env.MustLoad()
	logger.Info("konfiguration geladen",
		zap.String("data_source", cfg.DataSource),
		zap.String("colors_file_path", cfg.ColorsFilePath),
		zap.String("colors_url", cfg.ColorsURL),
		zap.String("server_addr", cfg.ServerAddr),
		zap.Float64("rate_limit", cfg.RateLimit),
	)

	colorMap := mustLoadColors(cfg, logger)
	repo, cleanup := mustInitRepo(cfg, colorMap, logger)
	if cleanup != nil {
		defer cleanup()
	}

	svc := service.NewColorService(repo, logger)
	h := handler.NewColorHandler(svc, logger)

	r := chi.NewRouter()
	routes.Setup(r, h, logger, cfg.RateLimit)

	srv := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		logger.Info("server wird gestartet", zap.String("adresse", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server wird heruntergefahren")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("erzwungenes herunterfahren", zap.Error(err))
	}
	logger.Info("server gestoppt")
}

// mustLoadColors lädt die Farbquelle gemäß Konfiguration: eine Remote-URL
// hat Vorrang, danach eine lokale Datei, sonst die mitgelieferte Palette.
func mustLoadColors(cfg env.Config, logger *zap.Logger) colors.ColorMap {
	switch {
	case cfg.ColorsURL != "":
		ctx, cancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.FetchTimeoutS)*time.Second)
		defer cancel()
		m, err := colors.LoadURL(ctx, cfg.ColorsURL)
		if err != nil {
			logger.Fatal("remote-farbquelle konnte nicht geladen werden",
				zap.String("url", cfg.ColorsURL), zap.Error(err))
		}
		logger.Info("farben von remote-quelle geladen",
			zap.String("url", cfg.ColorsURL), zap.Int("anzahl", len(m)))
		return m

	case cfg.ColorsFilePath != "":
		m, err := colors.LoadFromFile(cfg.ColorsFilePath)
		if err != nil {
			logger.Fatal("farbdatei konnte nicht geladen werden",
				zap.String("datei", cfg.ColorsFilePath), zap.Error(err))
		}
		logger.Info("farben aus datei geladen",
			zap.String("datei", cfg.ColorsFilePath), zap.Int("anzahl", len(m)))
		return m

	default:
		m, err := colors.Load()
		if err != nil {
			logger.Fatal("mitgelieferte palette konnte nicht geladen werden", zap.Error(err))
		}
		logger.Info("mitgelieferte palette geladen", zap.Int("anzahl", len(m)))
		return m
	}
}

// mustInitRepo erstellt je nach DATA_SOURCE das passende ColorRepository.
// Bei "sqlite" wird eine In-Memory-Datenbank verwendet; die zurückgegebene
// cleanup-Funktion schließt die DB-Verbindung.
func mustInitRepo(cfg env.Config, m colors.ColorMap, logger *zap.Logger) (repository.ColorRepository, func()) {
	switch cfg.DataSource {
	case "sqlite":
		repo, err := sqliterepo.NewColorRepository(":memory:", m, logger)
		if err != nil {
			logger.Fatal("sqlite-repository konnte nicht initialisiert werden", zap.Error(err))
		}
		return repo, func() { _ = repo.Close() }

	default:
		return memoryrepo.NewColorRepository(m, logger), nil
	}
}
