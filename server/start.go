package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	cachepackage "starwars-api/cache"
	"starwars-api/config"
	"starwars-api/database"
	"starwars-api/handlers"
	"starwars-api/store"

	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"
)

// StartServer wires config, database, cache and routes, then serves until SIGINT/SIGTERM
func StartServer(cfg *config.Config) error {
	logger.Init(logger.LoggerConfig{
		CallerKey:  "file",
		TimeKey:    "timestamp",
		CallerSkip: 1,
	})

	logger.Info("Starting Star Wars API...")

	dbConn, err := database.InitializeDatabase(cfg.Database)
	if err != nil {
		logger.Error("Failed to initialize database", zap.Error(err))
		return err
	}
	defer dbConn.Close()

	cache, err := cachepackage.InitializeCache(cfg.Cache)
	if err != nil {
		logger.Error("Failed to initialize cache", zap.Error(err))
		return err
	}
	if cache != nil {
		defer cache.Close()
	}

	st := store.New(dbConn)
	catalog := handlers.NewCatalogHandler(st, cache, cfg.Cache.TTL)
	favorites := handlers.NewFavoriteHandler(st)

	routes := Routes(catalog, favorites, handlers.HealthHandler(st))
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: NewRouter(routes, cfg.CORS),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	logger.Info("Star Wars API started", zap.String("port", cfg.Port), zap.Int("routes", len(routes)))
	for _, route := range routes {
		logger.Debug("Route registered", zap.String("name", route.Name), zap.String("method", route.Method), zap.String("path", route.Path))
	}

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to start", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
		return err
	}
	return nil
}
