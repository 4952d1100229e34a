package cache

import (
	"fmt"

	"starwars-api/config"

	"github.com/umakantv/go-utils/cache"
	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"
)

// InitializeCache connects the response cache described by cfg.
// It returns nil when caching is disabled (empty Type); handlers treat nil as "no cache".
func InitializeCache(cfg config.CacheConfig) (cache.Cache, error) {
	if cfg.Type == "" {
		logger.Info("Response cache disabled")
		return nil, nil
	}

	c, err := cache.New(cache.Config{
		Type:          cfg.Type,
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		RedisDB:       cfg.RedisDB,
	})
	if err != nil {
		return nil, fmt.Errorf("initialize %s cache: %w", cfg.Type, err)
	}

	logger.Info("Response cache ready", zap.String("type", cfg.Type), zap.String("addr", cfg.RedisAddr))
	return c, nil
}
