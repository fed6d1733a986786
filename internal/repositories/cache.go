package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"agri-weather/config"
	"agri-weather/internal/metrics"
	"agri-weather/internal/models"
	"agri-weather/pkg/observe"
)

const cacheKeyPrefix = "agri-weather:forecast"

// CachedWeatherRepository is a read-through Redis cache in front of another provider.
// Redis failures are logged and never fail a fetch.
type CachedWeatherRepository struct {
	next WeatherRepository
	rdb  *redis.Client
	ttl  time.Duration
	l    *observe.Logger
}

func NewCachedWeatherRepository(next WeatherRepository, rdb *redis.Client, ttl time.Duration, l *observe.Logger) *CachedWeatherRepository {
	return &CachedWeatherRepository{
		next: next,
		rdb:  rdb,
		ttl:  ttl,
		l:    l,
	}
}

func (c *CachedWeatherRepository) Name() string {
	return c.next.Name()
}

func (c *CachedWeatherRepository) FetchForecast(ctx context.Context, lat, lon float64, forecastWindow int) (models.Forecast, error) {
	key := CacheKey(c.Name(), lat, lon, forecastWindow)

	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached models.Forecast
		if jsonErr := json.Unmarshal(raw, &cached); jsonErr == nil {
			metrics.RecordCacheLookup(c.Name(), "hit")
			c.l.Debug("forecast cache hit", map[string]any{"key": key})
			return cached, nil
		}
		metrics.RecordCacheLookup(c.Name(), "error")
		c.l.Warning("discarding undecodable cache entry", map[string]any{"key": key})
	case errors.Is(err, redis.Nil):
		metrics.RecordCacheLookup(c.Name(), "miss")
	default:
		metrics.RecordCacheLookup(c.Name(), "error")
		c.l.Warning("forecast cache read failed", map[string]any{"key": key, "err": err.Error()})
	}

	forecast, err := c.next.FetchForecast(ctx, lat, lon, forecastWindow)
	if err != nil {
		return forecast, err
	}

	payload, err := json.Marshal(forecast)
	if err != nil {
		c.l.Warning("cannot encode forecast for cache", map[string]any{"key": key, "err": err.Error()})
		return forecast, nil
	}
	if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.l.Warning("forecast cache write failed", map[string]any{"key": key, "err": err.Error()})
	}

	return forecast, nil
}

func CacheKey(provider string, lat, lon float64, days int) string {
	return fmt.Sprintf("%s:%s:%.4f:%.4f:%d", cacheKeyPrefix, provider, lat, lon, days)
}

// NewRedisClient connects to the configured Redis and pings it.
// It returns nil, nil when no address is configured.
func NewRedisClient(ctx context.Context, cfg config.CacheConfig) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		MaxRetries:   3,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}
