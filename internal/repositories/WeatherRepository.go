package repositories

import (
	"context"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"agri-weather/config"
	"agri-weather/internal/models"
	"agri-weather/pkg/observe"
)

const defaultTimeout = 15 * time.Second

// HTTPClient is the subset of *http.Client the repositories use.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type WeatherRepository interface {
	Name() string
	FetchForecast(ctx context.Context, lat, lon float64, forecastWindow int) (models.Forecast, error)
}

// InitWeatherRepositories builds the configured providers in priority order.
// Providers that cannot be built are logged and skipped; with none configured
// Open-Meteo is used. A non-nil rdb wraps every provider in a cache.
func InitWeatherRepositories(cfg *config.Config, l *observe.Logger, rdb *redis.Client) []WeatherRepository {
	apis := cfg.GetWeatherAPIs()
	if len(apis) == 0 {
		apis = []config.WeatherAPIConfig{{Name: OpenMeteoName}}
	}

	cacheTTL := time.Duration(cfg.Cache.TTL) * time.Second

	var repos []WeatherRepository
	for _, api := range apis {
		httpClient := NewHTTPClient(time.Duration(api.Timeout) * time.Second)

		var repo WeatherRepository
		switch api.Name {
		case OpenMeteoName:
			repo = NewOpenMeteoRepository(api.BaseURL, l, httpClient)
		case OpenWeatherMapName:
			owm, err := NewOpenWeatherMapRepository(api.BaseURL, api.APIKey, l, httpClient)
			if err != nil {
				l.Warning("skipping weather provider", map[string]any{"provider": api.Name, "err": err.Error()})
				continue
			}
			repo = owm
		default:
			// Add more cases for new providers to extend the app
			l.Warning("unknown weather provider in config", map[string]any{"provider": api.Name})
			continue
		}

		if rdb != nil {
			repo = NewCachedWeatherRepository(repo, rdb, cacheTTL, l)
		}
		repos = append(repos, repo)
	}

	return repos
}

// NewHTTPClient returns a client with the given timeout, or the default one when it is not positive.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout}
}
