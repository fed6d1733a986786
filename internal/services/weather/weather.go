package weather

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"agri-weather/internal/history"
	"agri-weather/internal/metrics"
	"agri-weather/internal/models"
	"agri-weather/internal/repositories"
	"agri-weather/internal/services/agronomy"
	"agri-weather/pkg/observe"
)

const (
	defaultForecastWindow = 30
	recentSearches        = 5
	historyName           = "weather"
)

// ErrNoProviderData is returned when every configured provider failed.
var ErrNoProviderData = errors.New("no weather provider returned data")

// WeatherService represents the weather service.
type WeatherService struct {
	repos          []repositories.WeatherRepository
	forecastWindow int
	searches       *history.Ring[models.LocationSearch]
	now            func() time.Time
	l              *observe.Logger
}

// NewWeatherService takes the providers in priority order.
func NewWeatherService(repos []repositories.WeatherRepository, l *observe.Logger, forecastWindow, historyCapacity int) *WeatherService {
	if forecastWindow <= 0 {
		forecastWindow = defaultForecastWindow
	}
	return &WeatherService{
		repos:          repos,
		forecastWindow: forecastWindow,
		searches:       history.NewRing[models.LocationSearch](historyCapacity),
		now:            time.Now,
		l:              l,
	}
}

func (s *WeatherService) Locations() []models.Location {
	return slices.Clone(locations)
}

func (s *WeatherService) ResolveLocation(key string) (models.Location, error) {
	return lookupLocation(key)
}

// fetchOutcome is what one provider goroutine reports back to FetchDaily.
type fetchOutcome struct {
	index    int
	forecast models.Forecast
	ok       bool
}

// FetchDaily queries every provider concurrently and returns the forecast of
// the highest-priority provider that succeeded. It returns as soon as every
// provider ahead of that one has failed, and cancels the fetches still running.
func (s *WeatherService) FetchDaily(ctx context.Context, loc models.Location) (models.Forecast, error) {
	s.l.Info("starting forecast fetch", map[string]any{
		"location":       loc.Key,
		"lat":            loc.Latitude,
		"lon":            loc.Longitude,
		"forecastWindow": s.forecastWindow,
		"repositories":   len(s.repos),
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// buffered so that goroutines finishing after the return never block
	outcomes := make(chan fetchOutcome, len(s.repos))

	for i, repo := range s.repos {
		go func(i int, repo repositories.WeatherRepository) {
			s.l.Debug("fetching forecast", map[string]any{"repo": repo.Name(), "location": loc.Key})

			forecast, err := repo.FetchForecast(ctx, loc.Latitude, loc.Longitude, s.forecastWindow)
			switch {
			case err != nil && ctx.Err() != nil:
				s.l.Debug("forecast fetch cancelled", map[string]any{"repo": repo.Name()})
			case err != nil:
				s.l.Warning("failed to fetch forecast", map[string]any{"repo": repo.Name(), "err": err.Error()})
			case len(forecast.ForecastData) == 0:
				s.l.Warning("provider returned no daily records", map[string]any{"repo": repo.Name()})
			default:
				s.l.Info("successfully fetched forecast", map[string]any{
					"repo": repo.Name(),
					"days": len(forecast.ForecastData),
				})
				outcomes <- fetchOutcome{index: i, forecast: forecast, ok: true}
				return
			}
			outcomes <- fetchOutcome{index: i}
		}(i, repo)
	}

	settled := make([]*fetchOutcome, len(s.repos))
	next := 0
	for range s.repos {
		outcome := <-outcomes
		settled[outcome.index] = &outcome

		// skip past failed providers; stop at the first one still running
		for next < len(settled) && settled[next] != nil && !settled[next].ok {
			next++
		}
		if next < len(settled) && settled[next] != nil {
			forecast := settled[next].forecast
			s.l.Info("completed forecast fetch", map[string]any{
				"provider": forecast.RepositoryName,
				"priority": next,
			})
			return forecast, nil
		}
	}

	s.l.Error(ErrNoProviderData, map[string]any{
		"location":       loc.Key,
		"forecastWindow": s.forecastWindow,
	})
	return models.Forecast{}, ErrNoProviderData
}

// Weather returns the weekly and monthly averages for a location and records the search.
func (s *WeatherService) Weather(ctx context.Context, locationKey string) (models.LocationSearch, error) {
	loc, err := s.ResolveLocation(locationKey)
	if err != nil {
		return models.LocationSearch{}, err
	}

	forecast, err := s.FetchDaily(ctx, loc)
	if err != nil {
		return models.LocationSearch{}, err
	}

	summary, err := summarize(loc, forecast)
	if err != nil {
		return models.LocationSearch{}, err
	}

	search := models.LocationSearch{
		ID:        uuid.NewString(),
		Location:  loc.Key,
		Timestamp: s.now().UTC(),
		Result:    summary,
	}
	s.searches.Push(search)
	metrics.SetHistorySize(historyName, s.searches.Len())

	return search, nil
}

func (s *WeatherService) Forecast(ctx context.Context, locationKey string) (models.MonthlyForecast, error) {
	loc, err := s.ResolveLocation(locationKey)
	if err != nil {
		return models.MonthlyForecast{}, err
	}

	forecast, err := s.FetchDaily(ctx, loc)
	if err != nil {
		return models.MonthlyForecast{}, err
	}

	return models.MonthlyForecast{
		Location: loc,
		Provider: forecast.RepositoryName,
		Weeks:    agronomy.WeeklyForecasts(forecast.ForecastData),
	}, nil
}

// Agriculture analyses a location's forecast for one crop.
// The crop is checked before any provider is called.
func (s *WeatherService) Agriculture(ctx context.Context, locationKey, cropKey string) (models.AgricultureReport, error) {
	loc, err := s.ResolveLocation(locationKey)
	if err != nil {
		return models.AgricultureReport{}, err
	}

	crop, err := agronomy.LookupCrop(cropKey)
	if err != nil {
		return models.AgricultureReport{}, err
	}

	forecast, err := s.FetchDaily(ctx, loc)
	if err != nil {
		return models.AgricultureReport{}, err
	}

	analysis, err := s.analyze(forecast.ForecastData, crop.Key)
	if err != nil {
		return models.AgricultureReport{}, err
	}

	return models.AgricultureReport{
		Location: loc,
		Provider: forecast.RepositoryName,
		Analysis: analysis,
		CropInfo: crop,
	}, nil
}

// Report fetches once and builds every view of a location. An empty cropKey
// leaves the agriculture section out; a failing analysis is reported inside it.
func (s *WeatherService) Report(ctx context.Context, locationKey, cropKey string) (models.Report, error) {
	loc, err := s.ResolveLocation(locationKey)
	if err != nil {
		return models.Report{}, err
	}

	forecast, err := s.FetchDaily(ctx, loc)
	if err != nil {
		return models.Report{}, err
	}

	report := models.Report{
		Location: loc,
		Provider: forecast.RepositoryName,
		Forecast: agronomy.WeeklyForecasts(forecast.ForecastData),
	}

	if summary, err := summarize(loc, forecast); err == nil {
		report.Weather = &summary
	} else {
		s.l.Warning("report weather section unavailable", map[string]any{"location": loc.Key, "err": err.Error()})
	}

	if cropKey != "" {
		report.Agriculture = s.agricultureSection(forecast.ForecastData, cropKey)
	}

	return report, nil
}

func (s *WeatherService) agricultureSection(records []models.DailyRecord, cropKey string) *models.AgricultureSection {
	crop, err := agronomy.LookupCrop(cropKey)
	if err != nil {
		return &models.AgricultureSection{Error: sectionError(err)}
	}

	analysis, err := s.analyze(records, crop.Key)
	if err != nil {
		return &models.AgricultureSection{Error: sectionError(err)}
	}

	return &models.AgricultureSection{Analysis: &analysis, CropInfo: &crop}
}

func (s *WeatherService) analyze(records []models.DailyRecord, cropKey string) (models.Analysis, error) {
	analysis, err := agronomy.Analyze(records, cropKey)
	if err != nil {
		return analysis, err
	}
	metrics.RecordAnalysis(cropKey, string(analysis.RiskLevel))
	return analysis, nil
}

// History returns up to limit searches, newest first, and the number of
// searches held. limit <= 0 returns all of them.
func (s *WeatherService) History(limit int) ([]models.LocationSearch, int) {
	return s.searches.List(limit), s.searches.Len()
}

func (s *WeatherService) Stats() models.WeatherStats {
	all := s.searches.List(0)

	unique := make(map[string]struct{}, len(all))
	for _, search := range all {
		unique[search.Location] = struct{}{}
	}

	return models.WeatherStats{
		TotalSearches:   len(all),
		UniqueLocations: len(unique),
		RecentSearches:  all[:min(recentSearches, len(all))],
	}
}

func summarize(loc models.Location, forecast models.Forecast) (models.WeatherSummary, error) {
	weekly, err := agronomy.WeeklyAverage(forecast.ForecastData)
	if err != nil {
		return models.WeatherSummary{}, errors.Wrapf(agronomy.ErrInsufficientData, "weekly average for %s", loc.Key)
	}
	monthly, err := agronomy.MonthlyAverage(forecast.ForecastData)
	if err != nil {
		return models.WeatherSummary{}, errors.Wrapf(agronomy.ErrInsufficientData, "monthly average for %s", loc.Key)
	}

	return models.WeatherSummary{
		Location:        loc,
		Provider:        forecast.RepositoryName,
		Days:            len(forecast.ForecastData),
		WeeklyAverages:  weekly,
		MonthlyAverages: monthly,
	}, nil
}

func sectionError(err error) *models.SectionError {
	var cropErr *agronomy.UnsupportedCropError
	if errors.As(err, &cropErr) {
		return &models.SectionError{
			Code:    "unsupported_crop",
			Message: cropErr.Error(),
			Options: cropErr.Supported,
		}
	}
	if errors.Is(err, agronomy.ErrInsufficientData) {
		return &models.SectionError{Code: "insufficient_data", Message: err.Error()}
	}
	return &models.SectionError{Code: "analysis_failed", Message: err.Error()}
}
