package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"agri-weather/internal/metrics"
	"agri-weather/internal/models"
	"agri-weather/pkg/observe"
)

const (
	OpenWeatherMapName    = "openweathermap"
	OpenWeatherMapBaseURL = "https://api.openweathermap.org/data/2.5/forecast"

	// 5 days of 3-hour steps
	openWeatherMapMaxSteps = 40
)

type OpenWeatherMapRepository struct {
	baseURL    string
	APIKey     string
	httpClient HTTPClient
	l          *observe.Logger
}

func NewOpenWeatherMapRepository(baseURL, apiKey string, l *observe.Logger, httpClient HTTPClient) (*OpenWeatherMapRepository, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("API key cannot be empty")
	}
	if baseURL == "" {
		baseURL = OpenWeatherMapBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &OpenWeatherMapRepository{
		baseURL:    baseURL,
		APIKey:     apiKey,
		httpClient: httpClient,
		l:          l,
	}, nil
}

func (w *OpenWeatherMapRepository) Name() string {
	return OpenWeatherMapName
}

type OpenWeatherMapResponse struct {
	List []OpenWeatherMapStep `json:"list"`
}

type OpenWeatherMapStep struct {
	Dt    int64  `json:"dt"`
	DtTxt string `json:"dt_txt"`
	Main  struct {
		Temp     float64 `json:"temp"`
		TempMin  float64 `json:"temp_min"`
		TempMax  float64 `json:"temp_max"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Pop  float64 `json:"pop"`
	Rain struct {
		ThreeHours float64 `json:"3h"`
	} `json:"rain"`
}

func (w *OpenWeatherMapRepository) FetchForecast(
	ctx context.Context,
	lat float64,
	lon float64,
	forecastWindow int,
) (models.Forecast, error) {
	forecast := models.Forecast{
		RepositoryName: w.Name(),
		Lat:            lat,
		Lon:            lon,
		ForecastWindow: forecastWindow,
	}

	// Validate API key before making request
	if strings.TrimSpace(w.APIKey) == "" {
		return forecast, errors.New("API key cannot be empty")
	}

	url := fmt.Sprintf("%s?lat=%f&lon=%f&units=metric&cnt=%d&appid=%s", w.baseURL, lat, lon, openWeatherMapMaxSteps, w.APIKey)

	w.l.Info("making openweathermap API request", map[string]any{
		"params": forecast.RequestParams(),
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return forecast, fmt.Errorf("failed to create request: %w", err)
	}

	start := time.Now()
	resp, err := w.httpClient.Do(req)
	if err != nil {
		metrics.RecordUpstream(w.Name(), time.Since(start), err)
		return forecast, fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	w.l.Info("received openweathermap API response", map[string]any{
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(resp.Body)
	metrics.RecordUpstream(w.Name(), time.Since(start), statusErr(resp, err))
	if err != nil {
		return forecast, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return forecast, fmt.Errorf("HTTP error (status %d): %s", resp.StatusCode, resp.Status)
	}

	var response OpenWeatherMapResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return forecast, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	w.l.Info("parsed API response", map[string]any{
		"items": len(response.List),
	})

	// Check if we have any data
	if len(response.List) == 0 {
		return forecast, fmt.Errorf("no forecast data available")
	}

	records, err := dailyRecordsOpenWeatherMap(response)
	if err != nil {
		return forecast, fmt.Errorf("failed to process daily records: %w", err)
	}

	if forecastWindow > 0 && len(records) > forecastWindow {
		records = records[:forecastWindow]
	}
	forecast.ForecastData = records

	return forecast, nil
}

// dayAccumulator folds the 3-hour steps of one calendar day.
type dayAccumulator struct {
	steps        int
	tempSum      float64
	humiditySum  float64
	windSum      float64
	conditions   map[string]int
	topCondition string
	topCount     int
}

func (a *dayAccumulator) add(rec *models.DailyRecord, step OpenWeatherMapStep) {
	if a.steps == 0 {
		rec.Temp.Min = step.Main.TempMin
		rec.Temp.Max = step.Main.TempMax
	}
	a.steps++

	rec.Temp.Min = min(rec.Temp.Min, step.Main.TempMin)
	rec.Temp.Max = max(rec.Temp.Max, step.Main.TempMax)
	rec.Precipitation = max(rec.Precipitation, step.Pop)
	rec.Rain += step.Rain.ThreeHours

	a.tempSum += step.Main.Temp
	a.humiditySum += step.Main.Humidity
	a.windSum += step.Wind.Speed

	if len(step.Weather) > 0 {
		label := step.Weather[0].Main
		a.conditions[label]++
		// first label to reach the top count keeps it
		if a.conditions[label] > a.topCount {
			a.topCondition = label
			a.topCount = a.conditions[label]
		}
	}

	n := float64(a.steps)
	rec.Temp.Day = a.tempSum / n
	rec.Humidity = a.humiditySum / n
	rec.WindSpeed = a.windSum / n
	rec.Condition = a.topCondition
}

func dailyRecordsOpenWeatherMap(response OpenWeatherMapResponse) ([]models.DailyRecord, error) {
	var (
		records []models.DailyRecord
		accs    []*dayAccumulator
	)

	// Group steps by date, keeping the order of first appearance
	for _, step := range response.List {
		// Parse the date from dt_txt (format: "2025-07-25 18:00:00")
		date, err := parseDate(step.DtTxt)
		if err != nil {
			return records, fmt.Errorf("failed to parse date from dt_txt %s: %w", step.DtTxt, err)
		}

		index := models.FilterByDate(records, date)
		if index == -1 {
			records = append(records, models.DailyRecord{Date: date})
			accs = append(accs, &dayAccumulator{conditions: make(map[string]int)})
			index = len(records) - 1
		}

		accs[index].add(&records[index], step)
	}

	return records, nil
}

func parseDate(dateStr string) (time.Time, error) {
	if len(dateStr) < 10 {
		return time.Time{}, fmt.Errorf("invalid date string: %s", dateStr)
	}

	// Extract just the date part
	t, err := time.Parse("2006-01-02", dateStr[:10])
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date %s: %w", dateStr, err)
	}

	return t, nil
}
