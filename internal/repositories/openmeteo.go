package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"agri-weather/internal/metrics"
	"agri-weather/internal/models"
	"agri-weather/pkg/observe"
)

const (
	OpenMeteoName    = "open-meteo"
	OpenMeteoBaseURL = "https://api.open-meteo.com/v1/forecast"

	openMeteoMaxDays   = 16
	openMeteoDailyVars = "temperature_2m_mean,temperature_2m_max,temperature_2m_min,relative_humidity_2m_mean,wind_speed_10m_max,precipitation_probability_max,precipitation_sum,weather_code"
)

type OpenMeteoRepository struct {
	baseURL    string
	httpClient HTTPClient
	l          *observe.Logger
}

func NewOpenMeteoRepository(baseURL string, l *observe.Logger, httpClient HTTPClient) *OpenMeteoRepository {
	if baseURL == "" {
		baseURL = OpenMeteoBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &OpenMeteoRepository{
		baseURL:    baseURL,
		httpClient: httpClient,
		l:          l,
	}
}

func (o *OpenMeteoRepository) Name() string {
	return OpenMeteoName
}

type OpenMeteoResponse struct {
	Time                        []string  `json:"time"`
	Temperature2mMean           []float64 `json:"temperature_2m_mean"`
	Temperature2mMax            []float64 `json:"temperature_2m_max"`
	Temperature2mMin            []float64 `json:"temperature_2m_min"`
	RelativeHumidity2mMean      []float64 `json:"relative_humidity_2m_mean"`
	WindSpeed10mMax             []float64 `json:"wind_speed_10m_max"`
	PrecipitationProbabilityMax []float64 `json:"precipitation_probability_max"`
	PrecipitationSum            []float64 `json:"precipitation_sum"`
	WeatherCode                 []int     `json:"weather_code"`
}

type OpenMeteoErrorResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

func (o *OpenMeteoRepository) FetchForecast(ctx context.Context, lat, lon float64, forecastWindow int) (models.Forecast, error) {
	days := min(max(forecastWindow, 1), openMeteoMaxDays)

	forecast := models.Forecast{
		RepositoryName: o.Name(),
		Lat:            lat,
		Lon:            lon,
		ForecastWindow: days,
	}

	url := fmt.Sprintf("%s?latitude=%f&longitude=%f&daily=%s&forecast_days=%d&timezone=auto&wind_speed_unit=ms",
		o.baseURL, lat, lon, openMeteoDailyVars, days)

	o.l.Info("making openmeteo API request", map[string]any{
		"params": forecast.RequestParams(),
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return forecast, fmt.Errorf("failed to create request: %w", err)
	}

	start := time.Now()
	resp, err := o.httpClient.Do(req)
	if err != nil {
		metrics.RecordUpstream(o.Name(), time.Since(start), err)
		return forecast, fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	o.l.Info("received openmeteo API response", map[string]any{
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(resp.Body)
	metrics.RecordUpstream(o.Name(), time.Since(start), statusErr(resp, err))
	if err != nil {
		return forecast, fmt.Errorf("failed to read response body: %w", err)
	}

	// Check for HTTP error status codes
	if resp.StatusCode != http.StatusOK {
		var errorResp OpenMeteoErrorResponse
		if jsonErr := json.Unmarshal(body, &errorResp); jsonErr == nil && errorResp.Error {
			return forecast, fmt.Errorf("API error (status %d): %s", resp.StatusCode, errorResp.Reason)
		}
		return forecast, fmt.Errorf("HTTP error (status %d): %s", resp.StatusCode, resp.Status)
	}

	var response struct {
		Daily OpenMeteoResponse `json:"daily"`
	}

	if err = json.Unmarshal(body, &response); err != nil {
		return forecast, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	o.l.Info("parsed API response", map[string]any{
		"days": len(response.Daily.Time),
	})

	// Validate that we have forecast data
	if len(response.Daily.Time) == 0 {
		return forecast, fmt.Errorf("no forecast data available")
	}

	forecastData, err := dailyRecordsOpenMeteo(response.Daily)
	if err != nil {
		return forecast, fmt.Errorf("failed to build forecast: %w", err)
	}

	forecast.ForecastData = forecastData

	return forecast, nil
}

// dailyRecordsOpenMeteo converts the column-oriented API response into one record per day.
// Days without min/max temperature are dropped; other missing columns read as zero.
func dailyRecordsOpenMeteo(daily OpenMeteoResponse) ([]models.DailyRecord, error) {
	n := min(len(daily.Time), len(daily.Temperature2mMax), len(daily.Temperature2mMin))
	if n == 0 {
		return nil, fmt.Errorf("no temperature data available")
	}

	records := make([]models.DailyRecord, 0, n)
	for i := 0; i < n; i++ {
		date, err := time.Parse("2006-01-02", daily.Time[i])
		if err != nil {
			return nil, fmt.Errorf("failed to parse date %s: %w", daily.Time[i], err)
		}

		tMin, tMax := daily.Temperature2mMin[i], daily.Temperature2mMax[i]
		tDay := (tMin + tMax) / 2
		if i < len(daily.Temperature2mMean) {
			tDay = daily.Temperature2mMean[i]
		}

		code := -1
		if i < len(daily.WeatherCode) {
			code = daily.WeatherCode[i]
		}

		records = append(records, models.DailyRecord{
			Date:          date,
			Temp:          models.Temperature{Day: tDay, Min: tMin, Max: tMax},
			Humidity:      at(daily.RelativeHumidity2mMean, i),
			WindSpeed:     at(daily.WindSpeed10mMax, i),
			Precipitation: at(daily.PrecipitationProbabilityMax, i) / 100,
			Rain:          at(daily.PrecipitationSum, i),
			Condition:     conditionFromWMOCode(code),
		})
	}

	return records, nil
}

// conditionFromWMOCode maps WMO weather interpretation codes onto the
// coarse condition labels the rest of the service uses.
func conditionFromWMOCode(code int) string {
	switch {
	case code == 0:
		return "Clear"
	case code >= 1 && code <= 3:
		return "Clouds"
	case code == 45 || code == 48:
		return "Fog"
	case code >= 51 && code <= 57:
		return "Drizzle"
	case (code >= 61 && code <= 67) || (code >= 80 && code <= 82):
		return "Rain"
	case (code >= 71 && code <= 77) || code == 85 || code == 86:
		return "Snow"
	case code >= 95 && code <= 99:
		return "Thunderstorm"
	default:
		return "Unknown"
	}
}

func at(values []float64, i int) float64 {
	if i < len(values) {
		return values[i]
	}
	return 0
}

// statusErr folds a read error or non-200 status into one value for metrics.
func statusErr(resp *http.Response, readErr error) error {
	if readErr != nil {
		return readErr
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return nil
}
