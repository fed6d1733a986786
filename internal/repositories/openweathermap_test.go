package repositories

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agri-weather/pkg/observe"
)

const openWeatherMapFixture = `{
  "list": [
    {"dt_txt": "2025-07-25 12:00:00", "main": {"temp": 20, "temp_min": 18, "temp_max": 22, "humidity": 60}, "weather": [{"main": "Clouds"}], "wind": {"speed": 2}, "pop": 0.2},
    {"dt_txt": "2025-07-25 15:00:00", "main": {"temp": 24, "temp_min": 21, "temp_max": 26, "humidity": 50}, "weather": [{"main": "Rain"}], "wind": {"speed": 4}, "pop": 0.6, "rain": {"3h": 1.5}},
    {"dt_txt": "2025-07-25 18:00:00", "main": {"temp": 19, "temp_min": 16, "temp_max": 20, "humidity": 70}, "weather": [{"main": "Rain"}], "wind": {"speed": 3}, "pop": 0.4, "rain": {"3h": 0.5}},
    {"dt_txt": "2025-07-26 00:00:00", "main": {"temp": 15, "temp_min": 14, "temp_max": 16, "humidity": 80}, "weather": [{"main": "Clear"}], "wind": {"speed": 1}, "pop": 0}
  ]
}`

func newOpenWeatherMapServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server
}

func TestNewOpenWeatherMapRepository(t *testing.T) {
	logger := observe.NewZapLogger("test-app")

	t.Run("valid API key", func(t *testing.T) {
		repo, err := NewOpenWeatherMapRepository("", "test-key", logger, nil)
		require.NoError(t, err)
		assert.Equal(t, "test-key", repo.APIKey)
		assert.Equal(t, OpenWeatherMapBaseURL, repo.baseURL)
		assert.Equal(t, "openweathermap", repo.Name())
	})

	t.Run("empty API key", func(t *testing.T) {
		repo, err := NewOpenWeatherMapRepository("", "  ", logger, nil)
		assert.Error(t, err)
		assert.Nil(t, repo)
		assert.Contains(t, err.Error(), "API key cannot be empty")
	})
}

func TestOpenWeatherMapRepository_FetchForecast_Success(t *testing.T) {
	server := newOpenWeatherMapServer(t, http.StatusOK, openWeatherMapFixture)

	repo, err := NewOpenWeatherMapRepository(server.URL, "test-key", observe.NewZapLogger("test-app"), server.Client())
	require.NoError(t, err)

	forecast, err := repo.FetchForecast(context.Background(), -1.9441, 30.0619, 30)
	require.NoError(t, err)
	assert.Equal(t, "openweathermap", forecast.RepositoryName)
	require.Len(t, forecast.ForecastData, 2)

	day := forecast.ForecastData[0]
	assert.Equal(t, time.Date(2025, time.July, 25, 0, 0, 0, 0, time.UTC), day.Date)
	assert.InDelta(t, 21.0, day.Temp.Day, 1e-9)
	assert.Equal(t, 16.0, day.Temp.Min)
	assert.Equal(t, 26.0, day.Temp.Max)
	assert.InDelta(t, 60.0, day.Humidity, 1e-9)
	assert.InDelta(t, 3.0, day.WindSpeed, 1e-9)
	assert.Equal(t, 0.6, day.Precipitation)
	assert.InDelta(t, 2.0, day.Rain, 1e-9)
	assert.Equal(t, "Rain", day.Condition)

	next := forecast.ForecastData[1]
	assert.Equal(t, 15.0, next.Temp.Day)
	assert.Equal(t, "Clear", next.Condition)
	assert.Equal(t, 0.0, next.Rain)
}

func TestOpenWeatherMapRepository_FetchForecast_TrimsToWindow(t *testing.T) {
	server := newOpenWeatherMapServer(t, http.StatusOK, openWeatherMapFixture)

	repo, err := NewOpenWeatherMapRepository(server.URL, "test-key", observe.NewZapLogger("test-app"), server.Client())
	require.NoError(t, err)

	forecast, err := repo.FetchForecast(context.Background(), 0, 0, 1)
	require.NoError(t, err)
	assert.Len(t, forecast.ForecastData, 1)
}

func TestOpenWeatherMapRepository_FetchForecast_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"cod": 401}`, wantErr: "HTTP error (status 401)"},
		{name: "invalid json", status: http.StatusOK, body: "invalid json", wantErr: "failed to parse JSON response"},
		{name: "empty list", status: http.StatusOK, body: `{"list": []}`, wantErr: "no forecast data available"},
		{name: "bad date", status: http.StatusOK, body: `{"list": [{"dt_txt": "soon"}]}`, wantErr: "failed to process daily records"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newOpenWeatherMapServer(t, tt.status, tt.body)

			repo, err := NewOpenWeatherMapRepository(server.URL, "test-key", observe.NewZapLogger("test-app"), server.Client())
			require.NoError(t, err)

			_, err = repo.FetchForecast(context.Background(), 0, 0, 5)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestOpenWeatherMapRepository_FetchForecast_EmptyKey(t *testing.T) {
	repo := &OpenWeatherMapRepository{l: observe.NewZapLogger("test-app")}

	_, err := repo.FetchForecast(context.Background(), 0, 0, 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key cannot be empty")
}

func TestDailyRecordsOpenWeatherMap_TiedConditionKeepsFirst(t *testing.T) {
	var response OpenWeatherMapResponse
	for _, label := range []string{"Clouds", "Rain", "Rain", "Clouds"} {
		step := OpenWeatherMapStep{DtTxt: "2025-07-25 00:00:00"}
		step.Weather = append(step.Weather, struct {
			Main string `json:"main"`
		}{Main: label})
		response.List = append(response.List, step)
	}

	records, err := dailyRecordsOpenWeatherMap(response)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Rain", records[0].Condition)
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("2025-07-25 18:00:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.July, 25, 0, 0, 0, 0, time.UTC), got)

	_, err = parseDate("2025")
	assert.Error(t, err)

	_, err = parseDate("2025-13-45 00:00:00")
	assert.Error(t, err)
}
