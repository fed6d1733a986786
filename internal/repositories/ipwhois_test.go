package repositories

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agri-weather/pkg/observe"
)

const ipWhoisFixture = `{
  "ip": "8.8.8.8",
  "success": true,
  "type": "IPv4",
  "continent": "North America",
  "country": "United States",
  "country_code": "US",
  "city": "Mountain View",
  "latitude": 37.3860517,
  "longitude": -122.0838511,
  "connection": {"asn": 15169, "org": "Google LLC", "isp": "Google LLC", "domain": "google.com"},
  "timezone": {"id": "America/Los_Angeles", "utc": "-07:00"},
  "security": {"anonymous": false, "proxy": false, "vpn": false, "tor": false, "hosting": true}
}`

func TestIPWhoisRepository_Lookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/8.8.8.8":
			_, _ = w.Write([]byte(ipWhoisFixture))
		case "/10.0.0.1":
			_, _ = w.Write([]byte(`{"ip": "10.0.0.1", "success": false, "message": "Reserved range"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	repo := NewIPWhoisRepository(server.URL+"/", observe.NewZapLogger("test-app"), server.Client())

	t.Run("success", func(t *testing.T) {
		info, err := repo.Lookup(context.Background(), "8.8.8.8")
		require.NoError(t, err)
		assert.True(t, info.Success)
		assert.Equal(t, "United States", info.Country)
		assert.Equal(t, "Mountain View", info.City)
		assert.Equal(t, "Google LLC", info.Connection.ISP)
		require.NotNil(t, info.Security)
		assert.True(t, info.Security.Hosting)
		assert.True(t, info.Safe())
	})

	t.Run("unsuccessful lookup", func(t *testing.T) {
		_, err := repo.Lookup(context.Background(), "10.0.0.1")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrLookupFailed)
		assert.Contains(t, err.Error(), "Reserved range")
	})

	t.Run("upstream error", func(t *testing.T) {
		_, err := repo.Lookup(context.Background(), "1.1.1.1")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrLookupFailed)
		assert.Contains(t, err.Error(), "HTTP error (status 500)")
	})
}

func TestIPifyRepository_PublicIP(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "json", r.URL.Query().Get("format"))
			_, _ = w.Write([]byte(`{"ip": "203.0.113.7"}`))
		}))
		defer server.Close()

		repo := NewIPifyRepository(server.URL, observe.NewZapLogger("test-app"), server.Client())

		ip, err := repo.PublicIP(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "203.0.113.7", ip)
	})

	t.Run("empty address", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		repo := NewIPifyRepository(server.URL, observe.NewZapLogger("test-app"), server.Client())

		_, err := repo.PublicIP(context.Background())
		assert.Error(t, err)
	})
}

func TestNewIPRepositories_Defaults(t *testing.T) {
	logger := observe.NewZapLogger("test-app")

	whois := NewIPWhoisRepository("", logger, nil)
	assert.Equal(t, IPWhoisBaseURL, whois.baseURL)
	assert.NotNil(t, whois.httpClient)

	ipify := NewIPifyRepository("", logger, nil)
	assert.Equal(t, IPifyBaseURL, ipify.baseURL)
	assert.NotNil(t, ipify.httpClient)
}
