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
	IPWhoisName    = "ipwho.is"
	IPWhoisBaseURL = "https://ipwho.is"

	IPifyName    = "ipify"
	IPifyBaseURL = "https://api.ipify.org"
)

// ErrLookupFailed means ipwho.is answered but could not resolve the address.
var ErrLookupFailed = errors.New("IP lookup failed")

type IPRepository interface {
	Lookup(ctx context.Context, ip string) (models.IPInfo, error)
}

type PublicIPRepository interface {
	PublicIP(ctx context.Context) (string, error)
}

type IPWhoisRepository struct {
	baseURL    string
	httpClient HTTPClient
	l          *observe.Logger
}

func NewIPWhoisRepository(baseURL string, l *observe.Logger, httpClient HTTPClient) *IPWhoisRepository {
	if baseURL == "" {
		baseURL = IPWhoisBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &IPWhoisRepository{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		l:          l,
	}
}

func (r *IPWhoisRepository) Lookup(ctx context.Context, ip string) (models.IPInfo, error) {
	var info models.IPInfo

	r.l.Info("making ipwho.is API request", map[string]any{"ip": ip})

	body, err := getJSON(ctx, r.httpClient, IPWhoisName, r.baseURL+"/"+ip)
	if err != nil {
		return info, err
	}

	if err := json.Unmarshal(body, &info); err != nil {
		return info, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if !info.Success {
		r.l.Warning("ipwho.is lookup unsuccessful", map[string]any{"ip": ip, "message": info.Message})
		return info, fmt.Errorf("%w: %s", ErrLookupFailed, info.Message)
	}

	return info, nil
}

type IPifyRepository struct {
	baseURL    string
	httpClient HTTPClient
	l          *observe.Logger
}

func NewIPifyRepository(baseURL string, l *observe.Logger, httpClient HTTPClient) *IPifyRepository {
	if baseURL == "" {
		baseURL = IPifyBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &IPifyRepository{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		l:          l,
	}
}

// PublicIP returns the address this server is seen from.
func (r *IPifyRepository) PublicIP(ctx context.Context) (string, error) {
	body, err := getJSON(ctx, r.httpClient, IPifyName, r.baseURL+"?format=json")
	if err != nil {
		return "", err
	}

	var response struct {
		IP string `json:"ip"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("failed to parse JSON response: %w", err)
	}
	if response.IP == "" {
		return "", errors.New("ipify returned no address")
	}

	r.l.Debug("resolved public IP", map[string]any{"ip": response.IP})

	return response.IP, nil
}

// getJSON performs a GET and returns the body of a 200 response.
func getJSON(ctx context.Context, client HTTPClient, provider, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		metrics.RecordUpstream(provider, time.Since(start), err)
		return nil, fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	metrics.RecordUpstream(provider, time.Since(start), statusErr(resp, err))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error (status %d): %s", resp.StatusCode, resp.Status)
	}

	return body, nil
}
