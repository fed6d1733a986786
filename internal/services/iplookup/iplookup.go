// Package iplookup resolves IPv4 addresses to geolocation and security data
// and keeps a rolling history of the lookups.
package iplookup

import (
	"context"
	"math"
	"net/netip"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"agri-weather/internal/history"
	"agri-weather/internal/metrics"
	"agri-weather/internal/models"
	"agri-weather/internal/repositories"
	"agri-weather/pkg/observe"
)

const historyName = "ip"

// ErrInvalidIP is returned for anything that is not a dotted IPv4 address.
var ErrInvalidIP = errors.New("invalid IPv4 address")

// Filter narrows IP history to entries with a given security flag.
type Filter string

const (
	FilterProxy Filter = "proxy"
	FilterVPN   Filter = "vpn"
	FilterTor   Filter = "tor"
	FilterSafe  Filter = "safe"
)

type Service struct {
	lookup   repositories.IPRepository
	publicIP repositories.PublicIPRepository
	searches *history.Ring[models.IPSearch]
	now      func() time.Time
	l        *observe.Logger
}

func NewService(lookup repositories.IPRepository, publicIP repositories.PublicIPRepository, l *observe.Logger, historyCapacity int) *Service {
	return &Service{
		lookup:   lookup,
		publicIP: publicIP,
		searches: history.NewRing[models.IPSearch](historyCapacity),
		now:      time.Now,
		l:        l,
	}
}

// ValidateIPv4 returns the canonical form of ip or ErrInvalidIP. Octets may
// carry leading zeros ("192.168.001.001"); they are read as decimal.
func ValidateIPv4(ip string) (string, error) {
	addr, err := netip.ParseAddr(trimOctetZeros(strings.TrimSpace(ip)))
	if err != nil || !addr.Is4() {
		return "", errors.Wrapf(ErrInvalidIP, "%q", ip)
	}
	return addr.String(), nil
}

// trimOctetZeros rewrites a dotted quad of 1-3 digit octets without leading
// zeros. Anything else is returned unchanged for netip to reject or accept.
func trimOctetZeros(ip string) string {
	octets := strings.Split(ip, ".")
	if len(octets) != 4 {
		return ip
	}

	for i, octet := range octets {
		if len(octet) == 0 || len(octet) > 3 {
			return ip
		}
		for _, c := range octet {
			if c < '0' || c > '9' {
				return ip
			}
		}
		if trimmed := strings.TrimLeft(octet, "0"); trimmed != "" {
			octets[i] = trimmed
		} else {
			octets[i] = "0"
		}
	}

	return strings.Join(octets, ".")
}

// Lookup resolves ip and records the result in the history.
func (s *Service) Lookup(ctx context.Context, ip string) (models.IPSearch, error) {
	canonical, err := ValidateIPv4(ip)
	if err != nil {
		return models.IPSearch{}, err
	}

	info, err := s.lookup.Lookup(ctx, canonical)
	if err != nil {
		s.l.Warning("ip lookup failed", map[string]any{"ip": canonical, "err": err.Error()})
		return models.IPSearch{}, errors.Wrap(err, "lookup "+canonical)
	}

	search := models.IPSearch{
		ID:        uuid.NewString(),
		IP:        canonical,
		Timestamp: s.now().UTC(),
		Result:    info,
	}
	s.searches.Push(search)
	metrics.SetHistorySize(historyName, s.searches.Len())

	return search, nil
}

// MyIP resolves the address this server is seen from. It is not recorded.
func (s *Service) MyIP(ctx context.Context) (models.IPInfo, string, error) {
	ip, err := s.publicIP.PublicIP(ctx)
	if err != nil {
		return models.IPInfo{}, "", errors.Wrap(err, "resolve public IP")
	}

	info, err := s.lookup.Lookup(ctx, ip)
	if err != nil {
		return models.IPInfo{}, ip, errors.Wrap(err, "lookup "+ip)
	}

	return info, ip, nil
}

// History returns up to limit searches matching any of filters, newest first,
// with the number of matching searches. Unknown filters match everything.
func (s *Service) History(limit int, filters ...Filter) ([]models.IPSearch, int) {
	keep := matcher(filters)
	return s.searches.Filter(limit, keep), s.searches.Count(keep)
}

func (s *Service) Stats() models.IPStats {
	var stats models.IPStats
	for _, search := range s.searches.List(0) {
		stats.TotalSearches++
		if search.Result.Safe() {
			stats.SafeCount++
		}
		sec := search.Result.Security
		if sec == nil {
			continue
		}
		if sec.Proxy {
			stats.ProxyCount++
		}
		if sec.VPN {
			stats.VPNCount++
		}
		if sec.Tor {
			stats.TorCount++
		}
	}

	stats.ProxyPercentage = percentage(stats.ProxyCount, stats.TotalSearches)
	stats.VPNPercentage = percentage(stats.VPNCount, stats.TotalSearches)
	stats.TorPercentage = percentage(stats.TorCount, stats.TotalSearches)
	stats.SafePercentage = percentage(stats.SafeCount, stats.TotalSearches)

	return stats
}

// ParseFilters splits a comma separated filter list.
func ParseFilters(raw string) []Filter {
	var filters []Filter
	for _, part := range strings.Split(raw, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			filters = append(filters, Filter(part))
		}
	}
	return filters
}

func matcher(filters []Filter) func(models.IPSearch) bool {
	if len(filters) == 0 {
		return nil
	}
	return func(search models.IPSearch) bool {
		for _, f := range filters {
			if f.matches(search.Result) {
				return true
			}
		}
		return false
	}
}

func (f Filter) matches(info models.IPInfo) bool {
	sec := info.Security
	switch f {
	case FilterProxy:
		return sec != nil && sec.Proxy
	case FilterVPN:
		return sec != nil && sec.VPN
	case FilterTor:
		return sec != nil && sec.Tor
	case FilterSafe:
		return info.Safe()
	default:
		return true
	}
}

// percentage rounds to one decimal place.
func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}
