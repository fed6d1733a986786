package http

import (
	"github.com/gofiber/fiber/v2"

	"agri-weather/internal/services/iplookup"
)

const defaultIPHistoryLimit = 10

// LookupIP godoc
// @Summary Look up an IPv4 address
// @Description Geolocation, connection and security data from ipwho.is. The lookup is recorded in the IP history.
// @Tags IP
// @Produce json
// @Param ip path string true "IPv4 address" example(8.8.8.8)
// @Success 200 {object} IPLookupResponse
// @Failure 400 {object} ErrorResponse "Invalid IPv4 address"
// @Failure 404 {object} ErrorResponse "ipwho.is could not resolve the address"
// @Failure 502 {object} ErrorResponse "Upstream failure"
// @Router /api/ip/{ip} [get]
func (r *routes) handleIPLookup(c *fiber.Ctx) error {
	search, err := r.ip.Lookup(c.Context(), c.Params("ip"))
	if err != nil {
		return r.fail(c, err)
	}

	return c.JSON(IPLookupResponse{
		Success:  true,
		Data:     search.Result,
		SearchID: search.ID,
	})
}

// MyIP godoc
// @Summary Look up the server's public address
// @Tags IP
// @Produce json
// @Success 200 {object} MyIPResponse
// @Failure 502 {object} ErrorResponse "Upstream failure"
// @Router /api/my-ip [get]
func (r *routes) handleMyIP(c *fiber.Ctx) error {
	info, ip, err := r.ip.MyIP(c.Context())
	if err != nil {
		return r.fail(c, err)
	}

	return c.JSON(MyIPResponse{
		Success:  true,
		Data:     info,
		ClientIP: ip,
	})
}

// GetIPHistory godoc
// @Summary IP lookup history
// @Description Newest first. filter is a comma separated list of proxy, vpn, tor and safe; an entry matching any of them is kept.
// @Tags IP
// @Produce json
// @Param limit query integer false "Maximum number of entries" minimum(1) default(10)
// @Param filter query string false "Security filters" example(proxy,vpn)
// @Success 200 {object} IPHistoryResponse
// @Router /api/ip/history [get]
func (r *routes) handleIPHistory(c *fiber.Ctx) error {
	entries, total := r.ip.History(c.QueryInt("limit", defaultIPHistoryLimit), iplookup.ParseFilters(c.Query("filter"))...)

	return c.JSON(IPHistoryResponse{
		Success: true,
		Data:    entries,
		Total:   total,
	})
}

// GetIPStats godoc
// @Summary IP lookup statistics
// @Tags IP
// @Produce json
// @Success 200 {object} IPStatsResponse
// @Router /api/ip/stats [get]
func (r *routes) handleIPStats(c *fiber.Ctx) error {
	return c.JSON(IPStatsResponse{
		Success: true,
		Data:    r.ip.Stats(),
	})
}
