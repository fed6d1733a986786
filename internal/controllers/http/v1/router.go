package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"agri-weather/docs"
	"agri-weather/internal/services/iplookup"
	"agri-weather/internal/services/weather"
	"agri-weather/pkg/observe"
)

type routes struct {
	weather *weather.WeatherService
	ip      *iplookup.Service
	l       *observe.Logger
}

func NewRouter(
	app *fiber.App,
	weatherService *weather.WeatherService,
	ipService *iplookup.Service,
	l *observe.Logger,
) {
	r := &routes{
		weather: weatherService,
		ip:      ipService,
		l:       l,
	}

	// Swagger documentation
	app.Get("/swagger/doc.json", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(docs.SwaggerInfo.ReadDoc())
	})

	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	api.Get("/locations", r.handleLocations)
	api.Get("/crops", r.handleCrops)
	api.Get("/weather/:location", r.handleWeather)
	api.Get("/forecast/:location", r.handleForecast)
	api.Get("/agriculture/:location/:crop", r.handleAgriculture)
	api.Get("/report/:location", r.handleReport)
	api.Get("/history", r.handleHistory)
	api.Get("/stats", r.handleStats)

	// fixed paths before the :ip parameter
	api.Get("/ip/history", r.handleIPHistory)
	api.Get("/ip/stats", r.handleIPStats)
	api.Get("/ip/:ip", r.handleIPLookup)
	api.Get("/my-ip", r.handleMyIP)
}
