package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agri-weather/config"
	v1 "agri-weather/internal/controllers/http/v1"
	"agri-weather/internal/metrics"
	"agri-weather/internal/repositories"
	"agri-weather/internal/services/iplookup"
	"agri-weather/internal/services/weather"
	"agri-weather/pkg/httpserver"
	"agri-weather/pkg/observe"
)

// @title Agri Weather API
// @version 1.0.0
// @description Weather forecasts, agricultural advisory and IP lookups for farming regions.
// @description Forecasts come from the first configured provider that answers and are condensed into weekly and monthly averages.

// @contact.name Agri Weather Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Weather
// @tag.description Location weather and forecasts
// @tag.name Agriculture
// @tag.description Crop profiles and agricultural analysis
// @tag.name History
// @tag.description Rolling weather search history
// @tag.name IP
// @tag.description IPv4 geolocation and security lookups
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf, err := config.NewConfig()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	logOpts := observe.LoggerOptions{
		Env:    cnf.App.Env,
		Level:  cnf.Log.Level,
		Format: cnf.Log.Format,
	}

	var sentryHook *observe.SentryHook
	if cnf.Sentry.DSN != "" {
		sentryHook = observe.NewSentryHook(cnf.App.Env, cnf.App.Name, 0, cnf.Sentry.Debug, cnf.Sentry.DSN)
		logOpts.Hook = sentryHook
	}

	l := observe.NewZapLoggerWithOptions(cnf.App.Name, logOpts, os.Stdout)

	metrics.SetAppInfo(cnf.App.Version)

	rdb, err := repositories.NewRedisClient(ctx, cnf.Cache)
	if err != nil {
		l.Warning("forecast cache disabled", map[string]any{"err": err.Error()})
	}

	repos := repositories.InitWeatherRepositories(cnf, l, rdb)
	if len(repos) == 0 {
		l.Fatal("no usable weather provider configured")
	}

	ipTimeout := time.Duration(cnf.IPLookup.Timeout) * time.Second
	ipClient := repositories.NewHTTPClient(ipTimeout)

	weatherService := weather.NewWeatherService(repos, l, cnf.Weather.ForecastDays, cnf.History.Capacity)
	ipService := iplookup.NewService(
		repositories.NewIPWhoisRepository(cnf.IPLookup.WhoisURL, l, ipClient),
		repositories.NewIPifyRepository(cnf.IPLookup.IpifyURL, l, ipClient),
		l,
		cnf.History.Capacity,
	)

	app := httpserver.InitFiberServer(httpserver.Config{
		AppName:      cnf.App.Name,
		ReadTimeout:  time.Duration(cnf.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cnf.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cnf.Server.IdleTimeout) * time.Second,
		PublicDir:    cnf.Server.PublicDir,
	})

	v1.NewRouter(
		app,
		weatherService,
		ipService,
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Server.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err.Error()})
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":      cnf.Server.Port,
		"env":       cnf.App.Env,
		"providers": len(repos),
		"cache":     rdb != nil,
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		if rdb != nil {
			_ = rdb.Close()
		}
		if sentryHook != nil {
			sentryHook.Flush()
		}
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
