// Command provider-check fetches the configured forecast once through the provider chain
// and prints the result, without touching the store.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"weatherforecast.app/internal/adapters/external"
	"weatherforecast.app/internal/adapters/infrastructure"
	"weatherforecast.app/internal/config"
	"weatherforecast.app/internal/core/refresh"
	"weatherforecast.app/pkg/logger"
)

func main() {
	timeout := flag.Duration("timeout", 30*time.Second, "overall deadline for the check")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(2)
	}

	log := infrastructure.NewSlogLoggerAdapter(logger.NewWithLevel(logger.ParseLevel(cfg.LogLevel)))
	manager := external.NewForecastProviderManagerAdapter(external.ProviderManagerConfig{
		WeatherAPIKey:     cfg.Forecast.WeatherAPIKey,
		WeatherAPIBaseURL: cfg.Forecast.WeatherAPIBaseURL,
		OpenMeteoBaseURL:  cfg.Forecast.OpenMeteoBaseURL,
		ProviderOrder:     cfg.Forecast.ProviderOrder,
		RequestTimeout:    cfg.Forecast.RequestTimeout,
		Logger:            log,
		LogRequests:       true,
	})
	fetcher := external.NewForecastFetcherAdapter(manager,
		infrastructure.NewConfigProviderAdapter(cfg).GetForecastConfig().Query)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	data, err := fetcher.Fetch(ctx)
	if err != nil {
		classification := refresh.Classify(err)
		fmt.Fprintf(os.Stderr, "fetch failed (%s): %s\n%v\n", classification.Class, classification.Message, err)
		os.Exit(1)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		fmt.Fprintln(os.Stderr, "encode result:", err)
		os.Exit(1)
	}
}
