package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Forecast
	ForecastProvider ForecastProviderManager
	ForecastFetcher  ForecastFetcher
	ForecastStore    ForecastStore

	// Cache
	CacheProvider CacheProvider
	CacheMetrics  CacheMetrics

	// Refresh
	RefreshMetrics RefreshMetrics

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Database       interface{}
}
