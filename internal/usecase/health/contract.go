package health

import "context"

// CachePinger checks criteria cache store availability.
type CachePinger interface {
	Ping(ctx context.Context) error
}

// ProviderChecker checks model provider availability.
type ProviderChecker interface {
	HealthCheck(ctx context.Context) error
}

// CatalogSource reports how many products are loaded.
type CatalogSource interface {
	Size() int
}
