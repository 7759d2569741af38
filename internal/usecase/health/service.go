package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates searches cannot be served at all.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Component names used as check keys.
const (
	ComponentCatalog  = "catalog"
	ComponentCache    = "cache"
	ComponentProvider = "model_provider"
)

// Report aggregates health check results.
type Report struct {
	Status Status                 `json:"status"`
	Checks map[string]CheckResult `json:"checks"`
}

// Service coordinates health checks.
type Service struct {
	catalog  CatalogSource
	cache    CachePinger
	provider ProviderChecker
}

// New creates a Service. Any dependency can be nil, in which case its check is skipped.
func New(catalog CatalogSource, cache CachePinger, provider ProviderChecker) *Service {
	return &Service{catalog: catalog, cache: cache, provider: provider}
}

// Check runs health checks against all components.
// An empty catalog is fatal, any other failure degrades the service.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if s.catalog != nil {
		checks[ComponentCatalog] = result(s.catalog.Size() > 0)
	}
	if s.cache != nil {
		checks[ComponentCache] = result(s.cache.Ping(ctx) == nil)
	}
	if s.provider != nil {
		checks[ComponentProvider] = result(s.provider.HealthCheck(ctx) == nil)
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}
	if checks[ComponentCatalog] == CheckError {
		status = Unhealthy
	}

	return Report{Status: status, Checks: checks}
}

func result(ok bool) CheckResult {
	if ok {
		return CheckOK
	}
	return CheckError
}
