package domain

import (
	"context"

	"github.com/kailas-cloud/aiconsole/internal/domain/catalog"
	"github.com/kailas-cloud/aiconsole/internal/domain/search/filter"
	"github.com/kailas-cloud/aiconsole/internal/domain/summary"
)

// CriteriaTranslator turns a natural-language query into filter criteria.
// stats describes the catalog the query will run against.
type CriteriaTranslator interface {
	Translate(ctx context.Context, query string, stats catalog.Stats) (filter.Criteria, error)
}

// Transcriber converts an audio file to text.
type Transcriber interface {
	Transcribe(ctx context.Context, path string) (summary.Transcript, error)
}

// Summarizer produces a structured summary of a transcript.
type Summarizer interface {
	Summarize(ctx context.Context, t summary.Transcript) (summary.Summary, error)
}

// HealthChecker verifies model provider availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
