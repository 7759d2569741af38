package audiosummary

import (
	"context"

	"github.com/kailas-cloud/aiconsole/internal/domain/summary"
	"github.com/kailas-cloud/aiconsole/internal/report"
)

// Transcriber converts an audio file to text.
type Transcriber interface {
	Transcribe(ctx context.Context, path string) (summary.Transcript, error)
}

// Summarizer produces a structured summary of a transcript.
type Summarizer interface {
	Summarize(ctx context.Context, t summary.Transcript) (summary.Summary, error)
}

// ReportWriter persists the reports of one processed file.
type ReportWriter interface {
	Save(audioPath string, t summary.Transcript, s summary.Summary) report.Files
}
