package audiosummary

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/kailas-cloud/aiconsole/internal/domain/summary"
	"github.com/kailas-cloud/aiconsole/internal/report"
)

const defaultConcurrency = 2

// Report is the outcome of processing one audio file.
type Report struct {
	RunID      string
	AudioPath  string
	Transcript summary.Transcript
	Summary    summary.Summary
	Files      report.Files
}

// Result pairs an input path with its report or error.
type Result struct {
	Path   string
	Report Report
	Err    error
}

// Service transcribes and summarizes audio files.
type Service struct {
	transcriber Transcriber
	summarizer  Summarizer
	writer      ReportWriter
	concurrency int
	logger      *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithWriter enables saving reports through w.
func WithWriter(w ReportWriter) Option {
	return func(s *Service) { s.writer = w }
}

// WithConcurrency bounds the number of files processed at once by ProcessAll.
func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// New creates an audio summary service. Without WithWriter nothing is saved.
func New(transcriber Transcriber, summarizer Summarizer, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		transcriber: transcriber,
		summarizer:  summarizer,
		concurrency: defaultConcurrency,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Process validates, transcribes and summarizes one audio file, then saves
// the reports when a writer is configured.
func (s *Service) Process(ctx context.Context, path string) (Report, error) {
	if err := ValidateAudioFile(path); err != nil {
		return Report{}, err
	}
	if err := ctx.Err(); err != nil {
		return Report{}, fmt.Errorf("process %s: %w", path, err)
	}

	rep := Report{RunID: uuid.NewString(), AudioPath: path}
	log := s.logger.With(zap.String("run_id", rep.RunID), zap.String("file", path))
	start := time.Now()

	log.Info("Transcribing audio")
	transcript, err := s.transcriber.Transcribe(ctx, path)
	if err != nil {
		return Report{}, fmt.Errorf("transcribe: %w", err)
	}
	rep.Transcript = transcript
	log.Info("Audio transcribed",
		zap.Int("characters", len(transcript.Text)),
		zap.String("language", transcript.Language),
	)

	log.Info("Summarizing transcript")
	sum, err := s.summarizer.Summarize(ctx, transcript)
	if err != nil {
		return Report{}, fmt.Errorf("summarize: %w", err)
	}
	rep.Summary = sum

	if s.writer != nil {
		rep.Files = s.writer.Save(path, transcript, sum)
	}

	log.Info("Audio processed",
		zap.Int("word_count", sum.WordCount),
		zap.String("sentiment", string(sum.Sentiment)),
		zap.Strings("saved", rep.Files.Saved()),
		zap.Duration("duration", time.Since(start)),
	)
	return rep, nil
}

// ProcessAll processes paths on a bounded worker pool.
// Results keep the input order and carry per-file errors; the returned error
// is only set when the pool itself cannot be created.
func (s *Service) ProcessAll(ctx context.Context, paths []string) ([]Result, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	pool, err := ants.NewPool(min(s.concurrency, len(paths)))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make([]Result, len(paths))
	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			rep, err := s.Process(ctx, path)
			results[i] = Result{Path: path, Report: rep, Err: err}
		})
		if submitErr != nil {
			wg.Done()
			results[i] = Result{Path: path, Err: fmt.Errorf("submit %s: %w", path, submitErr)}
		}
	}
	wg.Wait()

	return results, nil
}
