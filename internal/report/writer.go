package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/aiconsole/internal/domain/summary"
)

// fileTimestamp is appended to saved report names.
const fileTimestamp = "20060102_150405"

// Files holds the paths of the reports saved for one audio file.
// A path is empty when that report was not written.
type Files struct {
	Transcript string `json:"transcript,omitempty"`
	Summary    string `json:"summary,omitempty"`
	Analytics  string `json:"analytics,omitempty"`
}

// Saved returns the non-empty paths in save order.
func (f Files) Saved() []string {
	var out []string
	for _, p := range []string{f.Transcript, f.Summary, f.Analytics} {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Writer saves audio reports into a directory.
// Save failures are logged as warnings and never returned.
type Writer struct {
	mu     sync.Mutex
	dir    string
	now    func() time.Time
	logger *zap.Logger
}

// NewWriter creates a Writer for dir.
func NewWriter(dir string, logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{dir: dir, now: time.Now, logger: logger}
}

// NewWriterWithClock creates a Writer with a custom clock.
func NewWriterWithClock(dir string, now func() time.Time, logger *zap.Logger) *Writer {
	w := NewWriter(dir, logger)
	w.now = now
	return w
}

// Dir returns the output directory.
func (w *Writer) Dir() string { return w.dir }

// Save writes the transcript, summary and analytics reports for audioPath.
// Names are <stem>_<kind>_<timestamp>; when any of the three names is taken,
// the whole set gets the first free numeric suffix (_2, _3, ...), so reports
// of same-named inputs saved within one second never overwrite each other.
func (w *Writer) Save(audioPath string, t summary.Transcript, s summary.Summary) Files {
	now := w.now()
	stem := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	ts := now.Format(fileTimestamp)

	transcript := TranscriptMarkdown(audioPath, t, now)
	summaryMD := SummaryMarkdown(s)
	analytics, analyticsErr := AnalyticsJSON(s)

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		w.logger.Warn("Could not create output directory",
			zap.String("dir", w.dir), zap.Error(err))
		return Files{}
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	n := w.freeSuffix(stem, ts)

	var files Files
	files.Transcript = w.write(reportName(stem, "transcription", ts, n, ".md"), "transcription", transcript)
	files.Summary = w.write(reportName(stem, "summary", ts, n, ".md"), "summary", summaryMD)

	if analyticsErr != nil {
		w.logger.Warn("Could not render analytics", zap.Error(analyticsErr))
		return files
	}
	files.Analytics = w.write(reportName(stem, "analysis", ts, n, ".json"), "analytics", analytics)
	return files
}

// freeSuffix returns the smallest n >= 1 for which no report name of the set exists.
// Callers hold w.mu.
func (w *Writer) freeSuffix(stem, ts string) int {
	for n := 1; ; n++ {
		free := true
		for _, kind := range []struct{ name, ext string }{
			{"transcription", ".md"}, {"summary", ".md"}, {"analysis", ".json"},
		} {
			if _, err := os.Lstat(filepath.Join(w.dir, reportName(stem, kind.name, ts, n, kind.ext))); err == nil {
				free = false
				break
			}
		}
		if free {
			return n
		}
	}
}

func reportName(stem, kind, ts string, n int, ext string) string {
	if n <= 1 {
		return fmt.Sprintf("%s_%s_%s%s", stem, kind, ts, ext)
	}
	return fmt.Sprintf("%s_%s_%s_%d%s", stem, kind, ts, n, ext)
}

// write creates name exclusively; an existing file is never replaced.
func (w *Writer) write(name, kind, content string) string {
	path := filepath.Join(w.dir, name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err == nil {
		_, err = f.WriteString(content)
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}
	if err != nil {
		w.logger.Warn("Could not save report",
			zap.String("kind", kind),
			zap.String("path", path),
			zap.Error(err),
		)
		return ""
	}
	w.logger.Debug("Report saved", zap.String("kind", kind), zap.String("path", path))
	return path
}
