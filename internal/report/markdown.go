// Package report renders summaries and product listings for people and saves
// audio reports to disk.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/kailas-cloud/aiconsole/internal/domain/summary"
)

// timeLayout is used in the "Generated" line of saved transcripts.
const timeLayout = "2006-01-02 15:04:05"

// SummaryMarkdown renders a summary as a Markdown document.
// Topic and key point sections are omitted when empty.
func SummaryMarkdown(s summary.Summary) string {
	var b strings.Builder

	b.WriteString("# Audio Content Summary\n\n")
	fmt.Fprintf(&b, "## Summary\n%s\n\n", s.Summary)

	b.WriteString("## Analytics\n")
	fmt.Fprintf(&b, "- **Word Count:** %d\n", s.WordCount)
	fmt.Fprintf(&b, "- **Speaking Speed:** %d words per minute\n", s.SpeakingSpeedWPM)
	fmt.Fprintf(&b, "- **Sentiment:** %s\n\n", s.Sentiment)

	if len(s.Topics) > 0 {
		b.WriteString("## Frequently Mentioned Topics\n")
		for _, t := range s.Topics {
			fmt.Fprintf(&b, "- **%s:** %d mentions\n", t.Topic, t.Mentions)
		}
		b.WriteString("\n")
	}

	if len(s.KeyPoints) > 0 {
		b.WriteString("## Key Points\n")
		for i, p := range s.KeyPoints {
			fmt.Fprintf(&b, "%d. %s\n", i+1, p)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// AnalyticsJSON renders the analytics projection of s as indented JSON.
// Non-ASCII and HTML characters are written as-is.
func AnalyticsJSON(s summary.Summary) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.Analytics()); err != nil {
		return "", fmt.Errorf("encode analytics: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// TranscriptMarkdown renders a transcript as a Markdown document.
func TranscriptMarkdown(audioPath string, t summary.Transcript, generatedAt time.Time) string {
	var b strings.Builder
	b.WriteString("# Transcription\n\n")
	fmt.Fprintf(&b, "**Audio File:** %s\n", audioPath)
	fmt.Fprintf(&b, "**Generated:** %s\n", generatedAt.Format(timeLayout))
	if t.Language != "" {
		fmt.Fprintf(&b, "**Language:** %s\n", t.Language)
	}
	if t.Duration > 0 {
		fmt.Fprintf(&b, "**Duration:** %.1f seconds\n", t.Duration.Seconds())
	}
	fmt.Fprintf(&b, "\n## Content\n\n%s\n", t.Text)
	return b.String()
}
