package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kailas-cloud/aiconsole/internal/domain/catalog"
	"github.com/kailas-cloud/aiconsole/internal/domain/summary"
)

func sampleSummary() summary.Summary {
	return summary.Summary{
		Summary:          "A talk about café culture & <coffee>.",
		WordCount:        250,
		SpeakingSpeedWPM: 130,
		Topics: []summary.Topic{
			{Topic: "coffee", Mentions: 5},
			{Topic: "Paris", Mentions: 2},
		},
		KeyPoints: []string{"Cafés are social hubs", "Espresso is short"},
		Sentiment: summary.Positive,
	}
}

func TestSummaryMarkdown(t *testing.T) {
	want := "# Audio Content Summary\n\n" +
		"## Summary\nA talk about café culture & <coffee>.\n\n" +
		"## Analytics\n" +
		"- **Word Count:** 250\n" +
		"- **Speaking Speed:** 130 words per minute\n" +
		"- **Sentiment:** positive\n\n" +
		"## Frequently Mentioned Topics\n" +
		"- **coffee:** 5 mentions\n" +
		"- **Paris:** 2 mentions\n\n" +
		"## Key Points\n" +
		"1. Cafés are social hubs\n" +
		"2. Espresso is short\n\n"

	assert.Equal(t, want, SummaryMarkdown(sampleSummary()))
}

func TestSummaryMarkdown_OmitsEmptySections(t *testing.T) {
	s := sampleSummary()
	s.Topics = nil
	s.KeyPoints = nil

	md := SummaryMarkdown(s)
	assert.NotContains(t, md, "## Frequently Mentioned Topics")
	assert.NotContains(t, md, "## Key Points")
	assert.Contains(t, md, "- **Sentiment:** positive\n\n")
}

func TestAnalyticsJSON(t *testing.T) {
	out, err := AnalyticsJSON(sampleSummary())
	require.NoError(t, err)

	want := `{
  "word_count": 250,
  "speaking_speed_wpm": 130,
  "frequently_mentioned_topics": [
    {
      "topic": "coffee",
      "mentions": 5
    },
    {
      "topic": "Paris",
      "mentions": 2
    }
  ]
}`
	assert.Equal(t, want, out)
}

func TestAnalyticsJSON_KeepsNonASCII(t *testing.T) {
	s := summary.Summary{Topics: []summary.Topic{{Topic: "Größe <&>", Mentions: 1}}, Sentiment: summary.Mixed}

	out, err := AnalyticsJSON(s)
	require.NoError(t, err)
	assert.Contains(t, out, `"topic": "Größe <&>"`)
}

func TestAnalyticsJSON_EmptyTopicsIsArray(t *testing.T) {
	out, err := AnalyticsJSON(summary.Summary{Sentiment: summary.Neutral})
	require.NoError(t, err)
	assert.Contains(t, out, `"frequently_mentioned_topics": []`)
}

func TestTranscriptMarkdown(t *testing.T) {
	at := time.Date(2025, 6, 1, 14, 30, 5, 0, time.UTC)
	md := TranscriptMarkdown("audio/talk.mp3", summary.Transcript{
		Text:     "Hello there.",
		Language: "english",
		Duration: 90 * time.Second,
	}, at)

	want := "# Transcription\n\n" +
		"**Audio File:** audio/talk.mp3\n" +
		"**Generated:** 2025-06-01 14:30:05\n" +
		"**Language:** english\n" +
		"**Duration:** 90.0 seconds\n" +
		"\n## Content\n\nHello there.\n"
	assert.Equal(t, want, md)
}

func TestProducts(t *testing.T) {
	var buf bytes.Buffer
	err := Products(&buf, []catalog.Product{
		{Name: "Wireless Headphones", Category: "Electronics", Price: 99.9, Rating: 4.5, InStock: true},
		{Name: "Yoga Mat", Category: "Fitness", Price: 20, Rating: 4, InStock: false},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Found 2 matching products:")
	assert.Contains(t, out, "1. Wireless Headphones\n   Category: Electronics | Price: $99.90\n   Rating: 4.5/5.0 | ✓ In Stock\n")
	assert.Contains(t, out, "2. Yoga Mat\n   Category: Fitness | Price: $20.00\n   Rating: 4.0/5.0 | ✗ Out of Stock\n")
}

func TestProducts_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Products(&buf, nil))
	assert.Equal(t, "\nNo products matched your criteria.\n", buf.String())
}

func TestWriter_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "outputs")
	at := time.Date(2025, 6, 1, 14, 30, 5, 0, time.Local)
	w := NewWriterWithClock(dir, func() time.Time { return at }, zap.NewNop())

	files := w.Save("/tmp/recordings/Interview.WAV", summary.Transcript{Text: "hi"}, sampleSummary())

	assert.Equal(t, filepath.Join(dir, "Interview_transcription_20250601_143005.md"), files.Transcript)
	assert.Equal(t, filepath.Join(dir, "Interview_summary_20250601_143005.md"), files.Summary)
	assert.Equal(t, filepath.Join(dir, "Interview_analysis_20250601_143005.json"), files.Analytics)
	assert.Len(t, files.Saved(), 3)

	raw, err := os.ReadFile(files.Analytics)
	require.NoError(t, err)
	var analytics summary.Analytics
	require.NoError(t, json.Unmarshal(raw, &analytics))
	assert.Equal(t, 250, analytics.WordCount)

	md, err := os.ReadFile(files.Summary)
	require.NoError(t, err)
	assert.Equal(t, SummaryMarkdown(sampleSummary()), string(md))

	tr, err := os.ReadFile(files.Transcript)
	require.NoError(t, err)
	assert.Contains(t, string(tr), "**Audio File:** /tmp/recordings/Interview.WAV")
}

func TestWriter_SaveFailureIsWarning(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	core, logs := observer.New(zapcore.WarnLevel)
	w := NewWriter(filepath.Join(blocker, "outputs"), zap.New(core))

	files := w.Save("talk.mp3", summary.Transcript{Text: "hi"}, sampleSummary())

	assert.Empty(t, files.Saved())
	assert.Equal(t, 1, logs.FilterMessage("Could not create output directory").Len())
}

func TestWriter_SaveSameStemKeepsBothReports(t *testing.T) {
	dir := t.TempDir()
	at := time.Date(2026, 1, 1, 12, 0, 0, 0, time.Local)
	w := NewWriterWithClock(dir, func() time.Time { return at }, zap.NewNop())

	first := w.Save("a/talk.mp3", summary.Transcript{Text: "first"}, sampleSummary())
	second := w.Save("b/talk.wav", summary.Transcript{Text: "second"}, sampleSummary())

	assert.Equal(t, filepath.Join(dir, "talk_transcription_20260101_120000.md"), first.Transcript)
	assert.Equal(t, filepath.Join(dir, "talk_transcription_20260101_120000_2.md"), second.Transcript)
	assert.Equal(t, filepath.Join(dir, "talk_summary_20260101_120000_2.md"), second.Summary)
	assert.Equal(t, filepath.Join(dir, "talk_analysis_20260101_120000_2.json"), second.Analytics)

	raw, err := os.ReadFile(first.Transcript)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "first")
	assert.NotContains(t, string(raw), "second")

	raw, err = os.ReadFile(second.Transcript)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "second")
}

func TestWriter_SaveSuffixSkipsPartialSets(t *testing.T) {
	dir := t.TempDir()
	at := time.Date(2026, 1, 1, 12, 0, 0, 0, time.Local)
	w := NewWriterWithClock(dir, func() time.Time { return at }, zap.NewNop())

	stray := filepath.Join(dir, "talk_analysis_20260101_120000.json")
	require.NoError(t, os.WriteFile(stray, []byte("keep"), 0o600))

	files := w.Save("talk.mp3", summary.Transcript{Text: "hi"}, sampleSummary())

	assert.Equal(t, filepath.Join(dir, "talk_analysis_20260101_120000_2.json"), files.Analytics)
	assert.Equal(t, filepath.Join(dir, "talk_transcription_20260101_120000_2.md"), files.Transcript)
	raw, err := os.ReadFile(stray)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(raw))
}

func TestWriter_SaveConcurrentSameFile(t *testing.T) {
	dir := t.TempDir()
	at := time.Date(2026, 1, 1, 12, 0, 0, 0, time.Local)
	w := NewWriterWithClock(dir, func() time.Time { return at }, zap.NewNop())

	const runs = 8
	results := make([]Files, runs)
	var wg sync.WaitGroup
	for i := range runs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = w.Save("talk.mp3", summary.Transcript{Text: "hi"}, sampleSummary())
		}()
	}
	wg.Wait()

	seen := make(map[string]bool)
	for _, f := range results {
		require.Len(t, f.Saved(), 3)
		for _, p := range f.Saved() {
			assert.False(t, seen[p], "duplicate path %s", p)
			seen[p] = true
		}
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, runs*3)
}
