package summary

import "time"

// Transcript is the text of an audio file with the metadata the transcriber reports.
type Transcript struct {
	Text     string
	Language string
	// Duration is zero when the transcriber did not report it.
	Duration time.Duration
}
