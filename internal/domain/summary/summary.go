package summary

import "fmt"

// Sentiment is the overall emotional tone of the audio content.
type Sentiment string

// Sentiment values accepted from the summarizer.
const (
	Positive Sentiment = "positive"
	Neutral  Sentiment = "neutral"
	Negative Sentiment = "negative"
	Mixed    Sentiment = "mixed"
)

// Sentiments lists every valid sentiment in declaration order.
var Sentiments = []Sentiment{Positive, Neutral, Negative, Mixed}

// Valid reports whether s is one of the known sentiments.
func (s Sentiment) Valid() bool {
	switch s {
	case Positive, Neutral, Negative, Mixed:
		return true
	}
	return false
}

// Topic is a frequently mentioned topic with its mention count.
type Topic struct {
	Topic    string `json:"topic"`
	Mentions int    `json:"mentions"`
}

// Summary is the structured result of summarizing a transcript.
type Summary struct {
	Summary          string    `json:"summary"`
	WordCount        int       `json:"word_count"`
	SpeakingSpeedWPM int       `json:"speaking_speed_wpm"`
	Topics           []Topic   `json:"frequently_mentioned_topics"`
	KeyPoints        []string  `json:"key_points"`
	Sentiment        Sentiment `json:"sentiment"`
}

// Analytics is the quantitative subset of a Summary saved as the analysis report.
type Analytics struct {
	WordCount        int     `json:"word_count"`
	SpeakingSpeedWPM int     `json:"speaking_speed_wpm"`
	Topics           []Topic `json:"frequently_mentioned_topics"`
}

// Analytics projects the summary onto its analytics fields.
// Topics is never nil so the JSON form is always an array.
func (s Summary) Analytics() Analytics {
	topics := s.Topics
	if topics == nil {
		topics = []Topic{}
	}
	return Analytics{
		WordCount:        s.WordCount,
		SpeakingSpeedWPM: s.SpeakingSpeedWPM,
		Topics:           topics,
	}
}

// Validate checks the invariants the schema cannot express on its own.
func (s Summary) Validate() error {
	if s.WordCount < 0 {
		return fmt.Errorf("word_count must be non-negative, got %d", s.WordCount)
	}
	if s.SpeakingSpeedWPM < 0 {
		return fmt.Errorf("speaking_speed_wpm must be non-negative, got %d", s.SpeakingSpeedWPM)
	}
	if !s.Sentiment.Valid() {
		return fmt.Errorf("unknown sentiment %q", s.Sentiment)
	}
	for i, t := range s.Topics {
		if t.Mentions < 0 {
			return fmt.Errorf("frequently_mentioned_topics[%d].mentions must be non-negative", i)
		}
	}
	return nil
}
