package openai

import (
	"context"
	"fmt"
	"math"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/kailas-cloud/aiconsole/internal/domain/summary"
)

// Transcribe uploads an audio file to the transcription model.
// verbose_json is requested so the audio duration and language come back with the text.
func (c *Client) Transcribe(ctx context.Context, path string) (summary.Transcript, error) {
	req := openai.AudioRequest{
		Model:    c.transcriptionModel,
		FilePath: path,
		Format:   openai.AudioResponseFormatVerboseJSON,
	}

	start := time.Now()
	resp, err := c.api.CreateTranscription(ctx, req)
	duration := time.Since(start)

	if err != nil {
		c.recordFailure(opTranscribe, errorType(err))
		c.logger.Warn("Transcription failed",
			zap.String("file", path),
			zap.String("model", c.transcriptionModel),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return summary.Transcript{}, fmt.Errorf("transcribe %s: %w", path, parseAPIError("transcription", err))
	}

	c.recordSuccess(opTranscribe, c.transcriptionModel, duration)

	t := summary.Transcript{
		Text:     resp.Text,
		Language: resp.Language,
	}
	if resp.Duration > 0 && !math.IsInf(resp.Duration, 0) {
		t.Duration = time.Duration(resp.Duration * float64(time.Second))
	}

	c.logger.Debug("Audio transcribed",
		zap.String("file", path),
		zap.Int("characters", len(t.Text)),
		zap.Duration("audio_duration", t.Duration),
		zap.Duration("duration", duration),
	)
	return t, nil
}
