package openai

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/kailas-cloud/aiconsole/internal/domain"
	"github.com/kailas-cloud/aiconsole/internal/domain/summary"
	"github.com/kailas-cloud/aiconsole/internal/toolschema"
)

// Summarize produces a structured summary of a transcript through a forced
// create_audio_summary function call.
func (c *Client) Summarize(ctx context.Context, t summary.Transcript) (summary.Summary, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: summarizeSystemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: buildSummarizeUserMessage(t)},
	}

	tool := toolschema.AudioSummary()
	args, err := c.callTool(ctx, opSummarize, tool, messages, 0)
	if err != nil {
		return summary.Summary{}, fmt.Errorf("summarize transcript: %w", err)
	}

	var s summary.Summary
	if err := json.Unmarshal(args, &s); err != nil {
		return summary.Summary{}, fmt.Errorf("summarize transcript: %w",
			domain.NewToolArgumentsError(tool.Name, err.Error()))
	}
	if err := s.Validate(); err != nil {
		return summary.Summary{}, fmt.Errorf("summarize transcript: %w",
			domain.NewToolArgumentsError(tool.Name, err.Error()))
	}
	return s, nil
}
