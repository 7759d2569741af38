package openai

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/kailas-cloud/aiconsole/internal/domain"
	"github.com/kailas-cloud/aiconsole/internal/metrics"
	"github.com/kailas-cloud/aiconsole/internal/toolschema"
)

// Operation labels for metrics and errors.
const (
	opTranslate  = "translate"
	opSummarize  = "summarize"
	opTranscribe = "transcribe"
)

// callTool runs a chat completion that is forced to call tool and returns the
// validated raw arguments of that call.
func (c *Client) callTool(
	ctx context.Context, op string, tool *toolschema.Tool,
	messages []openai.ChatCompletionMessage, temperature float32,
) ([]byte, error) {
	req := openai.ChatCompletionRequest{
		Model:    c.chatModel,
		Messages: messages,
		Tools: []openai.Tool{{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        tool.Name,
				Description: tool.Description,
				Parameters:  tool.Parameters,
			},
		}},
		ToolChoice: openai.ToolChoice{
			Type:     openai.ToolTypeFunction,
			Function: openai.ToolFunction{Name: tool.Name},
		},
		Temperature: temperature,
	}

	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, req)
	duration := time.Since(start)

	if err != nil {
		c.recordFailure(op, errorType(err))
		c.logger.Warn("Chat completion failed",
			zap.String("operation", op),
			zap.String("model", c.chatModel),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, parseAPIError("chat completion", err)
	}

	c.recordSuccess(op, c.chatModel, duration)
	c.recordTokens(op, resp.Usage)

	args, err := toolArguments(resp, tool.Name)
	if err != nil {
		c.recordError(op, c.chatModel, "no_tool_call")
		return nil, err
	}
	if err := tool.Validate(args); err != nil {
		c.recordError(op, c.chatModel, "invalid_arguments")
		return nil, err
	}

	c.logger.Debug("Function call received",
		zap.String("operation", op),
		zap.String("function", tool.Name),
		zap.ByteString("arguments", args),
		zap.Duration("duration", duration),
	)
	return args, nil
}

// toolArguments finds the arguments of the first call to name.
func toolArguments(resp openai.ChatCompletionResponse, name string) ([]byte, error) {
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty completion: %w", domain.ErrNoToolCall)
	}
	for _, call := range resp.Choices[0].Message.ToolCalls {
		if call.Function.Name != name {
			continue
		}
		if call.Function.Arguments == "" {
			return nil, fmt.Errorf("%s called without arguments: %w", name, domain.ErrNoToolCall)
		}
		return []byte(call.Function.Arguments), nil
	}
	return nil, fmt.Errorf("%s: %w", name, domain.ErrNoToolCall)
}

func (c *Client) recordSuccess(op, model string, duration time.Duration) {
	metrics.AIRequestsTotal.WithLabelValues(op, model, "success").Inc()
	metrics.AIRequestDuration.WithLabelValues(op, model).Observe(duration.Seconds())
}

func (c *Client) recordFailure(op, errType string) {
	model := c.chatModel
	if op == opTranscribe {
		model = c.transcriptionModel
	}
	metrics.AIRequestsTotal.WithLabelValues(op, model, "error").Inc()
	c.recordError(op, model, errType)
}

func (c *Client) recordError(op, model, errType string) {
	metrics.AIErrorsTotal.WithLabelValues(op, model, errType).Inc()
}

func (c *Client) recordTokens(op string, usage openai.Usage) {
	if usage.TotalTokens <= 0 {
		return
	}
	metrics.AITokensTotal.WithLabelValues(op, c.chatModel, "prompt").Add(float64(usage.PromptTokens))
	metrics.AITokensTotal.WithLabelValues(op, c.chatModel, "completion").Add(float64(usage.CompletionTokens))
	metrics.AITokensTotal.WithLabelValues(op, c.chatModel, "total").Add(float64(usage.TotalTokens))
}
