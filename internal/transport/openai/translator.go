package openai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/kailas-cloud/aiconsole/internal/domain/catalog"
	"github.com/kailas-cloud/aiconsole/internal/domain/search/filter"
	"github.com/kailas-cloud/aiconsole/internal/toolschema"
)

// Translate turns a natural-language query into filter criteria by forcing a
// filter_products function call. Numeric constraints are passed through as the
// model returned them; nothing is re-extracted from the query text.
func (c *Client) Translate(ctx context.Context, query string, stats catalog.Stats) (filter.Criteria, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: buildTranslatePrompt(stats)},
		{Role: openai.ChatMessageRoleUser, Content: buildTranslateUserMessage(query)},
	}

	args, err := c.callTool(ctx, opTranslate, toolschema.FilterProducts(), messages, c.temperature)
	if err != nil {
		return filter.Criteria{}, fmt.Errorf("translate query: %w", err)
	}

	criteria, err := filter.ParseArguments(args)
	if err != nil {
		return filter.Criteria{}, fmt.Errorf("translate query: %w", err)
	}

	c.logger.Debug("Query translated",
		zap.String("query", query),
		zap.Stringer("criteria", criteria),
	)
	return criteria, nil
}
