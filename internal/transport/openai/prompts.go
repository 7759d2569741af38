package openai

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/aiconsole/internal/domain/catalog"
	"github.com/kailas-cloud/aiconsole/internal/domain/summary"
)

const translateSystemPrompt = `You are a product search assistant. You will receive a user's search query and need to determine appropriate filtering criteria.

Available product categories: %s
Price range: %s
Total products: %d

Use the filter_products function to specify filtering criteria based on the user's natural language query.
Only specify parameters that are clearly mentioned or implied in the user's request.`

const summarizeSystemPrompt = `You are an expert audio content analyst. Your task is to:
1. Create a concise summary of the transcribed audio content
2. Calculate accurate word count from the transcript
3. Estimate speaking speed in words per minute (WPM) - typical speaking speed is 120-150 WPM
4. Identify and count frequently mentioned topics/entities (minimum 3 topics)
5. Extract key points and determine overall sentiment

Be precise with word counts and topic analysis. For speaking speed, consider the content type and estimate based on typical speaking patterns.`

func buildTranslatePrompt(stats catalog.Stats) string {
	priceRange := "unknown"
	if stats.Count > 0 {
		priceRange = fmt.Sprintf("$%.2f - $%.2f", stats.MinPrice, stats.MaxPrice)
	}
	return fmt.Sprintf(translateSystemPrompt, strings.Join(stats.Categories, ", "), priceRange, stats.Count)
}

func buildTranslateUserMessage(query string) string {
	return fmt.Sprintf("User search query: '%s'", query)
}

// buildSummarizeUserMessage includes the audio duration when known so the
// model can derive speaking speed instead of guessing it.
func buildSummarizeUserMessage(t summary.Transcript) string {
	var b strings.Builder
	b.WriteString("Please analyze and summarize the following transcribed audio content")
	if t.Duration > 0 {
		fmt.Fprintf(&b, " (audio duration: %.1f seconds)", t.Duration.Seconds())
	}
	b.WriteString(":\n\n")
	b.WriteString(t.Text)
	return b.String()
}
