package openai

import (
	"context"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Default models, matching what the console tools were tuned against.
const (
	DefaultChatModel          = "gpt-4.1-mini"
	DefaultTranscriptionModel = openai.Whisper1
)

// Client talks to an OpenAI-compatible API for criteria translation,
// transcript summarization and audio transcription.
type Client struct {
	api                *openai.Client
	chatModel          string
	transcriptionModel string
	temperature        float32
	logger             *zap.Logger
}

// Config holds the model provider settings.
type Config struct {
	APIKey             string
	BaseURL            string
	ChatModel          string
	TranscriptionModel string
	// Temperature for the criteria translator. The summarizer always uses the
	// provider default.
	Temperature float32
	Timeout     time.Duration
	Logger      *zap.Logger
}

// NewClient creates an OpenAI-compatible client.
func NewClient(cfg *Config) *Client {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	if cfg.Timeout > 0 {
		clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	chatModel := cfg.ChatModel
	if chatModel == "" {
		chatModel = DefaultChatModel
	}
	transcriptionModel := cfg.TranscriptionModel
	if transcriptionModel == "" {
		transcriptionModel = DefaultTranscriptionModel
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		api:                openai.NewClientWithConfig(clientCfg),
		chatModel:          chatModel,
		transcriptionModel: transcriptionModel,
		temperature:        cfg.Temperature,
		logger:             logger,
	}
}

// HealthCheck verifies API availability via ListModels (free endpoint).
func (c *Client) HealthCheck(ctx context.Context) error {
	if _, err := c.api.ListModels(ctx); err != nil {
		return fmt.Errorf("list models: %w", err)
	}
	return nil
}
