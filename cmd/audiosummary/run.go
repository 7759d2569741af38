package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/kailas-cloud/aiconsole/internal/config"
	"github.com/kailas-cloud/aiconsole/internal/domain"
	logpkg "github.com/kailas-cloud/aiconsole/internal/logger"
	"github.com/kailas-cloud/aiconsole/internal/report"
	openaiTransport "github.com/kailas-cloud/aiconsole/internal/transport/openai"
	"github.com/kailas-cloud/aiconsole/internal/usecase/audiosummary"
)

const previewLen = 200

func run(c *cli.Context) error {
	paths := c.Args().Slice()
	if len(paths) == 0 {
		return cli.Exit("Error: at least one audio file is required.\n"+
			"Usage: audiosummary [--no-save] [--verbose] FILE...", 1)
	}

	if err := config.LoadDotEnv(c.String("env-file")); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	cfg, err := config.LoadOrDefault(c.String("config-env"))
	if err != nil {
		return configError(err)
	}
	applyFlags(c, &cfg)

	verbose := c.Bool("verbose")
	logger, err := logpkg.NewConsoleLogger(verbose)
	if err != nil {
		return cli.Exit("failed to create logger: "+err.Error(), 1)
	}
	defer func() { _ = logger.Sync() }()

	client := openaiTransport.NewClient(&openaiTransport.Config{
		APIKey:             cfg.OpenAI.APIKey,
		BaseURL:            cfg.OpenAI.BaseURL,
		ChatModel:          cfg.OpenAI.ChatModel,
		TranscriptionModel: cfg.OpenAI.TranscriptionModel,
		Temperature:        *cfg.OpenAI.Temperature,
		Timeout:            cfg.OpenAI.Timeout(),
		Logger:             logger,
	})

	opts := []audiosummary.Option{audiosummary.WithConcurrency(cfg.Audio.Concurrency)}
	if cfg.Output.Enabled() {
		opts = append(opts, audiosummary.WithWriter(report.NewWriter(cfg.Output.Dir, logger)))
	}
	svc := audiosummary.New(client, client, logger, opts...)

	out := c.App.Writer
	fmt.Fprintln(out, "Audio Transcription and Summarization")
	fmt.Fprintln(out, strings.Repeat("=", 60))
	for _, p := range paths {
		fmt.Fprintf(out, "Processing: %s\n", p)
	}
	fmt.Fprintln(out)

	results, err := svc.ProcessAll(c.Context, paths)
	if err != nil {
		return cli.Exit("Error: "+err.Error(), 1)
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(out, "Error processing %s: %s\n\n", res.Path, describe(res.Err))
			logger.Debug("Processing failed", zap.String("file", res.Path), zap.Error(res.Err))
			continue
		}
		if err := printReport(out, res.Report, verbose); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d files failed.", failed, len(results)), 1)
	}
	fmt.Fprintln(out, "Audio processing completed successfully!")
	return nil
}

func applyFlags(c *cli.Context, cfg *config.Config) {
	if c.Bool("no-save") {
		save := false
		cfg.Output.Save = &save
	}
	if dir := c.String("output-dir"); dir != "" {
		cfg.Output.Dir = dir
	}
	if n := c.Int("concurrency"); n > 0 {
		cfg.Audio.Concurrency = n
	}
}

func printReport(w io.Writer, rep audiosummary.Report, verbose bool) error {
	fmt.Fprintf(w, "Results for %s\n", rep.AudioPath)
	fmt.Fprintln(w, strings.Repeat("=", 60))

	if verbose {
		fmt.Fprintf(w, "Transcript length: %d characters\n", len(rep.Transcript.Text))
		fmt.Fprintln(w, "Transcript preview:")
		fmt.Fprintln(w, strings.Repeat("-", 40))
		fmt.Fprintln(w, preview(rep.Transcript.Text))
		fmt.Fprintln(w, strings.Repeat("-", 40))
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, report.SummaryMarkdown(rep.Summary))

	analytics, err := report.AnalyticsJSON(rep.Summary)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "\nAnalytics (JSON):")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintln(w, analytics)

	for _, path := range rep.Files.Saved() {
		fmt.Fprintf(w, "Saved: %s\n", path)
	}
	fmt.Fprintln(w)
	return nil
}

// preview cuts text to previewLen runes.
func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLen {
		return text
	}
	return string(runes[:previewLen]) + "..."
}

func describe(err error) string {
	if errors.Is(err, domain.ErrProviderError) {
		return err.Error() + "\nPlease check your OpenAI API key and internet connection."
	}
	return err.Error()
}

func configError(err error) error {
	if strings.Contains(err.Error(), "openai.api_key is required") {
		return cli.Exit("Configuration error: OPENAI_API_KEY not found!\n"+
			"Make sure you have set your OPENAI_API_KEY in the .env file.", 1)
	}
	return cli.Exit("failed to load config: "+err.Error(), 1)
}
