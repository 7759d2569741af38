package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/kailas-cloud/aiconsole/internal/config"
	"github.com/kailas-cloud/aiconsole/internal/metrics"
	"github.com/kailas-cloud/aiconsole/internal/version"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(stdout io.Writer) *cli.App {
	return &cli.App{
		Name:      "audiosummary",
		Usage:     "Transcribe audio files and produce structured summaries with analytics",
		UsageText: "audiosummary [options] FILE...",
		Version:   version.Version,
		Writer:    stdout,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config-env",
				Usage:   "Configuration environment (reads config/<env>.yaml)",
				EnvVars: []string{"ENV"},
				Value:   config.GetEnv(),
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "Path to a .env file with credentials",
				Value: ".env",
			},
			&cli.BoolFlag{
				Name:  "no-save",
				Usage: "Don't save output to files, only display to console",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Show detailed progress information",
			},
			&cli.StringFlag{
				Name:  "output-dir",
				Usage: "Directory for saved reports (overrides output.dir)",
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Usage: "Number of files processed at once (overrides audio.concurrency)",
			},
		},
		Before: func(*cli.Context) error {
			metrics.RegisterAIMetrics()
			return nil
		},
		Action: run,
	}
}
