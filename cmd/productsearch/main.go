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
	if err := newApp(os.Stdin, os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(stdin io.Reader, stdout io.Writer) *cli.App {
	return &cli.App{
		Name:      "productsearch",
		Usage:     "Search a product catalog in natural language",
		Version:   version.Version,
		Reader:    stdin,
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
			&cli.StringFlag{
				Name:    "catalog",
				Aliases: []string{"c"},
				Usage:   "Path to the products JSON file (overrides catalog.path)",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
			},
		},
		Before: func(*cli.Context) error {
			metrics.RegisterAIMetrics()
			return nil
		},
		DefaultCommand: "search",
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Run one natural-language search (prompts when QUERY is omitted)",
				ArgsUsage: "[QUERY]",
				Action:    searchCommand,
			},
			{
				Name:   "serve",
				Usage:  "Serve the search HTTP API",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "port",
						Usage: "HTTP port (overrides http.port)",
					},
				},
			},
		},
	}
}
