package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/kailas-cloud/aiconsole/internal/domain"
	"github.com/kailas-cloud/aiconsole/internal/report"
)

var exampleQueries = []string{
	"I need electronics under $100 and in stock",
	"Looking for books rated above 4.5 that are available now",
	"Show me fitness products under $50 with a rating above 4",
	"Kitchen appliances with good ratings",
}

func searchCommand(c *cli.Context) error {
	a, err := setup(c, "warn")
	if err != nil {
		return err
	}
	defer a.Close()

	out := c.App.Writer
	fmt.Fprintln(out, "Product Search Tool - OpenAI Function Calling")
	fmt.Fprintln(out, strings.Repeat("=", 55))
	fmt.Fprintf(out, "Loaded %d products from dataset.\n", a.search.Size())

	query := strings.Join(c.Args().Slice(), " ")
	if query == "" {
		printExamples(out)
		query, err = prompt(c.App.Reader, out, "Enter your search query: ")
		if err != nil {
			return cli.Exit("failed to read query: "+err.Error(), 1)
		}
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return searchError(domain.ErrEmptyQuery)
	}

	fmt.Fprintf(out, "\nProcessing: '%s'\n", query)
	res, err := a.search.Search(c.Context, query)
	if err != nil {
		return searchError(err)
	}

	fmt.Fprintf(out, "Criteria: %s\n", res.Criteria)
	if err := report.Products(out, res.Products); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

func printExamples(w io.Writer) {
	fmt.Fprintln(w, "\nExample search queries:")
	for _, q := range exampleQueries {
		fmt.Fprintf(w, "• '%s'\n", q)
	}
	fmt.Fprintln(w)
}

// prompt reads one line. EOF without input yields an empty string.
func prompt(r io.Reader, w io.Writer, label string) (string, error) {
	fmt.Fprint(w, label)
	sc := bufio.NewScanner(r)
	if sc.Scan() {
		return sc.Text(), nil
	}
	return "", sc.Err()
}
