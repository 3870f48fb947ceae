// Package cmd — text command.
// Prints the visible text of a page, whole-document or per CSS selector.
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/pagescrape/core/document"
	"github.com/gaurav-prasanna/pagescrape/core/extract"
	"github.com/gaurav-prasanna/pagescrape/core/fetch"
)

var (
	flagTextTimeout time.Duration
	flagTextRetries int
)

var textCmd = &cobra.Command{
	Use:   "text <url> [selector]",
	Short: "Print the visible text of a page, optionally per CSS selector",
	Long: `Text fetches a web page and prints its visible text. With a selector,
each matching element's text is printed on its own line.

Examples:
  pagescrape text https://example.com
  pagescrape text https://example.com "h2.headline"`,
	Args: cobra.MaximumNArgs(2),
	RunE: runText,
}

func init() {
	rootCmd.AddCommand(textCmd)

	textCmd.Flags().DurationVar(&flagTextTimeout, "timeout", 10*time.Second, "Per-attempt fetch timeout")
	textCmd.Flags().IntVar(&flagTextRetries, "retries", 3, "Maximum fetch attempts")
}

func runText(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Usage()
	}
	rawURL := args[0]

	fetcher, err := fetch.New(fetch.Config{
		URL:        rawURL,
		Timeout:    flagTextTimeout,
		MaxRetries: flagTextRetries,
	})
	if err != nil {
		return fmt.Errorf("configuring fetcher: %w", err)
	}

	result, err := fetcher.Fetch(context.Background())
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	doc := document.Parse([]byte(result.HTML), result.URL)
	if len(args) > 1 {
		for _, text := range extract.SelectText(doc, args[1]) {
			fmt.Fprintln(os.Stdout, text)
		}
		return nil
	}
	fmt.Fprintln(os.Stdout, extract.Text(doc))
	return nil
}
