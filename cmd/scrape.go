// Package cmd — scrape command.
// This is the main command that orchestrates the pipeline:
// fetch → parse → extract → render → write.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/pagescrape/core"
	"github.com/gaurav-prasanna/pagescrape/core/document"
	"github.com/gaurav-prasanna/pagescrape/core/extract"
	"github.com/gaurav-prasanna/pagescrape/core/fetch"
	"github.com/gaurav-prasanna/pagescrape/core/output"
	"github.com/gaurav-prasanna/pagescrape/core/render"
)

// defaultOutputName is the output file name when none is given; the
// renderer's extension is appended.
const defaultOutputName = "scraped_data"

// Flag variables.
var (
	flagFormat    string
	flagTimeout   time.Duration
	flagRetries   int
	flagOutputDir string
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape <url> [output_file]",
	Short: "Scrape a page and write its links and images to a file",
	Long: `Scrape fetches a web page (with retry and exponential backoff), extracts
every hyperlink and image, and writes the result in the chosen format.

Examples:
  pagescrape scrape https://example.com
  pagescrape scrape https://example.com data.json
  pagescrape scrape https://example.com links.csv --format csv
  pagescrape scrape https://example.com --format pdf --output_dir ./out`,
	Args: cobra.MaximumNArgs(2),
	RunE: runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)

	scrapeCmd.Flags().StringVar(&flagFormat, "format", "json", "Output format: json, csv, markdown, or pdf")
	scrapeCmd.Flags().DurationVar(&flagTimeout, "timeout", 10*time.Second, "Per-attempt fetch timeout")
	scrapeCmd.Flags().IntVar(&flagRetries, "retries", 3, "Maximum fetch attempts")
	scrapeCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: current directory)")
}

func runScrape(cmd *cobra.Command, args []string) error {
	// A missing URL is a soft no-op: show usage without escalating.
	if len(args) == 0 {
		return cmd.Usage()
	}
	rawURL := args[0]

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid URL: %s (must include scheme, e.g. https://example.com)", rawURL)
	}

	renderer, err := selectRenderer(flagFormat)
	if err != nil {
		return err
	}

	outName := defaultOutputName + renderer.Extension()
	if len(args) > 1 {
		outName = args[1]
	}

	fetcher, err := fetch.New(fetch.Config{
		URL:        rawURL,
		Timeout:    flagTimeout,
		MaxRetries: flagRetries,
	})
	if err != nil {
		return fmt.Errorf("configuring fetcher: %w", err)
	}

	writer, err := output.New(flagOutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	return runPipeline(context.Background(), fetcher, renderer, writer, outName)
}

// runPipeline runs fetch → parse → extract → render → write. Each stage
// failure is wrapped with the stage name so diagnostics identify where the
// pipeline stopped.
func runPipeline(ctx context.Context, fetcher core.Fetcher, renderer core.Renderer, writer *output.Writer, outName string) error {
	result, err := fetcher.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	doc := document.Parse([]byte(result.HTML), result.URL)
	res := &core.ScrapeResult{
		URL:    result.URL,
		HTML:   result.HTML,
		Links:  extract.Links(doc),
		Images: extract.Images(doc),
	}
	log.Info().
		Str("url", res.URL).
		Int("links", len(res.Links)).
		Int("images", len(res.Images)).
		Msg("extraction complete")

	data, err := renderer.Render(res)
	if err != nil {
		// An empty table is a defined outcome, not a pipeline failure.
		if errors.Is(err, render.ErrNoRows) {
			log.Warn().Str("url", res.URL).Msg("nothing to tabulate, no file written")
			return nil
		}
		return fmt.Errorf("render: %w", err)
	}

	path, err := writer.Write(outName, data)
	if err != nil {
		return fmt.Errorf("write: %w", err)
	}
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	return nil
}

// selectRenderer creates the Renderer for the requested format.
func selectRenderer(format string) (core.Renderer, error) {
	switch format {
	case "json":
		return render.NewJSONRenderer(), nil
	case "csv":
		return render.NewCSVRenderer(), nil
	case "markdown":
		return render.NewMarkdownRenderer(), nil
	case "pdf":
		return render.NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown format %q (want json, csv, markdown, or pdf)", format)
	}
}
