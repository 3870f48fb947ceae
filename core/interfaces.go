// Package core defines the pipeline types and interfaces for pagescrape.
// Each stage of the pipeline is a clean, testable interface.
package core

import (
	"context"
	"fmt"
)

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// FetchError reports a fetch whose every attempt failed. It carries the
// last underlying error and the number of attempts made.
type FetchError struct {
	Attempts int
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// LinkRecord is one hyperlink found on the page. URL is absolute whenever
// the page URL itself is absolute.
type LinkRecord struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// Row returns the record as an ordered tabular row.
func (l LinkRecord) Row() Row {
	return Row{{"text", l.Text}, {"url", l.URL}}
}

// ImageRecord is one image found on the page. Alt is "" when the source
// element carries no alt attribute.
type ImageRecord struct {
	Alt string `json:"alt"`
	URL string `json:"url"`
}

// Row returns the record as an ordered tabular row.
func (i ImageRecord) Row() Row {
	return Row{{"alt", i.Alt}, {"url", i.URL}}
}

// Cell is a single key/value pair of a tabular row.
type Cell struct {
	Key   string
	Value string
}

// Row is an ordered sequence of cells. Cell order in the first tabulated
// row defines the column order for the whole table.
type Row []Cell

// ScrapeResult holds the full, uncapped extraction from a single page.
// It is the input to every renderer.
type ScrapeResult struct {
	URL    string
	HTML   string
	Links  []LinkRecord
	Images []ImageRecord
}

// summaryCap bounds the link and image lists embedded in a summary.
// The totals always reflect the full counts.
const summaryCap = 10

// ScrapeSummary is the JSON output shape for a scraped page.
type ScrapeSummary struct {
	URL         string        `json:"url"`
	TotalLinks  int           `json:"total_links"`
	TotalImages int           `json:"total_images"`
	Links       []LinkRecord  `json:"links"`
	Images      []ImageRecord `json:"images"`
}

// Summarize builds the capped summary for a scrape result. The embedded
// lists are never nil so they serialize as [] rather than null.
func Summarize(res *ScrapeResult) ScrapeSummary {
	links := res.Links
	if len(links) > summaryCap {
		links = links[:summaryCap]
	}
	if links == nil {
		links = []LinkRecord{}
	}
	images := res.Images
	if len(images) > summaryCap {
		images = images[:summaryCap]
	}
	if images == nil {
		images = []ImageRecord{}
	}
	return ScrapeSummary{
		URL:         res.URL,
		TotalLinks:  len(res.Links),
		TotalImages: len(res.Images),
		Links:       links,
		Images:      images,
	}
}

// Fetcher retrieves the raw HTML of its configured URL.
type Fetcher interface {
	Fetch(ctx context.Context) (*FetchResult, error)
}

// Renderer converts a scrape result into a final output format.
type Renderer interface {
	Render(res *ScrapeResult) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".json", ".csv").
	Extension() string
}
