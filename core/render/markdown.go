// Package render provides output renderers for the pagescrape pipeline.
// This file implements the Markdown renderer, which converts the fetched
// page itself to Markdown rather than summarizing the extracted records.
package render

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/pagescrape/core"
	"github.com/gaurav-prasanna/pagescrape/core/normalize"
)

// MarkdownRenderer converts the fetched HTML into a Markdown document.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render converts the page HTML to Markdown, prefixed with its source URL.
func (r *MarkdownRenderer) Render(res *core.ScrapeResult) ([]byte, error) {
	markdown, err := normalize.ToMarkdown(res.HTML)
	if err != nil {
		return nil, fmt.Errorf("normalizing page: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<!-- Source: %s -->\n\n", res.URL)
	b.WriteString(strings.TrimSpace(markdown))
	b.WriteString("\n")
	return []byte(b.String()), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
