// Package render — JSON renderer.
// Serializes the capped scrape summary as indented JSON. HTML escaping is
// disabled so link text, URLs, and non-ASCII content survive byte-exact.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/pagescrape/core"
)

// JSONRenderer produces the structured JSON summary of a scrape.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render serializes the summary of res as indented JSON.
func (r *JSONRenderer) Render(res *core.ScrapeResult) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(core.Summarize(res)); err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
