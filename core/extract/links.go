// Package extract pulls structured records out of a parsed document.
// Extractors are pure: they query the document, never mutate it, and an
// unparsed (nil) document yields empty results rather than an error.
package extract

import (
	"github.com/gaurav-prasanna/pagescrape/core"
	"github.com/gaurav-prasanna/pagescrape/core/document"
)

// Links returns one record per <a href> element, in document order.
// Each href is resolved against the document's base URL; duplicates are
// kept as-is.
func Links(doc *document.Document) []core.LinkRecord {
	elements := doc.FindAllByTagWithAttr("a", "href")
	links := make([]core.LinkRecord, 0, len(elements))
	for _, el := range elements {
		href, _ := el.Attr("href")
		links = append(links, core.LinkRecord{
			Text: el.Text(),
			URL:  doc.ResolveURL(href),
		})
	}
	return links
}
