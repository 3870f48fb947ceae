package extract

import (
	"github.com/gaurav-prasanna/pagescrape/core/document"
)

// Text returns the trimmed visible text of the whole document.
func Text(doc *document.Document) string {
	return doc.Text()
}

// SelectText returns the trimmed visible text of every element matching
// the CSS selector, in document order. No matches yields an empty slice.
func SelectText(doc *document.Document, selector string) []string {
	elements := doc.SelectAll(selector)
	texts := make([]string, 0, len(elements))
	for _, el := range elements {
		texts = append(texts, el.Text())
	}
	return texts
}
