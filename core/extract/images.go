package extract

import (
	"github.com/gaurav-prasanna/pagescrape/core"
	"github.com/gaurav-prasanna/pagescrape/core/document"
)

// Images returns one record per <img src> element, in document order.
// The src is resolved against the document's base URL and a missing alt
// attribute becomes the empty string.
func Images(doc *document.Document) []core.ImageRecord {
	elements := doc.FindAllByTagWithAttr("img", "src")
	images := make([]core.ImageRecord, 0, len(elements))
	for _, el := range elements {
		src, _ := el.Attr("src")
		alt, _ := el.Attr("alt")
		images = append(images, core.ImageRecord{
			Alt: alt,
			URL: doc.ResolveURL(src),
		})
	}
	return images
}
