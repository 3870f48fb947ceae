// Package document wraps parsed HTML behind a read-only query surface.
// Extractors only ever see this package's Document and Element types, so
// the concrete parser (goquery over x/net/html) stays an implementation
// detail.
package document

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"
)

// Document owns a parsed HTML tree plus the base URL used to resolve
// relative references found in it. It is never mutated after Parse.
//
// A nil *Document is the "never parsed" state: every query on it returns
// an empty result.
type Document struct {
	doc  *goquery.Document
	base *url.URL
}

// Element is a non-owning view of a single node in a Document, valid only
// while the Document is alive.
type Element interface {
	// TagName returns the element's tag, e.g. "a" or "img".
	TagName() string
	// Attr looks up an attribute value; ok is false when the attribute
	// is absent.
	Attr(name string) (value string, ok bool)
	// Text returns the element's visible text, trimmed.
	Text() string
}

// Parse builds a Document from raw HTML. Parsing is permissive: malformed
// or non-HTML input degrades to a best-effort (possibly near-empty) tree,
// never an error.
func Parse(raw []byte, baseURL string) *Document {
	gq, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		// html.Parse only fails on reader errors, which a bytes.Reader
		// never produces. Degrade to an empty tree regardless.
		gq, _ = goquery.NewDocumentFromReader(strings.NewReader(""))
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		base = nil
	}
	return &Document{doc: gq, base: base}
}

// SelectAll returns every element matching the CSS selector, in document
// order.
func (d *Document) SelectAll(selector string) []Element {
	if d == nil || d.doc == nil {
		log.Warn().Str("selector", selector).Msg("query against unparsed document")
		return nil
	}
	var out []Element
	d.doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		out = append(out, element{sel: s})
	})
	return out
}

// FindAllByTagWithAttr returns every <tag> element that carries the named
// attribute, in document order.
func (d *Document) FindAllByTagWithAttr(tag, attr string) []Element {
	return d.SelectAll(fmt.Sprintf("%s[%s]", tag, attr))
}

// Text returns all visible text in the document, trimmed. Script, style
// and similar non-rendered content is excluded.
func (d *Document) Text() string {
	if d == nil || d.doc == nil {
		log.Warn().Msg("text requested from unparsed document")
		return ""
	}
	return visibleText(d.doc.Nodes)
}

// ResolveURL resolves ref against the document's base URL. A ref that
// cannot be parsed, or a document with no usable base, resolves to ref
// unchanged so one bad reference never aborts an extraction.
func (d *Document) ResolveURL(ref string) string {
	if d == nil || d.base == nil {
		return ref
	}
	parsed, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return d.base.ResolveReference(parsed).String()
}

type element struct {
	sel *goquery.Selection
}

func (e element) TagName() string {
	if len(e.sel.Nodes) == 0 {
		return ""
	}
	return e.sel.Nodes[0].Data
}

func (e element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

func (e element) Text() string {
	return visibleText(e.sel.Nodes)
}

// hiddenTags are elements whose text content never renders on the page.
var hiddenTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
}

func visibleText(nodes []*html.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		collectText(&b, n)
	}
	return strings.TrimSpace(b.String())
}

func collectText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.CommentNode:
		return
	case html.ElementNode:
		if hiddenTags[n.Data] {
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}
}
