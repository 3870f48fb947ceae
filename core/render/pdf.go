// Package render — PDF renderer.
// Produces a styled scrape report using gofpdf: source URL, record counts,
// and the first few links and images.
package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/pagescrape/core"
)

// PDFRenderer renders a scrape summary as a PDF report.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render builds the PDF report for res.
func (r *PDFRenderer) Render(res *core.ScrapeResult) ([]byte, error) {
	sum := core.Summarize(res)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 8, "Scrape Report", "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 5, "Source: "+sum.URL, "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, fmt.Sprintf("%d links, %d images", sum.TotalLinks, sum.TotalImages), "", "L", false)
	pdf.Ln(4)

	renderSection(pdf, fmt.Sprintf("Links (%d of %d)", len(sum.Links), sum.TotalLinks))
	for _, link := range sum.Links {
		renderItem(pdf, link.Text, link.URL)
	}
	pdf.Ln(4)

	renderSection(pdf, fmt.Sprintf("Images (%d of %d)", len(sum.Images), sum.TotalImages))
	for _, img := range sum.Images {
		renderItem(pdf, img.Alt, img.URL)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("generating PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// renderSection writes a section heading.
func renderSection(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.MultiCell(0, 7, title, "", "L", false)
	pdf.Ln(1)
}

// renderItem writes one record line. The label may be empty, in which
// case only the URL is shown.
func renderItem(pdf *gofpdf.Fpdf, label, url string) {
	pdf.SetFont("Helvetica", "", 10)
	line := "• " + url
	if label != "" {
		line = "• " + label + " - " + url
	}
	pdf.MultiCell(0, 5, line, "", "L", false)
}
