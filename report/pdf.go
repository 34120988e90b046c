package report

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

// ClientInfo fills the cover info box on the report.
type ClientInfo struct {
	Name         string
	ProfileTitle string
	// Date stamps the header and the document metadata. Rendering the same
	// input with the same Date yields byte-identical output.
	Date time.Time
}

var (
	bulletLine   = regexp.MustCompile(`^[-*]\s+`)
	numberedLine = regexp.MustCompile(`^\d+[.)]\s+`)
)

// RenderPDF lays the parsed sections into the paginated Ralph report.
// Pagination is delegated to fpdf's auto page break; the header and footer
// repeat on every page.
func RenderPDF(info ClientInfo, sections []Section) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetCreationDate(info.Date)
	pdf.SetModificationDate(info.Date)
	pdf.SetAutoPageBreak(true, 15)

	pdf.SetHeaderFuncMode(func() {
		pdf.SetFont("Helvetica", "B", 24)
		pdf.SetTextColor(16, 15, 15)
		pdf.CellFormat(0, 10, "RALPH", "", 1, "C", false, 0, "")
		pdf.SetFont("Helvetica", "", 12)
		pdf.SetTextColor(80, 80, 80)
		pdf.CellFormat(0, 8, "Real Estate Business Analysis", "", 1, "C", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 8, "Generated on "+info.Date.Format("January 2, 2006"), "", 1, "C", false, 0, "")
		pdf.Ln(8)
	}, true)

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	infoBox(pdf, tr, info)
	for _, s := range sections {
		sectionTitle(pdf, tr, s.Title)
		sectionBody(pdf, tr, s.Body)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func infoBox(pdf *fpdf.Fpdf, tr func(string) string, info ClientInfo) {
	x, y := pdf.GetXY()
	pdf.SetFillColor(248, 249, 250)
	pdf.Rect(x, y, 190, 30, "F")

	pdf.SetXY(x+5, y+5)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(16, 15, 15)
	pdf.CellFormat(0, 5, "Client Information", "", 1, "L", false, 0, "")

	pdf.SetXY(x+5, y+12)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.MultiCell(180, 5, tr(fmt.Sprintf("Name: %s\nProfile: %s\nAnalysis Date: %s",
		info.Name, info.ProfileTitle, info.Date.Format("January 2, 2006"))), "", "L", false)
	pdf.SetY(y + 35)
}

func sectionTitle(pdf *fpdf.Fpdf, tr func(string) string, title string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(16, 15, 15)
	pdf.CellFormat(0, 10, tr(strings.ToUpper(title)), "", 1, "L", false, 0, "")
	pdf.Ln(2)
}

// sectionBody renders body text with light structure: blank lines separate
// paragraphs, bullet and numbered lines become indented list items. MultiCell
// wraps anything, so a pathological unbroken line just spills across pages
// instead of failing.
func sectionBody(pdf *fpdf.Fpdf, tr func(string) string, body string) {
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(0, 0, 0)

	left, _, _, _ := pdf.GetMargins()
	var paragraph []string
	flush := func() {
		if len(paragraph) == 0 {
			return
		}
		pdf.MultiCell(0, 5, tr(strings.Join(paragraph, " ")), "", "L", false)
		pdf.Ln(3)
		paragraph = nil
	}

	for _, line := range strings.Split(html.UnescapeString(body), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			flush()
		case bulletLine.MatchString(line):
			flush()
			pdf.SetX(left + 5)
			pdf.MultiCell(0, 5, tr("• "+bulletLine.ReplaceAllString(line, "")), "", "L", false)
		case numberedLine.MatchString(line):
			flush()
			pdf.SetX(left + 5)
			pdf.MultiCell(0, 5, tr(line), "", "L", false)
		default:
			paragraph = append(paragraph, line)
		}
	}
	flush()
	pdf.Ln(5)
}
