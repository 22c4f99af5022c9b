package inspection

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/ozgarage/workshop-tracker/internal/entity"
)

// Geometry in millimetres (A4 portrait).
const (
	printMarginLeft   = 15.0
	printMarginTop    = 15.0
	printMarginRight  = 15.0
	printMarginBottom = 15.0
	itemRowH          = 7.0
	doneColW          = 18.0
	issueColW         = 24.0
)

var unsafeFilename = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// Printer renders the checklist to a paginated PDF. Each call is one print
// job: it owns its cursor from start to completion.
type Printer struct {
	outDir string
	log    *slog.Logger
}

func NewPrinter(outDir string, logger *slog.Logger) *Printer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Printer{outDir: outDir, log: logger}
}

// PrintChecklist renders items across as many pages as needed, re-drawing the
// page header on each one. Returns the artifact path and the page count.
func (p *Printer) PrintChecklist(registration string, items []entity.InspectionItem) (string, int, error) {
	if err := os.MkdirAll(p.outDir, 0o755); err != nil {
		return "", 0, fmt.Errorf("create output dir: %w", err)
	}

	reg := strings.TrimSpace(registration)
	safeReg := unsafeFilename.ReplaceAllString(reg, "-")
	if safeReg == "" {
		safeReg = "NA"
	}
	path := filepath.Join(p.outDir, fmt.Sprintf("Inspection-%s-%s.pdf",
		safeReg, time.Now().Format("20060102150405")))

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	_, pageH := pdf.GetPageSize()

	cursor := Start()
	pages := 0
	for {
		pdf.AddPage()
		pages++
		y := p.drawPageHeader(pdf, reg)

		capacity := int((pageH - printMarginBottom - y) / itemRowH)
		page, next := cursor.Step(len(items), capacity)

		pdf.SetFont("Helvetica", "", 10)
		for i := page.Start; i < page.End; i++ {
			p.drawItemRow(pdf, y, items[i])
			y += itemRowH
		}

		cursor = next
		if !page.HasMore {
			break
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		p.log.Error("inspection.pdf.failed", "path", path, "error", err)
		return "", 0, fmt.Errorf("write checklist pdf: %w", err)
	}

	p.log.Info("inspection.pdf.ok", "path", path, "items", len(items), "pages", pages)
	return path, pages, nil
}

// drawPageHeader draws the title block and column captions, returning the
// cursor position where item rows begin.
func (p *Printer) drawPageHeader(pdf *fpdf.Fpdf, registration string) float64 {
	pageW, _ := pdf.GetPageSize()
	width := pageW - printMarginLeft - printMarginRight
	if registration == "" {
		registration = "N/A"
	}

	y := printMarginTop
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(printMarginLeft, y)
	pdf.CellFormat(width, 9, "65 Point Vehicle Check", "", 0, "L", false, 0, "")
	y += 10

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(printMarginLeft, y)
	pdf.CellFormat(width, 6, "Registration: "+registration, "", 0, "L", false, 0, "")
	y += 6
	pdf.SetXY(printMarginLeft, y)
	pdf.CellFormat(width, 6, "Completed: "+time.Now().Format("02 Jan 2006"), "", 0, "L", false, 0, "")
	y += 9

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(printMarginLeft, y)
	pdf.CellFormat(doneColW, 6, "Done", "", 0, "L", false, 0, "")
	pdf.CellFormat(issueColW, 6, "Issue", "", 0, "L", false, 0, "")
	pdf.CellFormat(width-doneColW-issueColW, 6, "Inspection point", "", 0, "L", false, 0, "")
	y += 8

	return y
}

func (p *Printer) drawItemRow(pdf *fpdf.Fpdf, y float64, item entity.InspectionItem) {
	pageW, _ := pdf.GetPageSize()
	width := pageW - printMarginLeft - printMarginRight

	done := ""
	if item.Completed {
		done = "X"
	}

	pdf.SetXY(printMarginLeft, y)
	pdf.CellFormat(doneColW, itemRowH, done, "", 0, "L", false, 0, "")
	pdf.CellFormat(issueColW, itemRowH, item.Issue.PrintLabel(), "", 0, "L", false, 0, "")
	pdf.CellFormat(width-doneColW-issueColW, itemRowH, item.Item, "", 0, "L", false, 0, "")
}
