// Package invoice renders fixed-layout PDF invoices from in-memory state.
package invoice

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/ozgarage/workshop-tracker/internal/common"
	"github.com/ozgarage/workshop-tracker/internal/entity"
)

// Page geometry in millimetres (A4 portrait).
const (
	marginLeft  = 15.0
	marginTop   = 15.0
	marginRight = 15.0
	amountColW  = 35.0
	rowH        = 8.0
)

// Composer writes invoice PDFs into a caller-determined directory and returns
// the artifact path for reuse (email attachment, regeneration checks).
type Composer struct {
	outDir string
	log    *slog.Logger
}

func NewComposer(outDir string, logger *slog.Logger) *Composer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Composer{outDir: outDir, log: logger}
}

// FormatAmount renders a monetary amount with fixed two-decimal currency
// formatting, rounding half away from zero.
func FormatAmount(v float64) string {
	return fmt.Sprintf("$%.2f", math.Round(v*100)/100)
}

// Compose renders one invoice document. The line order is significant and
// preserved; the total is recomputed from the lines, never passed in. An empty
// line list or missing customer identity is a caller-side precondition
// violation and fails hard.
func (c *Composer) Compose(customer entity.Customer, vehicle entity.Vehicle, lines []entity.InvoiceLine) (string, error) {
	if strings.TrimSpace(customer.Name) == "" || strings.TrimSpace(customer.Email) == "" {
		return "", common.InvalidArgumentError("customer name and email are required")
	}
	if len(lines) == 0 {
		return "", common.InvalidArgumentError("at least one line item is required")
	}

	if err := os.MkdirAll(c.outDir, 0o755); err != nil {
		return "", fmt.Errorf("create invoice dir: %w", err)
	}
	path := filepath.Join(c.outDir, fmt.Sprintf("Invoice-%s-%s.pdf",
		vehicle.Registration, time.Now().Format("20060102150405")))
	c.log.Info("invoice.pdf.start", "path", path, "lines", len(lines))
	start := time.Now()

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pageW, _ := pdf.GetPageSize()
	width := pageW - marginLeft - marginRight

	y := marginTop
	cell := func(x, w, h float64, text, align string, border, fill bool) {
		pdf.SetXY(x, y)
		borderStr := ""
		if border {
			borderStr = "1"
		}
		pdf.CellFormat(w, h, text, borderStr, 0, align, fill, 0, "")
	}

	// Header block: title, customer identity, optional phone, vehicle lines.
	// Each line advances the cursor a fixed amount, so the block height is
	// deterministic for a given input.
	pdf.SetFont("Helvetica", "B", 18)
	cell(marginLeft, width, 10, "Workshop Invoice", "L", false, false)
	y += 13

	pdf.SetFont("Helvetica", "", 12)
	cell(marginLeft, width, 7, "Customer: "+customer.Name, "L", false, false)
	y += 7

	pdf.SetFont("Helvetica", "", 10)
	cell(marginLeft, width, 6, "Email: "+customer.Email, "L", false, false)
	y += 6
	if strings.TrimSpace(customer.Phone) != "" {
		cell(marginLeft, width, 6, "Phone: "+customer.Phone, "L", false, false)
		y += 6
	}
	cell(marginLeft, width, 6, "Date: "+time.Now().Format("02 Jan 2006"), "L", false, false)
	y += 8

	cell(marginLeft, width, 6, fmt.Sprintf("Vehicle: %s %s (%s)", vehicle.Make, vehicle.Model, vehicle.Registration), "L", false, false)
	y += 6
	cell(marginLeft, width, 6, "VIN: "+vehicle.VIN, "L", false, false)
	y += 9

	// Table: one header row, one row per line item in input order.
	descW := width - amountColW
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(211, 211, 211)
	cell(marginLeft, descW, rowH, "Description", "L", true, true)
	cell(marginLeft+descW, amountColW, rowH, "Amount", "R", true, true)
	y += rowH

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range lines {
		cell(marginLeft, descW, rowH, line.Description, "L", true, false)
		cell(marginLeft+descW, amountColW, rowH, FormatAmount(line.Amount), "R", true, false)
		y += rowH
	}

	total := entity.SumLines(lines)
	y += 4
	pdf.Line(marginLeft+descW, y, marginLeft+width, y)
	y += 2
	pdf.SetFont("Helvetica", "B", 10)
	cell(marginLeft+descW-22, 20, rowH, "Total", "L", false, false)
	cell(marginLeft+descW, amountColW, rowH, FormatAmount(total), "R", false, false)

	if err := pdf.OutputFileAndClose(path); err != nil {
		c.log.Error("invoice.pdf.failed", "path", path, "error", err)
		return "", fmt.Errorf("write invoice pdf: %w", err)
	}

	c.log.Info("invoice.pdf.ok",
		"path", path,
		"total", FormatAmount(total),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return path, nil
}
