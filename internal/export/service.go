package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ozgarage/workshop-tracker/internal/entity"
)

// Service produces XLSX bytes from the vehicle registry for exports.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// ExportVehiclesXLSX returns an XLSX workbook (as bytes) for the given
// vehicles, one row per registry entry in registry order.
func (s *Service) ExportVehiclesXLSX(vehicles []entity.Vehicle) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Vehicles"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Registration",
		"State",
		"VIN",
		"Make",
		"Model",
		"Engine",
		"Transmission",
		"Owner Name",
		"Owner Phone",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, v := range vehicles {
		write := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, value)
		}

		write(1, v.Registration)
		write(2, v.State)
		write(3, v.VIN)
		write(4, v.Make)
		write(5, v.Model)
		write(6, v.Engine)
		write(7, v.Transmission)
		write(8, v.OwnerName)
		write(9, v.OwnerPhone)

		row++
	}

	_ = f.SetColWidth(sheet, "A", "B", 14)
	_ = f.SetColWidth(sheet, "C", "C", 22)
	_ = f.SetColWidth(sheet, "D", "G", 18)
	_ = f.SetColWidth(sheet, "H", "H", 24)
	_ = f.SetColWidth(sheet, "I", "I", 18)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(vehicles),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
