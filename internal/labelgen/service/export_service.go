package service

import (
	"errors"
	"fmt"

	"github.com/ZulfikarHD/labelgen/internal/labelgen/repository"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportService renders an order's label sheet as xlsx.
type ExportService struct {
	orders *repository.OrderRepository
	labels *repository.LabelRepository
}

func NewExportService(orders *repository.OrderRepository, labels *repository.LabelRepository) *ExportService {
	return &ExportService{orders: orders, labels: labels}
}

var labelExportHeaders = []string{
	"No", "Rim", "Potongan", "Status", "Pemeriksa 1", "Pemeriksa 2",
	"Lembar Kemas", "Mulai", "Selesai",
}

const exportTimeLayout = "2006-01-02 15:04"

// ExportOrder builds the label sheet workbook for one order.
func (s *ExportService) ExportOrder(orderID uint) (*excelize.File, string, error) {
	order, err := s.orders.GetByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrNotFound
		}
		return nil, "", err
	}
	labels, err := s.labels.ListByOrder(orderID)
	if err != nil {
		return nil, "", fmt.Errorf("list labels: %w", err)
	}

	f := excelize.NewFile()
	sheet := "Label"
	f.SetSheetName("Sheet1", sheet)

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	// Order summary block above the table.
	f.SetCellValue(sheet, "A1", "No. PO")
	f.SetCellValue(sheet, "B1", order.PONumber)
	f.SetCellValue(sheet, "A2", "No. OBC")
	f.SetCellValue(sheet, "B2", order.OBCNumber)
	f.SetCellValue(sheet, "A3", "Jenis")
	f.SetCellValue(sheet, "B3", order.OrderType.Label())
	f.SetCellValue(sheet, "A4", "Total Lembar")
	f.SetCellValue(sheet, "B4", order.TotalSheets)
	f.SetCellStyle(sheet, "A1", "A4", boldStyle)

	headerRow := 6
	for i, h := range labelExportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := fmt.Sprintf("%s%d", col, headerRow)
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}

	var completed int
	for idx := range labels {
		label := &labels[idx]
		row := headerRow + 1 + idx

		rim := fmt.Sprintf("%d", label.RimNumber)
		if label.IsInschiet {
			rim = "Inschiet"
		}
		side := "-"
		if label.CutSide != nil {
			side = label.CutSide.Label()
		}

		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), idx+1)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), rim)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), side)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), string(label.State()))
		if label.InspectorNP != nil {
			f.SetCellValue(sheet, fmt.Sprintf("E%d", row), *label.InspectorNP)
		}
		if label.Inspector2NP != nil {
			f.SetCellValue(sheet, fmt.Sprintf("F%d", row), *label.Inspector2NP)
		}
		if label.PackSheets != nil {
			f.SetCellValue(sheet, fmt.Sprintf("G%d", row), *label.PackSheets)
		}
		if label.StartedAt != nil {
			f.SetCellValue(sheet, fmt.Sprintf("H%d", row), label.StartedAt.Format(exportTimeLayout))
		}
		if label.FinishedAt != nil {
			f.SetCellValue(sheet, fmt.Sprintf("I%d", row), label.FinishedAt.Format(exportTimeLayout))
		}
		if label.IsCompleted() {
			completed++
		}
	}

	summaryRow := headerRow + len(labels) + 1
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("D%d", summaryRow), fmt.Sprintf("%d/%d selesai", completed, len(labels)))
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("I%d", summaryRow), summaryStyle)

	colWidths := []float64{6, 10, 10, 12, 12, 12, 12, 18, 18}
	for i, w := range colWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, w)
	}

	filename := fmt.Sprintf("Label_PO_%d.xlsx", order.PONumber)
	return f, filename, nil
}
