package export

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	processor "github.com/joseph-ayodele/docintel/internal/pipeline"
)

// Service renders processing results as XLSX workbooks. Bytes only — nothing
// is written anywhere; callers decide what to do with the workbook.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

const sheet = "Extraction"

// FieldsXLSX returns a workbook with a summary block and one row per
// extracted field.
func (s *Service) FieldsXLSX(res processor.Result) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil {
			s.logger.Warn("export.close_failed", "error", cerr)
		}
	}()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("new sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	// Summary block
	write(1, 1, "Document Type")
	write(2, 1, res.DocumentType)
	write(1, 2, "Confidence")
	write(2, 2, res.Confidence)
	write(1, 3, "Payment Relevant")
	write(2, 3, res.PaymentRelevant)
	write(1, 4, "Processing Time (ms)")
	write(2, 4, res.ProcessingTimeMS)

	// Field table
	const headerRow = 6
	headers := []string{"Field", "Value", "Confidence"}
	for i, h := range headers {
		write(i+1, headerRow, h)
	}
	row := headerRow + 1
	for _, fld := range res.Fields {
		write(1, row, string(fld.Kind))
		write(2, row, fld.Value)
		write(3, row, fld.Confidence)
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	s.logger.Debug("export.xlsx.ok", "fields", len(res.Fields), "bytes", buf.Len())
	return buf.Bytes(), nil
}
