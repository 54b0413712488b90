package documents

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"kp_generator/internal/domain"
	"kp_generator/pkg/errcodes"
)

const msgExcelProcessing = "Ошибка при обработке Excel-шаблона."

// ExcelFiller заполняет фиксированные ячейки шаблона спецификации.
type ExcelFiller struct {
	templates *TemplateStore
}

func NewExcelFiller(templates *TemplateStore) ExcelFiller {
	return ExcelFiller{templates: templates}
}

func (f ExcelFiller) Fill(_ context.Context, fields Fields) ([]byte, error) {
	raw, err := f.templates.ExcelTemplate()
	if err != nil {
		return nil, err
	}

	book, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, domain.WrapError(
			fmt.Errorf("excelize.OpenReader: %w", err),
			errcodes.TemplateProcessingError,
			msgExcelProcessing,
		)
	}
	defer book.Close() //nolint:errcheck

	sheet := book.GetSheetName(book.GetActiveSheetIndex())

	// Адреса ячеек зафиксированы макетом шаблона спецификации.
	cells := map[string]any{
		"D2":  fields.DateString(),
		"D4":  fields.Company,
		"D5":  fields.TenderNumber,
		"P4":  fields.DeliveryAddress,
		"C10": fields.ProductWithDrawing(),
		"D10": fields.Material,
		"E10": fields.DrawingNumber,
		"G10": fields.Quantity,
		"M10": fields.CostPrice.InexactFloat64(),
		"P10": fields.Weight.InexactFloat64(),
		"U14": fields.LogisticsRub.InexactFloat64(),
		"X10": fields.DutyPercent.Div(hundred).InexactFloat64(), // доля, не проценты
		"I15": fields.SupplyDays.InexactFloat64(),
		"I16": fields.PaymentDays,
		"H10": fields.FinalPrice.InexactFloat64(),
	}

	for cell, value := range cells {
		if err := book.SetCellValue(sheet, cell, value); err != nil {
			return nil, domain.WrapError(
				fmt.Errorf("book.SetCellValue %s: %w", cell, err),
				errcodes.TemplateProcessingError,
				msgExcelProcessing,
			)
		}
	}

	buf, err := book.WriteToBuffer()
	if err != nil {
		return nil, domain.WrapError(
			fmt.Errorf("book.WriteToBuffer: %w", err),
			errcodes.TemplateProcessingError,
			msgExcelProcessing,
		)
	}

	return buf.Bytes(), nil
}
