package documents_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"kp_generator/internal/documents"
	"kp_generator/internal/domain"
	"kp_generator/pkg/errcodes"
)

func testFields() documents.Fields {
	return documents.Fields{
		Company:         `ООО "Ромашка"`,
		Product:         "Фланец",
		TenderNumber:    "Т-42",
		DrawingNumber:   "КД-124",
		Material:        "Сталь 20",
		DeliveryAddress: "г. Пермь",

		Quantity:       10,
		CostPrice:      decimal.RequireFromString("100"),
		Weight:         decimal.RequireFromString("2.5"),
		LogisticsRub:   decimal.RequireFromString("200"),
		DutyPercent:    decimal.RequireFromString("5"),
		DealLengthDays: decimal.RequireFromString("170"),
		SupplyDays:     decimal.RequireFromString("140"),
		PaymentDays:    30,
		FinalPrice:     decimal.RequireFromString("156.25"),

		Date: time.Date(2026, 8, 28, 9, 5, 0, 0, time.UTC),
	}
}

func writeExcelTemplate(t *testing.T, path string) {
	t.Helper()

	book := excelize.NewFile()
	require.NoError(t, book.SaveAs(path))
	require.NoError(t, book.Close())
}

func TestExcelFillerFill(t *testing.T) {
	rq := require.New(t)

	dir := t.TempDir()
	excelPath := filepath.Join(dir, "template.xlsx")
	writeExcelTemplate(t, excelPath)

	store := documents.NewTemplateStore(excelPath, filepath.Join(dir, "template.docx"))
	filler := documents.NewExcelFiller(store)

	raw, err := filler.Fill(context.Background(), testFields())
	rq.NoError(err)

	book, err := excelize.OpenReader(bytes.NewReader(raw))
	rq.NoError(err)
	defer book.Close() //nolint:errcheck

	sheet := book.GetSheetName(book.GetActiveSheetIndex())

	cellChecks := map[string]string{
		"D2":  "28.08.2026г.",
		"D4":  `ООО "Ромашка"`,
		"D5":  "Т-42",
		"P4":  "г. Пермь",
		"C10": "Фланец ч.КД-124",
		"D10": "Сталь 20",
		"E10": "КД-124",
		"G10": "10",
		"M10": "100",
		"P10": "2.5",
		"U14": "200",
		"X10": "0.05",
		"I15": "140",
		"I16": "30",
		"H10": "156.25",
	}

	for cell, want := range cellChecks {
		got, err := book.GetCellValue(sheet, cell)
		rq.NoError(err)
		rq.Equal(want, got, "cell %s", cell)
	}
}

func TestExcelFillerMissingTemplate(t *testing.T) {
	rq := require.New(t)

	dir := t.TempDir()
	store := documents.NewTemplateStore(
		filepath.Join(dir, "nope.xlsx"),
		filepath.Join(dir, "nope.docx"),
	)

	_, err := documents.NewExcelFiller(store).Fill(context.Background(), testFields())

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.ConfigurationError, code)

	message, ok := domain.UserMessage(err)
	rq.True(ok)
	rq.Contains(message, "Обратитесь к администратору")
}

func TestExcelFillerCorruptTemplate(t *testing.T) {
	rq := require.New(t)

	dir := t.TempDir()
	excelPath := filepath.Join(dir, "template.xlsx")
	writeGarbage(t, excelPath)

	store := documents.NewTemplateStore(excelPath, filepath.Join(dir, "template.docx"))

	_, err := documents.NewExcelFiller(store).Fill(context.Background(), testFields())

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.TemplateProcessingError, code)
}
