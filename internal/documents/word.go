package documents

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	docx "github.com/lukasjarosch/go-docx"
	"github.com/shopspring/decimal"

	"kp_generator/internal/domain"
	"kp_generator/pkg/errcodes"
)

const msgWordProcessing = "Ошибка при обработке Word-шаблона."

//nolint:gochecknoglobals
var hundred = decimal.NewFromInt(100)

// WordFiller подставляет значения вместо плейсхолдеров вида {company} во
// всех абзацах и ячейках таблиц документа.
type WordFiller struct {
	templates *TemplateStore
}

func NewWordFiller(templates *TemplateStore) WordFiller {
	return WordFiller{templates: templates}
}

func (f WordFiller) Fill(_ context.Context, fields Fields) ([]byte, error) {
	raw, err := f.templates.WordTemplate()
	if err != nil {
		return nil, err
	}

	doc, err := docx.OpenBytes(raw)
	if err != nil {
		return nil, domain.WrapError(
			fmt.Errorf("docx.OpenBytes: %w", err),
			errcodes.TemplateProcessingError,
			msgWordProcessing,
		)
	}

	// Денежные поля — две цифры после запятой, пошлина — одна.
	replacements := docx.PlaceholderMap{
		"company":          fields.Company,
		"product":          fields.Product,
		"quantity":         strconv.FormatInt(fields.Quantity, 10),
		"cost_price":       fields.CostPrice.StringFixed(2),
		"weight":           fields.Weight.StringFixed(2),
		"logistics":        fields.LogisticsRub.StringFixed(2),
		"final_price":      fields.FinalPrice.StringFixed(2),
		"duty_percent":     fields.DutyPercent.StringFixed(1),
		"deal_length_days": fields.DealLengthDays.String(),
		"supply_days":      fields.SupplyDays.String(),
		"payment_days":     strconv.FormatInt(fields.PaymentDays, 10),
		"tender_number":    fields.TenderNumber,
		"drawing_number":   fields.DrawingNumber,
		"material":         fields.Material,
		"delivery_address": fields.DeliveryAddress,
		"date":             fields.DateString(),
	}

	if err := doc.ReplaceAll(replacements); err != nil {
		return nil, domain.WrapError(
			fmt.Errorf("doc.ReplaceAll: %w", err),
			errcodes.TemplateProcessingError,
			msgWordProcessing,
		)
	}

	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		return nil, domain.WrapError(
			fmt.Errorf("doc.Write: %w", err),
			errcodes.TemplateProcessingError,
			msgWordProcessing,
		)
	}

	return buf.Bytes(), nil
}
