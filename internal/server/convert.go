package server

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"kp_generator/internal/domain/entity"
)

// newQuotationInput строит доменную заявку из прошедшей проверку формы.
// Пошлина по умолчанию нулевая, длина сделки берётся из активной
// конфигурации расчёта.
func newQuotationInput(
	form url.Values,
	defaultDealLengthDays decimal.Decimal,
) (entity.QuotationInput, error) {
	quantity, err := decimal.NewFromString(strings.TrimSpace(form.Get("quantity")))
	if err != nil {
		return entity.QuotationInput{}, fmt.Errorf("parse quantity: %w", err)
	}

	costPrice, err := decimal.NewFromString(strings.TrimSpace(form.Get("cost_price")))
	if err != nil {
		return entity.QuotationInput{}, fmt.Errorf("parse cost_price: %w", err)
	}

	weight, err := decimal.NewFromString(strings.TrimSpace(form.Get("weight")))
	if err != nil {
		return entity.QuotationInput{}, fmt.Errorf("parse weight: %w", err)
	}

	logistics, err := decimal.NewFromString(strings.TrimSpace(form.Get("logistics")))
	if err != nil {
		return entity.QuotationInput{}, fmt.Errorf("parse logistics: %w", err)
	}

	duty, err := optionalDecimal(form.Get("duty_percent"), decimal.Zero)
	if err != nil {
		return entity.QuotationInput{}, fmt.Errorf("parse duty_percent: %w", err)
	}

	dealLength, err := optionalDecimal(form.Get("deal_length_days"), defaultDealLengthDays)
	if err != nil {
		return entity.QuotationInput{}, fmt.Errorf("parse deal_length_days: %w", err)
	}

	return entity.QuotationInput{
		Company: strings.TrimSpace(form.Get("company")),
		Product: strings.TrimSpace(form.Get("product")),

		Quantity:       quantity.IntPart(),
		CostPrice:      costPrice,
		Weight:         weight,
		LogisticsRub:   logistics,
		DutyPercent:    duty,
		DealLengthDays: dealLength,

		TenderNumber:    strings.TrimSpace(form.Get("tender_number")),
		DrawingNumber:   strings.TrimSpace(form.Get("drawing_number")),
		Material:        strings.TrimSpace(form.Get("material")),
		DeliveryAddress: strings.TrimSpace(form.Get("delivery_address")),
	}, nil
}

func optionalDecimal(raw string, fallback decimal.Decimal) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}

	return decimal.NewFromString(raw)
}

// formSnapshot сохраняет введённые значения для повторного показа формы.
func formSnapshot(form url.Values) map[string]string {
	snapshot := make(map[string]string, len(form))
	for field := range form {
		snapshot[field] = form.Get(field)
	}

	return snapshot
}
