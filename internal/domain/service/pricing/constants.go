package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Mode выбирает модель распределения затрат.
type Mode string

const (
	// ModeQuantityFlat — упрощённый расчёт: пошлина на закупку, логистика
	// одной суммой, без конвертации и кредитных затрат.
	ModeQuantityFlat Mode = "quantity_flat"
	// ModeWeightProportional — полный бюджет сделки: конвертация, весовое
	// распределение логистики, комиссия и стоимость капитала.
	ModeWeightProportional Mode = "weight_proportional"
)

// Constants — финансовые константы процесса. Задаются один раз на старте,
// в запросах не меняются.
type Constants struct {
	Mode Mode

	ConversionRate            decimal.Decimal // рублей за единицу валюты расчёта
	LogisticsOriginRatio      decimal.Decimal // доля логистики КНР
	LogisticsDestinationRatio decimal.Decimal // доля логистики РФ
	ConversionFeeRate         decimal.Decimal // комиссия за конвертацию, доля
	CreditRate                decimal.Decimal // ставка кредита, годовая доля
	MarginPercent             decimal.Decimal // целевая маржа от выручки, проценты

	DefaultDealLengthDays decimal.Decimal
	EnforceMinDealLength  bool // требовать от заявки минимум 30 дней
}

// QuantityFlat — именованная конфигурация режима A.
func QuantityFlat() Constants {
	return Constants{
		Mode:          ModeQuantityFlat,
		MarginPercent: decimal.NewFromInt(20),

		DefaultDealLengthDays: decimal.NewFromInt(170),
		EnforceMinDealLength:  false,
	}
}

// WeightProportional — именованная конфигурация режима B, константы бюджета.
func WeightProportional() Constants {
	return Constants{
		Mode: ModeWeightProportional,

		ConversionRate:            decimal.NewFromInt(12),
		LogisticsOriginRatio:      decimal.RequireFromString("0.3"),
		LogisticsDestinationRatio: decimal.RequireFromString("0.7"),
		ConversionFeeRate:         decimal.RequireFromString("0.032"),
		CreditRate:                decimal.RequireFromString("0.16"),
		MarginPercent:             decimal.NewFromInt(30),

		DefaultDealLengthDays: decimal.NewFromInt(170),
		EnforceMinDealLength:  true,
	}
}

// ByMode возвращает именованную конфигурацию по тегу режима.
func ByMode(mode Mode) (Constants, error) {
	switch mode {
	case ModeQuantityFlat:
		return QuantityFlat(), nil
	case ModeWeightProportional:
		return WeightProportional(), nil
	default:
		return Constants{}, fmt.Errorf("unknown pricing mode %q", mode)
	}
}

// Validate проверяет константы на старте процесса. Ошибка здесь — ошибка
// конфигурации, а не запроса.
func (c Constants) Validate() error {
	if c.MarginPercent.IsNegative() || c.MarginPercent.GreaterThanOrEqual(hundred) {
		return fmt.Errorf("margin percent %s must be in [0, 100)", c.MarginPercent)
	}

	if c.Mode == ModeWeightProportional {
		if !c.ConversionRate.IsPositive() {
			return fmt.Errorf("conversion rate %s must be positive", c.ConversionRate)
		}

		if !c.LogisticsOriginRatio.Add(c.LogisticsDestinationRatio).Equal(one) {
			return fmt.Errorf(
				"logistics ratios %s + %s must sum to 1.0",
				c.LogisticsOriginRatio, c.LogisticsDestinationRatio,
			)
		}
	}

	return nil
}
