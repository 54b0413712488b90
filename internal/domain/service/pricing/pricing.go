package pricing

import (
	"github.com/shopspring/decimal"

	"kp_generator/internal/domain"
	"kp_generator/pkg/errcodes"
)

//nolint:gochecknoglobals
var (
	one        = decimal.NewFromInt(1)
	hundred    = decimal.NewFromInt(100)
	daysInYear = decimal.NewFromInt(365)
)

// ErrZeroTotalWeight возвращается в режиме весового распределения, когда
// общий вес позиции равен нулю: делить логистику не на что.
var ErrZeroTotalWeight = domain.NewError(
	errcodes.DomainError,
	"total weight is zero, per-unit logistics allocation is undefined",
)

// Input — проверенные числовые параметры сделки. Quantity > 0 гарантирует
// валидатор формы; сюда нулевое количество не доходит.
type Input struct {
	Quantity       int64
	CostPrice      decimal.Decimal
	Weight         decimal.Decimal
	LogisticsRub   decimal.Decimal
	DutyPercent    decimal.Decimal
	DealLengthDays decimal.Decimal
}

// Breakdown — затраты на единицу товара по статьям и итоговая цена продажи.
// TotalCostPerUnit всегда равен точной сумме шести компонент.
type Breakdown struct {
	PurchaseCost         decimal.Decimal
	LogisticsOrigin      decimal.Decimal
	LogisticsDestination decimal.Decimal
	Duty                 decimal.Decimal
	ConversionFee        decimal.Decimal
	CreditCost           decimal.Decimal

	TotalCostPerUnit    decimal.Decimal
	SellingPricePerUnit decimal.Decimal
}

// Calculate считает раскладку затрат и продажную цену по активному режиму.
// Функция чистая: одинаковый вход даёт бит-в-бит одинаковый результат.
func (c Constants) Calculate(in Input) (Breakdown, error) {
	switch c.Mode {
	case ModeWeightProportional:
		return c.weightProportional(in)
	default:
		return c.quantityFlat(in)
	}
}

// quantityFlat: пошлина начисляется на закупочную стоимость, логистика
// добавляется одной суммой после пошлины и делится поровну по количеству.
func (c Constants) quantityFlat(in Input) (Breakdown, error) {
	quantity := decimal.NewFromInt(in.Quantity)

	duty := in.CostPrice.Mul(in.DutyPercent).Div(hundred)
	logisticsPerUnit := in.LogisticsRub.Div(quantity)

	return c.total(Breakdown{
		PurchaseCost: in.CostPrice,
		// Без разбивки по плечам: весь фрахт числится на плече назначения.
		LogisticsOrigin:      decimal.Zero,
		LogisticsDestination: logisticsPerUnit,
		Duty:                 duty,
		ConversionFee:        decimal.Zero,
		CreditCost:           decimal.Zero,
	}), nil
}

// weightProportional: логистика конвертируется в валюту расчёта, делится на
// плечи КНР/РФ и распределяется на единицу пропорционально весу; сверху
// пошлина, комиссия за конвертацию и стоимость капитала на срок сделки.
func (c Constants) weightProportional(in Input) (Breakdown, error) {
	quantity := decimal.NewFromInt(in.Quantity)

	totalWeight := in.Weight.Mul(quantity)
	if totalWeight.IsZero() {
		return Breakdown{}, ErrZeroTotalWeight
	}

	logisticsSettlement := in.LogisticsRub.Div(c.ConversionRate)
	weightShare := in.Weight.Div(totalWeight)

	originPerUnit := logisticsSettlement.Mul(c.LogisticsOriginRatio).Mul(weightShare)
	destinationPerUnit := logisticsSettlement.Mul(c.LogisticsDestinationRatio).Mul(weightShare)

	duty := in.CostPrice.Add(originPerUnit).Mul(in.DutyPercent).Div(hundred)
	conversionFee := in.CostPrice.Mul(c.ConversionFeeRate)
	creditCost := in.CostPrice.Mul(c.CreditRate).Div(daysInYear).Mul(in.DealLengthDays)

	return c.total(Breakdown{
		PurchaseCost:         in.CostPrice,
		LogisticsOrigin:      originPerUnit,
		LogisticsDestination: destinationPerUnit,
		Duty:                 duty,
		ConversionFee:        conversionFee,
		CreditCost:           creditCost,
	}), nil
}

func (c Constants) total(b Breakdown) Breakdown {
	b.TotalCostPerUnit = b.PurchaseCost.
		Add(b.LogisticsOrigin).
		Add(b.LogisticsDestination).
		Add(b.Duty).
		Add(b.ConversionFee).
		Add(b.CreditCost)

	// Маржа считается от выручки: цена = затраты / (1 - маржа/100).
	b.SellingPricePerUnit = b.TotalCostPerUnit.Div(one.Sub(c.MarginPercent.Div(hundred)))

	return b
}
