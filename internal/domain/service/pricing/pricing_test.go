package pricing_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"kp_generator/internal/domain"
	"kp_generator/internal/domain/service/pricing"
	"kp_generator/pkg/errcodes"
	"kp_generator/pkg/tests"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Контрольный пример бюджета: 1 шт по 35000, пошлина 10%, логистика
// 150000 руб при курсе 12, вес 200, сделка 170 дней, маржа 30%.
func TestCalculateWeightProportionalWorkedExample(t *testing.T) {
	rq := require.New(t)

	constants := pricing.WeightProportional()

	breakdown, err := constants.Calculate(pricing.Input{
		Quantity:       1,
		CostPrice:      dec("35000"),
		Weight:         dec("200"),
		LogisticsRub:   dec("150000"),
		DutyPercent:    dec("10"),
		DealLengthDays: dec("170"),
	})
	rq.NoError(err)

	rq.Equal("35000.00", breakdown.PurchaseCost.StringFixed(2))
	rq.Equal("3750.00", breakdown.LogisticsOrigin.StringFixed(2))
	rq.Equal("8750.00", breakdown.LogisticsDestination.StringFixed(2))
	rq.Equal("3875.00", breakdown.Duty.StringFixed(2))
	rq.Equal("1120.00", breakdown.ConversionFee.StringFixed(2))
	rq.Equal("2608.22", breakdown.CreditCost.StringFixed(2))
	rq.Equal("55103.22", breakdown.TotalCostPerUnit.StringFixed(2))
	rq.Equal("78718.88", breakdown.SellingPricePerUnit.StringFixed(2))

	// Цена обязана покрывать хотя бы закупку с пошлиной.
	purchasePlusDuty := dec("35000").Mul(dec("1.10"))
	rq.True(breakdown.SellingPricePerUnit.GreaterThan(purchasePlusDuty))
}

// При одинаковом весе всех единиц весовое распределение вырождается в
// деление плеча на количество.
func TestCalculateWeightProportionalUniformWeight(t *testing.T) {
	rq := require.New(t)

	constants := pricing.WeightProportional()

	breakdown, err := constants.Calculate(pricing.Input{
		Quantity:       4,
		CostPrice:      dec("1000"),
		Weight:         dec("5"),
		LogisticsRub:   dec("12000"),
		DutyPercent:    dec("0"),
		DealLengthDays: dec("170"),
	})
	rq.NoError(err)

	// 12000 руб / 12 = 1000 валюты расчёта; 30% / 4 шт = 75, 70% / 4 = 175.
	rq.Equal("75.00", breakdown.LogisticsOrigin.StringFixed(2))
	rq.Equal("175.00", breakdown.LogisticsDestination.StringFixed(2))
}

func TestCalculateQuantityFlatWorkedExample(t *testing.T) {
	rq := require.New(t)

	constants := pricing.QuantityFlat()

	// 10×100 + 10×100×0.05 + 200 = 1250; на единицу 125; маржа 20%.
	breakdown, err := constants.Calculate(pricing.Input{
		Quantity:     10,
		CostPrice:    dec("100"),
		LogisticsRub: dec("200"),
		DutyPercent:  dec("5"),
	})
	rq.NoError(err)

	rq.Equal("100.00", breakdown.PurchaseCost.StringFixed(2))
	rq.Equal("5.00", breakdown.Duty.StringFixed(2))
	rq.Equal("20.00", breakdown.LogisticsDestination.StringFixed(2))
	rq.Equal("125.00", breakdown.TotalCostPerUnit.StringFixed(2))
	rq.Equal("156.25", breakdown.SellingPricePerUnit.StringFixed(2))

	// Кредитные затраты и комиссия в упрощённом режиме не начисляются.
	rq.True(breakdown.CreditCost.IsZero())
	rq.True(breakdown.ConversionFee.IsZero())
}

func TestCalculateQuantityFlatWithoutDuty(t *testing.T) {
	rq := require.New(t)

	constants := pricing.QuantityFlat()

	breakdown, err := constants.Calculate(pricing.Input{
		Quantity:     10,
		CostPrice:    dec("100"),
		LogisticsRub: dec("200"),
		DutyPercent:  dec("0"),
	})
	rq.NoError(err)

	rq.Equal("120.00", breakdown.TotalCostPerUnit.StringFixed(2))
	rq.Equal("150.00", breakdown.SellingPricePerUnit.StringFixed(2))
}

func TestCalculateZeroWeightIsDomainError(t *testing.T) {
	rq := require.New(t)

	constants := pricing.WeightProportional()

	_, err := constants.Calculate(pricing.Input{
		Quantity:       3,
		CostPrice:      dec("100"),
		Weight:         dec("0"),
		LogisticsRub:   dec("500"),
		DutyPercent:    dec("5"),
		DealLengthDays: dec("60"),
	})

	rq.True(errors.Is(err, pricing.ErrZeroTotalWeight))

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.DomainError, code)
}

// Инварианты на случайных входах: компоненты неотрицательны, итог — точная
// сумма компонент, цена строго больше затрат, повторный вызов даёт тот же
// результат.
func TestCalculateInvariants(t *testing.T) {
	rq := require.New(t)

	random := tests.NewRandomizer()

	for _, constants := range []pricing.Constants{
		pricing.QuantityFlat(),
		pricing.WeightProportional(),
	} {
		for range 100 {
			in := pricing.Input{
				Quantity:       1 + int64(random.Float64()*100),
				CostPrice:      decimal.NewFromFloat(random.Float64() * 100000),
				Weight:         decimal.NewFromFloat(0.1 + random.Float64()*500),
				LogisticsRub:   decimal.NewFromFloat(random.Float64() * 1000000),
				DutyPercent:    decimal.NewFromFloat(random.Float64() * 100),
				DealLengthDays: decimal.NewFromFloat(30 + random.Float64()*300),
			}

			breakdown, err := constants.Calculate(in)
			rq.NoError(err)

			components := []decimal.Decimal{
				breakdown.PurchaseCost,
				breakdown.LogisticsOrigin,
				breakdown.LogisticsDestination,
				breakdown.Duty,
				breakdown.ConversionFee,
				breakdown.CreditCost,
			}

			sum := decimal.Zero
			for _, component := range components {
				rq.False(component.IsNegative(), "component %s in %+v", component, in)
				sum = sum.Add(component)
			}

			rq.True(breakdown.TotalCostPerUnit.Equal(sum), "total != sum of components for %+v", in)
			rq.True(
				breakdown.SellingPricePerUnit.GreaterThan(breakdown.TotalCostPerUnit),
				"price must exceed cost for %+v", in,
			)

			again, err := constants.Calculate(in)
			rq.NoError(err)
			rq.Equal(breakdown, again)
		}
	}
}

func TestConstantsValidate(t *testing.T) {
	rq := require.New(t)

	rq.NoError(pricing.QuantityFlat().Validate())
	rq.NoError(pricing.WeightProportional().Validate())

	tooFat := pricing.QuantityFlat()
	tooFat.MarginPercent = decimal.NewFromInt(100)
	rq.Error(tooFat.Validate())

	badRatios := pricing.WeightProportional()
	badRatios.LogisticsOriginRatio = dec("0.4")
	rq.Error(badRatios.Validate())

	badRate := pricing.WeightProportional()
	badRate.ConversionRate = decimal.Zero
	rq.Error(badRate.Validate())
}

func TestByMode(t *testing.T) {
	rq := require.New(t)

	constants, err := pricing.ByMode(pricing.ModeWeightProportional)
	rq.NoError(err)
	rq.Equal(pricing.ModeWeightProportional, constants.Mode)

	constants, err = pricing.ByMode(pricing.ModeQuantityFlat)
	rq.NoError(err)
	rq.Equal(pricing.ModeQuantityFlat, constants.Mode)

	_, err = pricing.ByMode("vibes_based")
	rq.Error(err)
}
