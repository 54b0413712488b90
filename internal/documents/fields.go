package documents

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fields — канонический набор значений одного предложения. Оба заполнителя
// работают от него: Excel раскладывает значения по ячейкам, Word подставляет
// их в плейсхолдеры.
type Fields struct {
	Company         string
	Product         string
	TenderNumber    string
	DrawingNumber   string
	Material        string
	DeliveryAddress string

	Quantity       int64
	CostPrice      decimal.Decimal
	Weight         decimal.Decimal
	LogisticsRub   decimal.Decimal
	DutyPercent    decimal.Decimal
	DealLengthDays decimal.Decimal
	SupplyDays     decimal.Decimal
	PaymentDays    int64
	FinalPrice     decimal.Decimal

	Date time.Time
}

// ProductWithDrawing — наименование товара с номером чертежа, как оно
// пишется в спецификации: "Фланец ч.КД-124".
func (f Fields) ProductWithDrawing() string {
	if f.DrawingNumber == "" {
		return f.Product
	}
	return f.Product + " ч." + f.DrawingNumber
}

// DateString — дата формирования в русском формате: 28.08.2026г.
func (f Fields) DateString() string {
	return f.Date.Format("02.01.2006") + "г."
}
