package entity

import (
	"github.com/shopspring/decimal"
)

// QuotationInput — проверенные данные одной заявки на коммерческое
// предложение. Создаётся один раз из формы и дальше не меняется.
type QuotationInput struct {
	Company string
	Product string

	Quantity       int64
	CostPrice      decimal.Decimal // закупочная цена за единицу, валюта расчёта
	Weight         decimal.Decimal // вес единицы товара
	LogisticsRub   decimal.Decimal // логистика всей поставки, рубли
	DutyPercent    decimal.Decimal // пошлина, проценты [0,100]
	DealLengthDays decimal.Decimal // общая длина сделки в днях

	// Необязательные поля.
	TenderNumber    string
	DrawingNumber   string
	Material        string
	DeliveryAddress string
}

// OutputArtifactSet — результат одной успешной генерации: оба документа и
// архив с ними. Живёт только в памяти до отправки ответа.
type OutputArtifactSet struct {
	FilePrefix string
	Excel      []byte
	Word       []byte
	Archive    []byte
}
