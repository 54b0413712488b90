package quote

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"kp_generator/internal/documents"
	"kp_generator/internal/domain"
	"kp_generator/internal/domain/entity"
	"kp_generator/internal/domain/service/pricing"
	"kp_generator/internal/domain/value"
	"kp_generator/pkg/errcodes"
)

// Окно оплаты фиксированное: 30 дней после переменного окна поставки.
const paymentWindowDays = 30

//nolint:gochecknoglobals
var paymentWindow = decimal.NewFromInt(paymentWindowDays)

var errDealTooShort = domain.NewError(
	errcodes.ValidationError,
	"Общая длина сделки не может быть меньше 30 дней.",
)

type SpreadsheetFiller interface {
	Fill(ctx context.Context, fields documents.Fields) ([]byte, error)
}

type DocumentFiller interface {
	Fill(ctx context.Context, fields documents.Fields) ([]byte, error)
}

// Service собирает коммерческое предложение: расчёт цены, заполнение обоих
// шаблонов и упаковка в архив. Состояния между запросами нет.
type Service struct {
	constants pricing.Constants
	excel     SpreadsheetFiller
	word      DocumentFiller
	now       func() time.Time
}

func NewService(
	constants pricing.Constants,
	excel SpreadsheetFiller,
	word DocumentFiller,
) Service {
	return Service{
		constants: constants,
		excel:     excel,
		word:      word,
		now:       time.Now,
	}
}

// WithClock подменяет источник времени; нужен тестам, чтобы штамп в имени
// файлов был предсказуемым.
func (s Service) WithClock(now func() time.Time) Service {
	s.now = now
	return s
}

// Constants возвращает активную конфигурацию расчёта.
func (s Service) Constants() pricing.Constants {
	return s.constants
}

func (s Service) Generate(
	ctx context.Context,
	in entity.QuotationInput,
) (entity.OutputArtifactSet, error) {
	supplyDays := in.DealLengthDays.Sub(paymentWindow)
	if supplyDays.IsNegative() {
		return entity.OutputArtifactSet{}, errDealTooShort
	}

	breakdown, err := s.constants.Calculate(pricing.Input{
		Quantity:       in.Quantity,
		CostPrice:      in.CostPrice,
		Weight:         in.Weight,
		LogisticsRub:   in.LogisticsRub,
		DutyPercent:    in.DutyPercent,
		DealLengthDays: in.DealLengthDays,
	})
	if err != nil {
		return entity.OutputArtifactSet{}, fmt.Errorf("constants.Calculate: %w", err)
	}

	at := s.now()

	fields := documents.Fields{
		Company:         in.Company,
		Product:         in.Product,
		TenderNumber:    in.TenderNumber,
		DrawingNumber:   in.DrawingNumber,
		Material:        in.Material,
		DeliveryAddress: in.DeliveryAddress,

		Quantity:       in.Quantity,
		CostPrice:      in.CostPrice,
		Weight:         in.Weight,
		LogisticsRub:   in.LogisticsRub,
		DutyPercent:    in.DutyPercent,
		DealLengthDays: in.DealLengthDays,
		SupplyDays:     supplyDays,
		PaymentDays:    paymentWindowDays,
		FinalPrice:     breakdown.SellingPricePerUnit,

		Date: at,
	}

	excelBytes, err := s.excel.Fill(ctx, fields)
	if err != nil {
		return entity.OutputArtifactSet{}, fmt.Errorf("excel.Fill: %w", err)
	}

	wordBytes, err := s.word.Fill(ctx, fields)
	if err != nil {
		return entity.OutputArtifactSet{}, fmt.Errorf("word.Fill: %w", err)
	}

	prefix := value.ArtifactPrefix(in.Company, at)

	archive, err := documents.BuildArchive(prefix, excelBytes, wordBytes)
	if err != nil {
		return entity.OutputArtifactSet{}, fmt.Errorf("documents.BuildArchive: %w", err)
	}

	return entity.OutputArtifactSet{
		FilePrefix: prefix,
		Excel:      excelBytes,
		Word:       wordBytes,
		Archive:    archive,
	}, nil
}
