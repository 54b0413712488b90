package server

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

//nolint:gochecknoglobals
var (
	requiredFields = []string{"company", "product", "quantity", "cost_price", "weight", "logistics"}
	numericFields  = []string{"quantity", "cost_price", "weight", "logistics", "duty_percent", "deal_length_days"}

	hundred       = decimal.NewFromInt(100)
	minDealLength = decimal.NewFromInt(30)
)

// ValidateForm собирает все нарушения разом, а не останавливается на первом.
// Порядок сообщений стабилен: сначала пропущенные поля, затем числовые.
// Пустой список означает валидную форму.
func ValidateForm(form url.Values, enforceMinDealLength bool) []string {
	var messages []string

	missing := lo.Filter(requiredFields, func(field string, _ int) bool {
		return strings.TrimSpace(form.Get(field)) == ""
	})
	for _, field := range missing {
		messages = append(messages, fmt.Sprintf("Поле %q является обязательным.", field))
	}

	for _, field := range numericFields {
		raw := strings.TrimSpace(form.Get(field))
		if raw == "" {
			continue
		}

		value, err := decimal.NewFromString(raw)
		if err != nil {
			messages = append(messages, fmt.Sprintf("Поле %q должно быть числом.", field))
			continue
		}

		if value.IsNegative() {
			messages = append(messages, fmt.Sprintf("Поле %q должно быть неотрицательным числом.", field))
		}

		if field == "duty_percent" && value.GreaterThan(hundred) {
			messages = append(messages, fmt.Sprintf("Поле %q не может превышать 100%%.", field))
		}

		if field == "quantity" && !value.IsInteger() {
			messages = append(messages, fmt.Sprintf("Поле %q должно быть целым числом.", field))
		}

		if field == "quantity" && value.IsZero() {
			messages = append(messages, fmt.Sprintf("Поле %q не может быть нулевым.", field))
		}

		if enforceMinDealLength && field == "deal_length_days" && value.LessThan(minDealLength) {
			messages = append(messages, fmt.Sprintf("Поле %q не может быть меньше 30 дней.", field))
		}
	}

	return messages
}
