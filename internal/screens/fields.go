package screens

import (
	"strconv"

	"github.com/shopspring/decimal"

	"erp/internal/datatable"
	"erp/internal/money"
)

func field[T any](name, label string, value func(T) string, options ...string) datatable.Field[T] {
	return datatable.Field[T]{Name: name, Label: label, Value: value, Options: options}
}

func itoa(n int) string { return strconv.Itoa(n) }

func ftoa(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func amount(d decimal.Decimal) string { return money.Format(d) }

func optAmount(d *decimal.Decimal) string {
	if d == nil {
		return "-"
	}
	return money.Format(*d)
}

func yesNo(b bool) string {
	if b {
		return "예"
	}
	return "아니오"
}
