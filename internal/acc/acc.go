// Package acc aggregates the voucher journal.
package acc

import (
	"github.com/shopspring/decimal"

	"erp/internal/models"
	"erp/internal/money"
)

// Totals is the debit/credit footer of the voucher list.
type Totals struct {
	Count         int             `json:"count"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Difference    decimal.Decimal `json:"difference"`
	Balanced      bool            `json:"balanced"`
	DebitDisplay  string          `json:"debitDisplay"`
	CreditDisplay string          `json:"creditDisplay"`
}

// Sum adds up debit and credit across vouchers.
func Sum(vouchers []models.Voucher) Totals {
	t := Totals{Count: len(vouchers), Debit: decimal.Zero, Credit: decimal.Zero}
	for _, v := range vouchers {
		t.Debit = t.Debit.Add(v.Debit)
		t.Credit = t.Credit.Add(v.Credit)
	}
	t.Difference = t.Debit.Sub(t.Credit)
	t.Balanced = t.Difference.IsZero()
	t.DebitDisplay = money.Won(t.Debit)
	t.CreditDisplay = money.Won(t.Credit)
	return t
}
