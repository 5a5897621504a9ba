package models

import "github.com/shopspring/decimal"

// Voucher is an accounting slip listed on the voucher inquiry screen
// (ACC0103).
type Voucher struct {
	ID          string          `json:"id"`
	VoucherNo   string          `json:"voucherNo"`
	Date        string          `json:"date"`
	Type        string          `json:"type"`
	Account     string          `json:"account"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Department  string          `json:"department"`
	Writer      string          `json:"writer"`
	Status      string          `json:"status"`
	Approver    string          `json:"approver,omitempty"`
}
