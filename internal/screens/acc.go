package screens

import (
	"context"
	"time"

	"erp/internal/acc"
	"erp/internal/datatable"
	"erp/internal/fixtures"
	"erp/internal/models"
	"erp/internal/store"
	"erp/internal/validation"
)

// ACC groups the accounting screens.
type ACC struct {
	Vouchers *Table[models.Voucher]
}

func (a *ACC) screens() []Screen { return []Screen{a.Vouchers} }

func newACC(st *store.Store) *ACC {
	type v = models.Voucher
	vType := field("type", "전표 유형", func(r v) string { return r.Type }, validation.VoucherTypes...)
	vStatus := field("status", "상태", func(r v) string { return r.Status }, validation.VoucherStatuses...)
	vDept := field("department", "부서", func(r v) string { return r.Department })
	vDate := field("date", "전표일자", func(r v) string { return r.Date })
	return &ACC{
		Vouchers: New(st, Def[v]{
			ID:    "ACC0103",
			Title: "전표 조회",
			Spec: datatable.Spec[v]{
				Search: []datatable.Field[v]{
					field("voucherNo", "전표번호", func(r v) string { return r.VoucherNo }),
					field("account", "계정과목", func(r v) string { return r.Account }),
					field("description", "적요", func(r v) string { return r.Description }),
					field("writer", "작성자", func(r v) string { return r.Writer }),
				},
				Filters: []datatable.Field[v]{vType, vStatus, vDept},
				Date:    &vDate,
				Counts:  []datatable.Field[v]{vStatus, vType},
			},
			Columns: []datatable.Field[v]{
				field("voucherNo", "전표번호", func(r v) string { return r.VoucherNo }),
				vDate,
				vType,
				field("account", "계정과목", func(r v) string { return r.Account }),
				field("description", "적요", func(r v) string { return r.Description }),
				field("debit", "차변", func(r v) string { return amount(r.Debit) }),
				field("credit", "대변", func(r v) string { return amount(r.Credit) }),
				vDept,
				field("writer", "작성자", func(r v) string { return r.Writer }),
				vStatus,
			},
			Key:      func(r v) string { return r.ID },
			SetKey:   func(r *v, id string) { r.ID = id },
			IDPrefix: "VCH",
			Validate: func(r v, ve *validation.ValidationErrors) {
				validation.RequireField(ve, "voucherNo", r.VoucherNo)
				validation.RequireField(ve, "date", r.Date)
				validation.ValidateDate(ve, "date", r.Date)
				validation.ValidateEnum(ve, "type", r.Type, validation.VoucherTypes)
				validation.ValidateEnum(ve, "status", r.Status, validation.VoucherStatuses)
				validation.RequireField(ve, "account", r.Account)
				if r.Debit.IsNegative() {
					ve.Add("debit", "must be a non-negative number")
				}
				if r.Credit.IsNegative() {
					ve.Add("credit", "must be a non-negative number")
				}
				if r.Debit.IsZero() && r.Credit.IsZero() {
					ve.Add("debit", "debit or credit is required")
				}
			},
			Seed: func(time.Time) []v { return fixtures.Vouchers() },
			Cards: func(_ context.Context, _, filtered []v) ([]Card, error) {
				t := acc.Sum(filtered)
				return []Card{
					{Label: "차변 합계", Value: t.DebitDisplay},
					{Label: "대변 합계", Value: t.CreditDisplay},
				}, nil
			},
		}),
	}
}
