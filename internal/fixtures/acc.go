package fixtures

import "erp/internal/models"

// Vouchers returns the June 2023 voucher journal.
func Vouchers() []models.Voucher {
	v := func(id, date, typ, account, desc string, debit, credit int64, dept, writer, status, approver string) models.Voucher {
		return models.Voucher{
			ID: id, VoucherNo: "V" + date[:4] + date[5:7] + date[8:10] + "-" + id[len(id)-3:],
			Date: date, Type: typ, Account: account, Description: desc,
			Debit: won(debit), Credit: won(credit), Department: dept, Writer: writer,
			Status: status, Approver: approver,
		}
	}
	return []models.Voucher{
		v("VCH-001", "2023-06-01", "입금", "보통예금", "제품 판매 대금 입금", 5500000, 0, "영업팀", "박민수", "승인", "송미란"),
		v("VCH-002", "2023-06-02", "입금", "매출", "제품 판매 대금 입금", 0, 5500000, "영업팀", "박민수", "승인", "송미란"),
		v("VCH-003", "2023-06-05", "출금", "소모품비", "사무용품 구입", 320000, 0, "인사팀", "이영희", "승인대기", ""),
		v("VCH-004", "2023-06-05", "출금", "보통예금", "사무용품 대금 지급", 0, 320000, "인사팀", "이영희", "승인대기", ""),
		v("VCH-005", "2023-06-12", "대체", "미지급금", "6월 급여 미지급금 대체", 1200000, 1200000, "회계팀", "최지수", "작성", ""),
		v("VCH-006", "2023-06-20", "출금", "여비교통비", "출장 교통비 정산", 180000, 0, "개발팀", "한승우", "반려", "송미란"),
	}
}
