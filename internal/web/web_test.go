package web

import (
	"bytes"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"erp/internal/dashboard"
	"erp/internal/datatable"
	"erp/internal/menu"
	"erp/internal/models"
	"erp/internal/screens"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	require.NoError(t, err)
	return r
}

func layout(content any) Layout {
	tree := menu.Default()
	return Layout{
		Title:      "대시보드",
		Company:    "ERP 시스템",
		User:       models.User{Username: "admin", DisplayName: "관리자"},
		Menu:       tree.Render("/HRS/attendance/HRS0101", menu.NewExpansion(tree.Expanded...)),
		Breadcrumb: tree.Breadcrumb("/HRS/attendance/HRS0101"),
		Content:    content,
	}
}

func TestRenderLogin(t *testing.T) {
	r := newRenderer(t)
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, PageLogin, LoginView{Company: "ERP 시스템", UserID: "admin", Error: "아이디 또는 비밀번호가 올바르지 않습니다."}))
	out := buf.String()
	assert.Contains(t, out, "ERP 시스템 로그인")
	assert.Contains(t, out, `name="userId"`)
	assert.Contains(t, out, `value="admin"`)
	assert.Contains(t, out, "아이디 또는 비밀번호가 올바르지 않습니다.")
	assert.NotContains(t, out, "로그아웃")
}

func TestRenderDashboard(t *testing.T) {
	r := newRenderer(t)
	var buf bytes.Buffer
	d := dashboard.Dashboard{Date: "2023년 6월 1일 목요일", Cards: []dashboard.Card{
		{Title: "직원 현황", Value: "7명", Note: "전체 8명, 휴직 1명", Link: "/HRS/hr-info/HRS0401"},
	}}
	require.NoError(t, r.Render(&buf, PageDashboard, layout(d)))
	out := buf.String()
	assert.Contains(t, out, "환영합니다, 관리자님!")
	assert.Contains(t, out, "직원 현황")
	assert.Contains(t, out, "전체 8명, 휴직 1명")
	assert.Contains(t, out, `href="/HRS/hr-info/HRS0401"`)
	assert.Contains(t, out, "로그아웃")
	assert.Contains(t, out, `class="active"`)
	assert.Contains(t, out, "padding-left:44px")
}

func TestRenderScreen(t *testing.T) {
	r := newRenderer(t)
	view := ScreenView{
		Info: screens.Info{ID: "WMS0606", Title: "단위 관리", Module: "WMS", Path: "/WMS/master_data/WMS0606"},
		Result: screens.Result{
			Filters: []screens.Filter{{Name: "status", Label: "상태", Options: []string{"사용", "중지"}, Selected: "중지"}},
			Counts: []datatable.Counts{{Field: "status", Label: "상태", Total: 4, Buckets: []datatable.Bucket{
				{Label: "사용", Count: 3}, {Label: "중지", Count: 1},
			}}},
			Grid: screens.Grid{
				Columns: []screens.Column{{Name: "code", Label: "단위코드"}},
				IDs:     []string{"UNIT-004"},
				Cells:   [][]string{{"PALLET"}},
			},
			Total: 120, Page: 2, Limit: 50,
		},
		Query:      url.Values{"status": {"중지"}, "page": {"2"}},
		TotalPages: 3,
	}
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, PageScreen, layout(view)))
	out := buf.String()
	assert.Contains(t, out, "단위 관리")
	assert.Contains(t, out, "PALLET")
	assert.Contains(t, out, "사용 3, 중지 1")
	assert.Contains(t, out, "page=1")
	assert.Contains(t, out, "page=3")
	assert.Contains(t, out, "format=xlsx")
	assert.NotContains(t, out, `type="date"`)
}

func TestRenderNoResults(t *testing.T) {
	r := newRenderer(t)
	view := ScreenView{
		Info:   screens.Info{ID: "WMS0101", Title: "입고 계획", Path: "/WMS/inbound/WMS0101"},
		Result: screens.Result{HasDate: true, NoResults: true, Message: datatable.NoResultsMessage, Page: 1},
	}
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, PageScreen, layout(view)))
	assert.Contains(t, buf.String(), datatable.NoResultsMessage)
	assert.Contains(t, buf.String(), `type="date"`)
	assert.NotContains(t, buf.String(), "<table>")
}

func TestRenderHubAndNotFound(t *testing.T) {
	r := newRenderer(t)
	hub, err := menu.Default().Module("HRS")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, PageHub, layout(hub)))
	assert.Contains(t, buf.String(), hub.Title)
	assert.Contains(t, buf.String(), "/HRS/attendance/HRS0101")

	buf.Reset()
	require.NoError(t, r.Render(&buf, PageNotFound, layout("/nowhere")))
	assert.Contains(t, buf.String(), "페이지를 찾을 수 없습니다")
}

func TestRenderUnknownPage(t *testing.T) {
	r := newRenderer(t)
	var buf bytes.Buffer
	assert.Error(t, r.Render(&buf, "missing", nil))
	assert.Zero(t, buf.Len())
}
