package pages

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"erp/internal/auth"
	"erp/internal/datatable"
	"erp/internal/menu"
	"erp/internal/testutil"
	"erp/internal/web"
)

func newTestHandler(t *testing.T) (*Handler, string) {
	t.Helper()
	st := testutil.SetupStore(t)
	renderer, err := web.New()
	require.NoError(t, err)
	h := &Handler{
		Auth:     auth.NewService(st.DB),
		Menu:     menu.NewHolder(menu.Default()),
		Registry: testutil.SeededRegistry(t, st),
		Renderer: renderer,
		Company:  "ERP 시스템",
		Clock:    testutil.Clock,
	}
	return h, testutil.LoginAdmin(t, st)
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestLoginPage(t *testing.T) {
	h, token := newTestHandler(t)

	w := httptest.NewRecorder()
	h.LoginPage(w, httptest.NewRequest("GET", "/login", nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	assert.Contains(t, w.Body.String(), "ERP 시스템 로그인")

	w = httptest.NewRecorder()
	h.LoginPage(w, testutil.AuthedRequest("GET", "/login", nil, token))
	testutil.AssertStatus(t, w, http.StatusSeeOther)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestLoginSubmit(t *testing.T) {
	h, _ := newTestHandler(t)

	tests := []struct {
		name     string
		user     string
		password string
		status   int
		wantBody string
	}{
		{"valid", "admin", "admin", http.StatusSeeOther, ""},
		{"wrong password", "admin", "wrong", http.StatusOK, "아이디 또는 비밀번호가 올바르지 않습니다."},
		{"blank", "", "", http.StatusOK, "아이디 또는 비밀번호가 올바르지 않습니다."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.LoginSubmit(w, postForm("/login", url.Values{"userId": {tt.user}, "password": {tt.password}}))
			testutil.AssertStatus(t, w, tt.status)
			if tt.status == http.StatusSeeOther {
				assert.Equal(t, "/", w.Header().Get("Location"))
				require.NotEmpty(t, w.Result().Cookies())
				assert.Equal(t, auth.CookieName, w.Result().Cookies()[0].Name)
				return
			}
			assert.Contains(t, w.Body.String(), tt.wantBody)
			assert.Empty(t, w.Result().Cookies())
		})
	}
}

func TestLogoutRedirectsToLogin(t *testing.T) {
	h, token := newTestHandler(t)

	w := httptest.NewRecorder()
	h.Logout(w, testutil.AuthedRequest("POST", "/logout", nil, token))
	testutil.AssertStatus(t, w, http.StatusSeeOther)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	_, err := h.Auth.Lookup(t.Context(), token)
	assert.ErrorIs(t, err, auth.ErrNoSession)
}

func TestDashboardPage(t *testing.T) {
	h, token := newTestHandler(t)
	w := httptest.NewRecorder()
	h.Dashboard(w, testutil.AuthedRequest("GET", "/", nil, token))
	testutil.AssertStatus(t, w, http.StatusOK)
	body := w.Body.String()
	assert.Contains(t, body, "환영합니다, 관리자님!")
	assert.Contains(t, body, "2023년 6월 1일 목요일")
	assert.Contains(t, body, "28,820,000원")
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
}

func TestModulePage(t *testing.T) {
	h, token := newTestHandler(t)

	w := httptest.NewRecorder()
	h.Module(w, testutil.AuthedRequest("GET", "/WMS", nil, token), "WMS")
	testutil.AssertStatus(t, w, http.StatusOK)
	assert.Contains(t, w.Body.String(), "/WMS/inbound/WMS0101")

	w = httptest.NewRecorder()
	h.Module(w, testutil.AuthedRequest("GET", "/XYZ", nil, token), "XYZ")
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestScreenPage(t *testing.T) {
	h, token := newTestHandler(t)

	tests := []struct {
		name   string
		id     string
		query  string
		status int
		want   []string
	}{
		{"plain", "WMS0606", "", http.StatusOK, []string{"PALLET", "format=csv"}},
		{"filtered", "WMS0606", "?search=PALLET", http.StatusOK, []string{"PALLET"}},
		{"no results", "WMS0101", "?search=zzzz-none", http.StatusOK, []string{datatable.NoResultsMessage}},
		{"bad range", "WMS0101", "?from=2023-06-10&to=2023-06-01", http.StatusOK, []string{`class="error"`}},
		{"unknown", "WMS9999", "", http.StatusNotFound, []string{"페이지를 찾을 수 없습니다"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.Screen(w, testutil.AuthedRequest("GET", "/WMS/x/"+tt.id+tt.query, nil, token), tt.id)
			testutil.AssertStatus(t, w, tt.status)
			for _, s := range tt.want {
				assert.Contains(t, w.Body.String(), s)
			}
		})
	}
}

func TestScreenDayHeader(t *testing.T) {
	h, token := newTestHandler(t)

	tests := []struct {
		name  string
		id    string
		query string
		want  []string
	}{
		{"defaults to today", "HRS0101", "", []string{"2023년 6월 1일 목요일", "이전 날짜", "다음 날짜", "오늘", "step=prev", `name="date" value="2023-06-01"`}},
		{"prev", "HRS0101", "?date=2023-06-01&step=prev", []string{"2023년 5월 31일 수요일", `name="date" value="2023-05-31"`}},
		{"next crosses month", "HRS0102", "?date=2023-06-30&step=next", []string{"2023년 7월 1일 토요일"}},
		{"today resets", "HRS0101", "?date=2020-01-15&step=today", []string{"2023년 6월 1일 목요일"}},
		{"unknown step", "HRS0101", "?step=sideways", []string{"알 수 없는 날짜 이동입니다.", "2023년 6월 1일 목요일"}},
		{"bad date", "HRS0102", "?date=06/01/2023", []string{"날짜 형식이 올바르지 않습니다.", "2023년 6월 1일 목요일"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.Screen(w, testutil.AuthedRequest("GET", "/HRS/attendance/"+tt.id+tt.query, nil, token), tt.id)
			testutil.AssertStatus(t, w, http.StatusOK)
			for _, s := range tt.want {
				assert.Contains(t, w.Body.String(), s)
			}
		})
	}
}

func TestScreenDayHeaderOnlyOnDayScreens(t *testing.T) {
	h, token := newTestHandler(t)
	for _, id := range []string{"WMS0606", "HRS0201"} {
		w := httptest.NewRecorder()
		h.Screen(w, testutil.AuthedRequest("GET", "/x/"+id, nil, token), id)
		testutil.AssertStatus(t, w, http.StatusOK)
		assert.NotContains(t, w.Body.String(), "이전 날짜", id)
	}
}

func TestScreenLeaveRange(t *testing.T) {
	h, token := newTestHandler(t)

	tests := []struct {
		name    string
		query   string
		want    string
		without string
	}{
		{"picker only", "", `name="start"`, "leave-days"},
		{"single day", "?start=2023-06-20&end=2023-06-20", "2023-06-20 ~ 2023-06-20 · 1일", "종료일이"},
		{"across months", "?start=2023-06-29&end=2023-07-02", "2023-06-29 ~ 2023-07-02 · 4일", "종료일이"},
		{"reversed", "?start=2023-06-22&end=2023-06-20", "종료일이 시작일보다 빠릅니다.", "leave-days"},
		{"missing end", "?start=2023-06-22", "휴가 기간을 올바르게 입력하세요.", "leave-days"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.Screen(w, testutil.AuthedRequest("GET", "/HRS/leave/HRS0201"+tt.query, nil, token), "HRS0201")
			testutil.AssertStatus(t, w, http.StatusOK)
			assert.Contains(t, w.Body.String(), tt.want)
			assert.NotContains(t, w.Body.String(), tt.without)
		})
	}
}
