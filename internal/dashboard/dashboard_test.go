package dashboard_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"erp/internal/dashboard"
	"erp/internal/menu"
	"erp/internal/screens"
	"erp/internal/store"
)

func TestBuildFromFixtures(t *testing.T) {
	ctx := context.Background()
	st, err := store.Open(ctx, store.MemoryDSN)
	require.NoError(t, err)
	defer st.Close()

	reg := screens.NewRegistry(st, menu.Default())
	require.NoError(t, reg.Seed(ctx, time.Date(2023, 6, 1, 9, 0, 0, 0, time.UTC)))

	d, err := dashboard.Build(ctx, reg, "2023-06-01")
	require.NoError(t, err)

	type figure struct{ Value, Note string }
	got := make([]figure, len(d.Cards))
	for i, c := range d.Cards {
		got[i] = figure{c.Value, c.Note}
	}
	want := []figure{
		{"7명", "전체 8명, 휴직 1명"},
		{"6명 / 8명", "휴가 1명, 결근 1명"},
		{"5건", "연차 신청 3건, 전표 2건"},
		{"53일", "전체 연차의 42% 사용"},
		{"28,820,000원", "확정 4건, 임시저장 2건"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("cards mismatch (-want +got):\n%s", diff)
	}

	// another day has no attendance records
	d, err = dashboard.Build(ctx, reg, "2023-06-02")
	require.NoError(t, err)
	require.Equal(t, "0명 / 0명", d.Cards[1].Value)
}
