package screens_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"erp/internal/datatable"
	"erp/internal/menu"
	"erp/internal/models"
	"erp/internal/screens"
	"erp/internal/store"
	"erp/internal/validation"
)

var today = time.Date(2023, 6, 1, 9, 0, 0, 0, time.UTC)

func seeded(t *testing.T) *screens.Registry {
	t.Helper()
	ctx := context.Background()
	st, err := store.Open(ctx, store.MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	reg := screens.NewRegistry(st, menu.Default())
	require.NoError(t, reg.Seed(ctx, today))
	return reg
}

func query(page, limit int) datatable.Query {
	return datatable.Query{Page: page, Limit: limit}
}

func TestRegistryCoversMenu(t *testing.T) {
	reg := seeded(t)

	all := reg.All()
	assert.Len(t, all, 37)
	for _, s := range all {
		info := s.Info()
		assert.NotEmpty(t, info.Path, "%s has no menu entry", info.ID)
		assert.Equal(t, info.ID[:3], info.Module)
	}

	s, ok := reg.Get("WMS0606")
	require.True(t, ok)
	assert.Equal(t, "단위", s.Info().Title)

	_, ok = reg.Get("XXX0000")
	assert.False(t, ok)
}

func TestSeedFillsEveryScreen(t *testing.T) {
	reg := seeded(t)
	ctx := context.Background()
	for _, s := range reg.All() {
		n, err := s.Len(ctx)
		require.NoError(t, err)
		assert.Positive(t, n, s.Info().ID)
	}
}

func TestListFilterAndCounts(t *testing.T) {
	reg := seeded(t)
	ctx := context.Background()
	s, _ := reg.Get("WMS0101")

	res, err := s.List(ctx, datatable.Query{Filters: map[string]string{"status": "입고완료"}, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.True(t, res.HasDate)
	assert.False(t, res.NoResults)
	require.Len(t, res.Counts, 1)
	assert.Equal(t, 3, res.Counts[0].Total, "counts cover the whole collection")
	require.Len(t, res.Filters, 1)
	assert.Equal(t, "입고완료", res.Filters[0].Selected)

	res, err = s.List(ctx, datatable.Query{Search: "없는품목", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.True(t, res.NoResults)
	assert.Equal(t, datatable.NoResultsMessage, res.Message)
	assert.Empty(t, res.Grid.Cells)
}

func TestCreateGeneratesID(t *testing.T) {
	reg := seeded(t)
	ctx := context.Background()
	s, _ := reg.Get("WMS0101")

	body := `{"productCode":"P009","productName":"모니터","category":"전자제품","supplier":"삼성전자","quantity":5,"unit":"EA","expectedDate":"2024-04-01","status":"예정"}`
	id, row, err := s.Create(ctx, []byte(body))
	require.NoError(t, err)
	assert.Equal(t, "PLN-004", id)
	assert.Equal(t, "PLN-004", row.(models.InboundPlan).ID)

	_, _, err = s.Create(ctx, []byte(`{"id":"PLN-004","productCode":"P009","productName":"모니터","supplier":"삼성전자","quantity":5,"expectedDate":"2024-04-01","status":"예정"}`))
	assert.ErrorIs(t, err, store.ErrDuplicate)
}

func TestCreateNumericIDs(t *testing.T) {
	reg := seeded(t)
	s, _ := reg.Get("HRS0203")
	id, _, err := s.Create(context.Background(), []byte(`{"employeeId":"EMP009","name":"신입","department":"개발팀","baseAllocation":15,"usedDays":2}`))
	require.NoError(t, err)
	assert.Equal(t, "9", id)

	row, err := reg.HR.Allocations.Find(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 13.0, row.RemainingDays)
}

func TestCreateRejectsInvalidRows(t *testing.T) {
	reg := seeded(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		screen string
		body   string
		field  string
	}{
		{"missing product", "WMS0101", `{"supplier":"A","quantity":1,"expectedDate":"2024-04-01"}`, "productCode"},
		{"bad status", "WMS0201", `{"productCode":"P1","productName":"n","customer":"c","quantity":1,"outboundDate":"2024-04-01","status":"보류"}`, "status"},
		{"same warehouse", "WMS0402", `{"productCode":"P1","productName":"n","fromWarehouse":"WH-01","toWarehouse":"WH-01","quantity":1}`, "toWarehouse"},
		{"base unit rate", "WMS0606", `{"code":"KG","name":"킬로그램","baseUnit":"KG","conversionRate":2}`, "conversionRate"},
		{"used over capacity", "WMS0603", `{"code":"WH-09","name":"임시","capacity":10,"usedCapacity":11}`, "usedCapacity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := reg.Get(tt.screen)
			require.True(t, ok)
			_, _, err := s.Create(ctx, []byte(tt.body))
			var ve *validation.ValidationErrors
			require.ErrorAs(t, err, &ve)
			fields := make([]string, len(ve.Errors))
			for i, e := range ve.Errors {
				fields[i] = e.Field
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestCreateRejectsUnknownFields(t *testing.T) {
	reg := seeded(t)
	s, _ := reg.Get("WMS0606")
	_, _, err := s.Create(context.Background(), []byte(`{"code":"KG","bogus":true}`))
	assert.ErrorIs(t, err, screens.ErrInvalidBody)
}

func TestUpdateKeepsID(t *testing.T) {
	reg := seeded(t)
	ctx := context.Background()
	s, _ := reg.Get("WMS0303")

	body := `{"productCode":"PRD-001","productName":"스마트폰","location":"A-01-01","systemQuantity":100,"actualQuantity":90,"difference":999,"status":"실사완료","countDate":"2024-03-20"}`
	row, err := s.Update(ctx, "CNT-001", []byte(body))
	require.NoError(t, err)
	count := row.(models.StockCount)
	assert.Equal(t, "CNT-001", count.ID)
	assert.Equal(t, -10, count.Difference, "difference is recomputed")

	_, err = s.Update(ctx, "CNT-001", []byte(`{"id":"CNT-999","productCode":"PRD-001","productName":"스마트폰"}`))
	var ve *validation.ValidationErrors
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "id", ve.Errors[0].Field)

	_, err = s.Update(ctx, "CNT-404", []byte(body))
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDelete(t *testing.T) {
	reg := seeded(t)
	ctx := context.Background()
	s, _ := reg.Get("WMS0501")

	require.NoError(t, s.Delete(ctx, "BC-001"))
	_, err := s.Get(ctx, "BC-001")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "BC-001"), store.ErrNotFound)
}

func TestStockStatusIsDerived(t *testing.T) {
	reg := seeded(t)
	ctx := context.Background()

	row, err := reg.WMS.Stock.Update(ctx, "INV-001", []byte(`{"productCode":"PRD-001","productName":"스마트폰","quantity":10,"minStock":50,"maxStock":200,"status":"정상"}`))
	require.NoError(t, err)
	assert.Equal(t, "부족", row.(models.StockItem).Status)
}

func TestUnitConversionColumn(t *testing.T) {
	reg := seeded(t)
	res, err := reg.WMS.Units.List(context.Background(), query(1, 10))
	require.NoError(t, err)

	col := -1
	for i, c := range res.Grid.Columns {
		if c.Name == "conversion" {
			col = i
		}
	}
	require.NotEqual(t, -1, col)
	got := make(map[string]string)
	for i, id := range res.Grid.IDs {
		got[id] = res.Grid.Cells[i][col]
	}
	want := map[string]string{
		"UNIT-001": "기본 단위",
		"UNIT-002": "1BOX = 12EA",
		"UNIT-003": "1CASE = 72EA",
		"UNIT-004": "1PALLET = 288EA",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("conversion mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []screens.Card{{Label: "기본 단위", Value: "1건"}, {Label: "변환 단위", Value: "3건"}}, res.Cards)
}

func TestCategoryLevelCards(t *testing.T) {
	reg := seeded(t)
	res, err := reg.WMS.Categories.List(context.Background(), query(1, 10))
	require.NoError(t, err)
	assert.Equal(t, []screens.Card{{Label: "1단계 분류", Value: "2건"}, {Label: "2단계 분류", Value: "4건"}}, res.Cards)
}

func TestPayrollCountsFollowFilter(t *testing.T) {
	reg := seeded(t)
	ctx := context.Background()

	res, err := reg.HR.Registrations.List(ctx, query(1, 10))
	require.NoError(t, err)
	assert.Equal(t, []screens.Card{{Label: "총 지급액", Value: "28,820,000원"}}, res.Cards)

	res, err = reg.HR.Registrations.List(ctx, datatable.Query{Search: "없는사람", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Counts[0].Total)
	assert.Equal(t, "0원", res.Cards[0].Value)
}

func TestVoucherTotals(t *testing.T) {
	reg := seeded(t)
	s, _ := reg.Get("ACC0103")
	res, err := s.List(context.Background(), query(1, 10))
	require.NoError(t, err)
	assert.Equal(t, []screens.Card{{Label: "차변 합계", Value: "7,200,000원"}, {Label: "대변 합계", Value: "7,020,000원"}}, res.Cards)
}

func TestExportIgnoresPagination(t *testing.T) {
	reg := seeded(t)
	s, _ := reg.Get("WMS0404")

	headers, cells, err := s.Export(context.Background(), query(1, 1))
	require.NoError(t, err)
	assert.Equal(t, "이력번호", headers[0])
	assert.Len(t, cells, 3)
	for _, row := range cells {
		assert.Len(t, row, len(headers))
	}
}

func TestSchemaIsStrict(t *testing.T) {
	reg := seeded(t)
	s, _ := reg.Get("WMS0607")
	sch := s.Schema()
	require.NotNil(t, sch)
	_, ok := sch.Properties.Get("parentCode")
	assert.True(t, ok)
}

func TestNextID(t *testing.T) {
	tests := []struct {
		prefix   string
		existing []string
		want     string
	}{
		{"INB", nil, "INB-001"},
		{"INB", []string{"INB-001", "INB-009", "RET-050"}, "INB-010"},
		{"WTRF", []string{"WTRF-002"}, "WTRF-003"},
		{"", []string{"1", "7", "x"}, "8"},
		{"", nil, "1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, screens.NextID(tt.prefix, tt.existing), "%q %v", tt.prefix, tt.existing)
	}
}

func TestSeedMissingKeepsEdits(t *testing.T) {
	reg := seeded(t)
	ctx := context.Background()
	require.NoError(t, reg.WMS.Units.Delete(ctx, "UNIT-004"))

	n, err := reg.SeedMissing(ctx, today)
	require.NoError(t, err)
	assert.Zero(t, n)
	got, err := reg.WMS.Units.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestRelocateFollowsMenu(t *testing.T) {
	reg := seeded(t)
	moved, err := menu.Parse([]byte(`
items:
  - id: WMS
    title: 창고
    path: /WMS
    children:
      - {id: WMS0606, title: 단위, path: /WMS/units/WMS0606}
`))
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range 100 {
			_ = reg.WMS.Units.Info()
		}
	}()
	reg.Relocate(moved)
	<-done

	s, ok := reg.Get("WMS0606")
	require.True(t, ok)
	assert.Equal(t, "/WMS/units/WMS0606", s.Info().Path)

	s, ok = reg.Get("HRS0101")
	require.True(t, ok)
	assert.Empty(t, s.Info().Path, "screens dropped from the menu lose their path")

	reg.Relocate(menu.Default())
	assert.Equal(t, "/WMS/master_data/WMS0606", reg.WMS.Units.Info().Path)
}
