package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ERP_LOG_LEVEL", "error")
	configPath, menuActive, menuAll = "", "", false
	exportFormat, exportOut, exportQuery = "csv", "", ""
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestMenuCommand(t *testing.T) {
	out, err := run(t, "menu", "--active", "/WMS/inventory/WMS0301")
	require.NoError(t, err)
	assert.Contains(t, out, "인사 관리")
	assert.Contains(t, out, "창고 관리")
	assert.Contains(t, out, "/WMS/inventory/WMS0302")
	assert.Contains(t, out, " > ")
}

func TestScreensCommand(t *testing.T) {
	out, err := run(t, "screens")
	require.NoError(t, err)
	for _, id := range []string{"HRS0101", "ACC0103", "WMS0606", "WMS0607"} {
		assert.Contains(t, out, id)
	}
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "export", "WMS0606")
	require.NoError(t, err)
	records, err := csv.NewReader(strings.NewReader(strings.TrimPrefix(out, "\xef\xbb\xbf"))).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 5)

	path := filepath.Join(dir, "units.xlsx")
	_, err = run(t, "export", "WMS0606", "--format", "xlsx", "--out", path, "--query", "status=중지")
	require.NoError(t, err)
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("WMS0606")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestExportCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown screen", []string{"export", "NOPE"}},
		{"bad format", []string{"export", "WMS0606", "--format", "pdf"}},
		{"bad range", []string{"export", "WMS0101", "--format", "csv", "--query", "from=2023-06-10&to=2023-06-01"}},
		{"missing arg", []string{"export"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestBadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "erp.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: [\n"), 0o600))
	_, err := run(t, "screens", "--config", path)
	assert.Error(t, err)
}
