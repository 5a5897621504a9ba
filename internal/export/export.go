// Package export writes screen rows as CSV or Excel workbooks.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Format is an export file type.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ErrUnknownFormat is returned by ParseFormat.
var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat accepts csv, xlsx and excel. Empty means csv.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "csv":
		return FormatCSV, nil
	case "xlsx", "excel":
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// bom lets spreadsheet programs detect UTF-8 Korean text.
const bom = "\xef\xbb\xbf"

// WriteCSV writes headers and rows as UTF-8 CSV with a byte order mark.
func WriteCSV(w io.Writer, headers []string, data [][]string) error {
	if _, err := io.WriteString(w, bom); err != nil {
		return err
	}
	writer := csv.NewWriter(w)
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}
	for _, row := range data {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteXLSX writes headers and rows into a single-sheet workbook.
func WriteXLSX(w io.Writer, sheetName string, headers []string, data [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D3D3D3"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}
	for rowIdx, row := range data {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return err
			}
			f.SetCellValue(sheetName, cell, value)
		}
	}
	if len(headers) > 0 {
		last, _ := excelize.ColumnNumberToName(len(headers))
		f.SetColWidth(sheetName, "A", last, 15)
	}
	if sheetName != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}
	return f.Write(w)
}

// Write dispatches on format.
func Write(w io.Writer, format Format, sheetName string, headers []string, data [][]string) error {
	if format == FormatXLSX {
		return WriteXLSX(w, sheetName, headers, data)
	}
	return WriteCSV(w, headers, data)
}

// Filename is base plus the format's extension.
func Filename(base string, format Format) string {
	return strings.ToLower(base) + "." + string(format)
}

// Serve writes an attachment response.
func Serve(w http.ResponseWriter, format Format, name string, headers []string, data [][]string) error {
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", Filename(name, format)))
	return Write(w, format, name, headers, data)
}
