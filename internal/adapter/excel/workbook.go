// Package excel adapts .xlsx and legacy .xls workbooks to the port.Grid
// abstraction. All sheets are loaded eagerly so the workbook handle can be
// released up front.
package excel

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"github.com/staffgrid/timecard/internal/port"
)

const maxXLSRows = 100000

type Workbook struct {
	names  []string
	sheets map[string][][]string
}

// Open reads the workbook at path, choosing the reader by file extension.
func Open(path string) (*Workbook, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xls":
		return openXLS(path)
	default:
		return openXLSX(path)
	}
}

func openXLSX(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := &Workbook{sheets: make(map[string][][]string)}
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}
		w.names = append(w.names, name)
		w.sheets[name] = rows
	}
	if len(w.names) == 0 {
		return nil, fmt.Errorf("workbook %s: no worksheet found", path)
	}
	return w, nil
}

func openXLS(path string) (*Workbook, error) {
	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	if wb.NumSheets() == 0 {
		return nil, fmt.Errorf("workbook %s: no worksheet found", path)
	}
	if wb.NumSheets() > 1 {
		return nil, fmt.Errorf("workbook %s: multiple worksheets in .xls are not supported", path)
	}
	name := wb.GetSheet(0).Name
	if name == "" {
		name = "Sheet1"
	}
	return &Workbook{
		names:  []string{name},
		sheets: map[string][][]string{name: wb.ReadAllCells(maxXLSRows)},
	}, nil
}

func (w *Workbook) SheetNames() []string {
	return append([]string(nil), w.names...)
}

func (w *Workbook) Grid(sheet string) (port.Grid, error) {
	rows, ok := w.sheets[sheet]
	if !ok {
		return nil, fmt.Errorf("sheet %q not found", sheet)
	}
	g := &sheetGrid{rows: rows}
	for _, r := range rows {
		if len(r) > g.cols {
			g.cols = len(r)
		}
	}
	return g, nil
}

func (w *Workbook) Close() error {
	return nil
}

type sheetGrid struct {
	rows [][]string
	cols int
}

func (g *sheetGrid) Rows() int { return len(g.rows) }

func (g *sheetGrid) Cols() int { return g.cols }

func (g *sheetGrid) Cell(row, col int) string {
	if row < 0 || row >= len(g.rows) {
		return ""
	}
	r := g.rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[col])
}
