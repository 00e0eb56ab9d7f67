package port

// Grid is a read-only rectangular view over one worksheet's cells. Cell
// returns the trimmed text at (row, col); empty string means the cell is
// empty, out of range, or holds no text.
type Grid interface {
	Rows() int
	Cols() int
	Cell(row, col int) string
}

// GridSource yields named grids from one workbook.
type GridSource interface {
	// SheetNames returns sheet names in workbook order.
	SheetNames() []string

	// Grid returns the grid for the named sheet.
	Grid(sheet string) (Grid, error)

	// Close releases the underlying workbook.
	Close() error
}
