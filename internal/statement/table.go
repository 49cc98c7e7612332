// Package statement reads raw bank statement exports into 2-D cell tables.
// Exports arrive as real xlsx workbooks or, just as often, as HTML tables
// saved with an .xls extension; both forms collapse into the same Table.
package statement

import "fmt"

// Table is the raw grid of one statement export: a named header row plus
// the data rows beneath it. Cells are strings; empty string means the cell
// was blank in the source.
type Table struct {
	Columns []string
	Rows    [][]string
}

// ColumnCount returns the number of columns in the header row.
func (t *Table) ColumnCount() int {
	return len(t.Columns)
}

// Cell returns the cell at (row, col), or "" when the row is ragged and
// does not reach col.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// fromGrid slices a raw cell grid into a Table using headerRow as the
// zero-based offset of the column-name row. Rows are padded to the widest
// row so downstream indexing never goes out of range.
func fromGrid(grid [][]string, headerRow int) *Table {
	if headerRow >= len(grid) {
		return &Table{}
	}

	width := 0
	for _, row := range grid[headerRow:] {
		if len(row) > width {
			width = len(row)
		}
	}

	pad := func(row []string) []string {
		if len(row) >= width {
			return row
		}
		padded := make([]string, width)
		copy(padded, row)
		return padded
	}

	t := &Table{Columns: pad(grid[headerRow])}
	for _, row := range grid[headerRow+1:] {
		t.Rows = append(t.Rows, pad(row))
	}
	return t
}

// ReadTable loads one statement export. It tries the xlsx reader first and
// falls back to the HTML-table reader, mirroring how the bank emits both
// formats under the same extension.
func ReadTable(path string, headerRow int) (*Table, error) {
	table, xlsxErr := readXLSX(path, headerRow)
	if xlsxErr == nil {
		return table, nil
	}

	table, htmlErr := readHTML(path, headerRow)
	if htmlErr == nil {
		return table, nil
	}

	return nil, fmt.Errorf("reading %s: not a workbook (%v) nor an HTML table (%v)", path, xlsxErr, htmlErr)
}
