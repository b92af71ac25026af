package tabular

// Row is a fixed-width list of string cells owned by a Table. The empty
// string doubles as the "no value" marker; TXT files cannot distinguish
// the two.
type Row struct {
	table *Table
	cells []string
}

// Len returns the number of cells, which always equals the table's column
// count.
func (r *Row) Len() int {
	return len(r.cells)
}

// Get returns the cell value for the named column.
func (r *Row) Get(name string) (string, error) {
	i, err := r.table.ColumnIndex(name)
	if err != nil {
		return "", err
	}
	return r.cells[i], nil
}

// Set assigns the cell value for the named column.
func (r *Row) Set(name, value string) error {
	i, err := r.table.ColumnIndex(name)
	if err != nil {
		return err
	}
	r.cells[i] = value
	return nil
}

// At returns the cell value at the given column index.
func (r *Row) At(i int) string {
	return r.cells[i]
}

// SetAt assigns the cell value at the given column index.
func (r *Row) SetAt(i int, value string) {
	r.cells[i] = value
}

// Values returns a copy of the cells in column order.
func (r *Row) Values() []string {
	values := make([]string, len(r.cells))
	copy(values, r.cells)
	return values
}
