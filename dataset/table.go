package dataset

import (
	"slices"
	"sort"
	"strings"

	"tlog.app/go/errors"
)

type (
	// Table is an ordered set of rows with named columns.
	// Each row gets a row number when it's added, numbers are never reused.
	Table struct {
		Columns []string

		rows []Row
		next int
	}

	Row struct {
		Num    int
		Values []string
	}
)

var ( // errors
	ErrNoColumn  = errors.New("no such column")
	ErrBadHeader = errors.New("bad header")
	ErrRowWidth  = errors.New("row width mismatch")
)

func NewTable(columns []string) (*Table, error) {
	if len(columns) == 0 {
		return nil, errors.Wrap(ErrBadHeader, "no columns")
	}

	seen := make(map[string]struct{}, len(columns))
	cols := make([]string, len(columns))

	for i, c := range columns {
		c = strings.TrimSpace(c)
		if c == "" {
			return nil, errors.Wrap(ErrBadHeader, "column %d: empty name", i)
		}

		if _, ok := seen[c]; ok {
			return nil, errors.Wrap(ErrBadHeader, "column %q: duplicate name", c)
		}

		seen[c] = struct{}{}
		cols[i] = c
	}

	return &Table{Columns: cols}, nil
}

// Len is the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Column returns the column position or -1.
func (t *Table) Column(name string) int {
	return slices.Index(t.Columns, name)
}

// Append adds a row and returns it with its row number assigned.
func (t *Table) Append(values []string) (Row, error) {
	if len(values) != len(t.Columns) {
		return Row{}, errors.Wrap(ErrRowWidth, "%d values for %d columns", len(values), len(t.Columns))
	}

	r := Row{
		Num:    t.next,
		Values: slices.Clone(values),
	}

	t.rows = append(t.rows, r)
	t.next++

	return r.clone(), nil
}

// NextNum is the row number the next appended row gets.
func (t *Table) NextNum() int { return t.next }

// Row finds a row by its number.
func (t *Table) Row(num int) (Row, bool) {
	i, ok := t.find(num)
	if !ok {
		return Row{}, false
	}

	return t.rows[i].clone(), true
}

// Rows returns a copy of all the rows in insertion order.
func (t *Table) Rows() []Row {
	r := make([]Row, len(t.rows))

	for i, row := range t.rows {
		r[i] = row.clone()
	}

	return r
}

// Values returns the cells of a column in row order.
func (t *Table) Values(col int) []string {
	r := make([]string, len(t.rows))

	for i, row := range t.rows {
		r[i] = row.Values[col]
	}

	return r
}

func (t *Table) remove(num int) (Row, bool) {
	i, ok := t.find(num)
	if !ok {
		return Row{}, false
	}

	r := t.rows[i]
	t.rows = slices.Delete(t.rows, i, i+1)

	return r, true
}

func (t *Table) set(num, col int, v string) (Row, bool) {
	i, ok := t.find(num)
	if !ok {
		return Row{}, false
	}

	t.rows[i].Values[col] = v

	return t.rows[i].clone(), true
}

// find relies on rows being sorted by number, Append only ever adds bigger ones.
func (t *Table) find(num int) (int, bool) {
	i := sort.Search(len(t.rows), func(i int) bool {
		return t.rows[i].Num >= num
	})

	return i, i < len(t.rows) && t.rows[i].Num == num
}

func (r Row) clone() Row {
	r.Values = slices.Clone(r.Values)
	return r
}
