package dataset

import (
	"slices"

	"nikand.dev/go/minidb"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"
)

type (
	IndexOptions struct {
		// Kind forces the key type, Auto infers it from the column.
		Kind Kind

		Logger *tlog.Logger
	}

	// Index keeps a Table and a B-tree over one of its columns in sync.
	// Tree values are row numbers.
	Index struct {
		table *Table
		col   int
		kind  Kind

		tree *minidb.Tree[Key, int]

		l *tlog.Logger
	}
)

var ( // errors
	ErrNotUnique  = errors.New("column values are not unique")
	ErrKeyColumn  = errors.New("key column can't be updated")
	ErrMissingRow = errors.New("indexed row is missing")
)

// NewIndex validates the key column and indexes every row of t
// in a tree of minimum degree deg.
func NewIndex(t *Table, column string, deg int, opts *IndexOptions) (*Index, error) {
	if opts == nil {
		opts = &IndexOptions{}
	}

	col := t.Column(column)
	if col < 0 {
		return nil, errors.Wrap(ErrNoColumn, "%q (have %q)", column, t.Columns)
	}

	kind := opts.Kind
	if kind == Auto {
		var err error
		kind, err = ColumnKind(t, col)
		if err != nil {
			return nil, err
		}
	}

	tree, err := minidb.NewFunc[Key, int](deg, CompareKeys)
	if err != nil {
		return nil, err
	}

	keys := make([]Key, len(t.rows))

	for i, r := range t.rows {
		keys[i], err = ParseKey(kind, r.Values[col])
		if err != nil {
			return nil, errors.Wrap(err, "column %q row %d", column, r.Num)
		}
	}

	if dup, ok := duplicate(keys); ok {
		return nil, errors.Wrap(ErrNotUnique, "column %q: value %v", column, dup)
	}

	for i, r := range t.rows {
		err = tree.Insert(keys[i], r.Num)
		if err != nil {
			return nil, errors.Wrap(err, "index row %d", r.Num)
		}
	}

	x := &Index{
		table: t,
		col:   col,
		kind:  kind,
		tree:  tree,
		l:     opts.Logger,
	}

	x.l.Printw("index built", "column", column, "kind", kind, "rows", t.Len(), "degree", deg, "height", tree.Height())

	return x, nil
}

func (x *Index) Table() *Table               { return x.table }
func (x *Index) Column() string              { return x.table.Columns[x.col] }
func (x *Index) Kind() Kind                  { return x.kind }
func (x *Index) Tree() *minidb.Tree[Key, int] { return x.tree }

// Insert adds a row with the given key.
// values are the other columns by name, missing ones are left empty.
func (x *Index) Insert(key string, values map[string]string) (Row, error) {
	k, err := ParseKey(x.kind, key)
	if err != nil {
		return Row{}, err
	}

	vals := make([]string, len(x.table.Columns))

	for name, v := range values {
		i := x.table.Column(name)

		switch {
		case i < 0:
			return Row{}, errors.Wrap(ErrNoColumn, "%q", name)
		case i == x.col:
			return Row{}, errors.Wrap(ErrKeyColumn, "%q is set by the key", name)
		}

		vals[i] = v
	}

	vals[x.col] = k.String()

	num := x.table.NextNum()

	err = x.tree.Insert(k, num)
	if err != nil {
		return Row{}, err
	}

	r, err := x.table.Append(vals)
	if err != nil {
		return Row{}, err
	}

	x.l.Printw("insert", "key", k, "row", r.Num, "keys", x.tree.Len())

	return r, nil
}

func (x *Index) Search(key string) (Row, error) {
	k, err := ParseKey(x.kind, key)
	if err != nil {
		return Row{}, err
	}

	num, err := x.tree.Get(k)
	if err != nil {
		return Row{}, err
	}

	r, ok := x.table.Row(num)
	if !ok {
		return Row{}, errors.Wrap(ErrMissingRow, "key %v row %d", k, num)
	}

	return r, nil
}

// Delete removes the row with the key from both the tree and the table.
func (x *Index) Delete(key string) (Row, error) {
	k, err := ParseKey(x.kind, key)
	if err != nil {
		return Row{}, err
	}

	num, err := x.tree.Get(k)
	if err != nil {
		return Row{}, err
	}

	err = x.tree.Delete(k)
	if err != nil {
		return Row{}, err
	}

	r, ok := x.table.remove(num)
	if !ok {
		return Row{}, errors.Wrap(ErrMissingRow, "key %v row %d", k, num)
	}

	x.l.Printw("delete", "key", k, "row", num, "keys", x.tree.Len(), "height", x.tree.Height())

	return r, nil
}

// Update sets a non-key column of the row with the key.
func (x *Index) Update(key, column, value string) (Row, error) {
	col := x.table.Column(column)

	switch {
	case col < 0:
		return Row{}, errors.Wrap(ErrNoColumn, "%q", column)
	case col == x.col:
		return Row{}, errors.Wrap(ErrKeyColumn, "%q", column)
	}

	k, err := ParseKey(x.kind, key)
	if err != nil {
		return Row{}, err
	}

	num, err := x.tree.Get(k)
	if err != nil {
		return Row{}, err
	}

	r, ok := x.table.set(num, col, value)
	if !ok {
		return Row{}, errors.Wrap(ErrMissingRow, "key %v row %d", k, num)
	}

	x.l.Printw("update", "key", k, "row", num, "column", column)

	return r, nil
}

func duplicate(keys []Key) (Key, bool) {
	s := slices.Clone(keys)
	slices.SortFunc(s, CompareKeys)

	for i := 1; i < len(s); i++ {
		if CompareKeys(s[i-1], s[i]) == 0 {
			return s[i], true
		}
	}

	return Key{}, false
}
