package dataset

import (
	"cmp"
	"math"
	"strconv"
	"strings"

	"tlog.app/go/errors"
)

type (
	// Kind is the type of an index column.
	Kind int

	// Key is a parsed cell of the index column.
	// Numeric keys compare by value, string keys byte-wise.
	Key struct {
		kind Kind
		num  float64
		text string
	}
)

const (
	Auto Kind = iota
	String
	Numeric
)

var ( // errors
	ErrEmptyCell  = errors.New("empty cell")
	ErrColumnType = errors.New("bad column type")
)

func (k Kind) String() string {
	switch k {
	case Auto:
		return "auto"
	case String:
		return "string"
	case Numeric:
		return "numeric"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return Auto, nil
	case "string", "str", "text":
		return String, nil
	case "numeric", "number", "num":
		return Numeric, nil
	default:
		return Auto, errors.Wrap(ErrColumnType, "%q", s)
	}
}

// ColumnKind infers the column type: Numeric if every cell is a number, String otherwise.
// Empty cells can't be keys.
// An empty table gives String.
func ColumnKind(t *Table, col int) (Kind, error) {
	if col < 0 || col >= len(t.Columns) {
		return Auto, errors.Wrap(ErrNoColumn, "column %d", col)
	}

	kind := Numeric

	for _, r := range t.rows {
		v := strings.TrimSpace(r.Values[col])
		if v == "" {
			return Auto, errors.Wrap(ErrEmptyCell, "column %q row %d", t.Columns[col], r.Num)
		}

		if _, ok := number(v); !ok {
			kind = String
		}
	}

	if len(t.rows) == 0 {
		kind = String
	}

	return kind, nil
}

func ParseKey(kind Kind, s string) (Key, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Key{}, ErrEmptyCell
	}

	switch kind {
	case String:
		return Key{kind: String, text: s}, nil
	case Numeric:
		f, ok := number(s)
		if !ok {
			return Key{}, errors.Wrap(ErrColumnType, "%q is not a number", s)
		}

		return Key{kind: Numeric, num: f, text: s}, nil
	default:
		return Key{}, errors.Wrap(ErrColumnType, "parse key as %v", kind)
	}
}

// CompareKeys orders keys. All keys of one index are of the same kind,
// mixed kinds put numbers first.
func CompareKeys(a, b Key) int {
	if a.kind != b.kind {
		return cmp.Compare(b.kind, a.kind)
	}

	if a.kind == Numeric {
		return cmp.Compare(a.num, b.num)
	}

	return strings.Compare(a.text, b.text)
}

func (k Key) Kind() Kind { return k.kind }

// String is the key as it was written.
func (k Key) String() string { return k.text }

// number parses s as a finite number.
func number(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}
