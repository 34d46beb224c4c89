package dataset

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tlog.app/go/errors"
)

func TestTableBasics(t *testing.T) {
	tb := testTable(t)

	assert.Equal(t, 4, tb.Len())
	assert.Equal(t, 1, tb.Column("name"))
	assert.Equal(t, -1, tb.Column("nope"))
	assert.Equal(t, []string{"3", "1", "10", "2"}, tb.Values(0))

	r, ok := tb.Row(2)
	assert.True(t, ok)
	assert.Equal(t, []string{"10", "dave", "95"}, r.Values)

	r.Values[1] = "changed"
	r, _ = tb.Row(2)
	assert.Equal(t, "dave", r.Values[1])

	_, err := tb.Append([]string{"x"})
	assert.True(t, errors.Is(err, ErrRowWidth))

	_, ok = tb.remove(1)
	assert.True(t, ok)

	_, ok = tb.Row(1)
	assert.False(t, ok)

	r, err = tb.Append([]string{"7", "eve", "90"})
	require.NoError(t, err)
	assert.Equal(t, 4, r.Num)

	var nums []int
	for _, r := range tb.Rows() {
		nums = append(nums, r.Num)
	}

	assert.Equal(t, []int{0, 2, 3, 4}, nums)
}

func TestNewTableHeader(t *testing.T) {
	_, err := NewTable(nil)
	assert.True(t, errors.Is(err, ErrBadHeader))

	_, err = NewTable([]string{"a", " "})
	assert.True(t, errors.Is(err, ErrBadHeader))

	_, err = NewTable([]string{"a", "b", "a"})
	assert.True(t, errors.Is(err, ErrBadHeader))

	tb, err := NewTable([]string{" a ", "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tb.Columns)
}

func TestFormatsRoundTrip(t *testing.T) {
	dir := t.TempDir()

	for _, ext := range []string{"csv", "xlsx"} {
		t.Run(ext, func(t *testing.T) {
			tb := testTable(t)
			_, err := tb.Append([]string{"007", "bond, james", "1.5"})
			require.NoError(t, err)

			path := filepath.Join(dir, "table."+ext)

			err = Save(path, tb)
			require.NoError(t, err)

			got, err := Load(path)
			require.NoError(t, err)

			assert.Equal(t, tb.Columns, got.Columns)
			assert.Equal(t, tb.Rows(), got.Rows())
		})
	}
}

func TestCSVShortRecords(t *testing.T) {
	tb, err := CSV{}.Read(bytes.NewReader([]byte("a,b,c\n1,2\n3,4,5\n")))
	require.NoError(t, err)

	assert.Equal(t, []Row{
		{Num: 0, Values: []string{"1", "2", ""}},
		{Num: 1, Values: []string{"3", "4", "5"}},
	}, tb.Rows())

	_, err = CSV{}.Read(bytes.NewReader([]byte("a,b\n1,2,3\n")))
	assert.True(t, errors.Is(err, ErrRowWidth))

	_, err = CSV{}.Read(bytes.NewReader(nil))
	assert.True(t, errors.Is(err, ErrBadHeader))
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "data.txt"))
	assert.True(t, errors.Is(err, ErrUnknownFormat))

	_, err = Load(filepath.Join(dir, "missing.csv"))
	assert.True(t, errors.Is(err, os.ErrNotExist), "%v", err)

	err = Save(filepath.Join(dir, "data.json"), testTable(t))
	assert.True(t, errors.Is(err, ErrUnknownFormat))

	f, err := FormatFor("A.XLSX")
	require.NoError(t, err)
	assert.Equal(t, "xlsx", f.FormatName())
}
