package dataset

import (
	"strings"
	"testing"

	"tlog.app/go/tlog"
)

type testingWriter struct {
	t testing.TB
}

func (w testingWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(strings.TrimSuffix(string(p), "\n"))

	return len(p), nil
}

func newTestLogger(t testing.TB) *tlog.Logger {
	return tlog.New(tlog.NewConsoleWriter(testingWriter{t: t}, tlog.LstdFlags))
}

func testTable(t testing.TB) *Table {
	t.Helper()

	tb, err := NewTable([]string{"id", "name", "grade"})
	if err != nil {
		t.Fatalf("new table: %v", err)
	}

	for _, r := range [][]string{
		{"3", "carol", "91"},
		{"1", "alice", "99"},
		{"10", "dave", "95"},
		{"2", "bob", "93"},
	} {
		if _, err := tb.Append(r); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	return tb
}
