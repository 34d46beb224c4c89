package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"nikand.dev/go/minidb"
	"nikand.dev/go/minidb/dataset"
	"nikand.dev/go/minidb/render"
	"tlog.app/go/errors"
)

type shell struct {
	sc *bufio.Scanner
	w  io.Writer

	x *dataset.Index

	// print the tree after every change
	echo bool
}

var (
	errorf = color.New(color.FgRed).FprintfFunc()
	okf    = color.New(color.FgGreen).FprintfFunc()
	headf  = color.New(color.Bold).FprintfFunc()
)

var errNoInput = errors.New("no more input")

func newShell(r io.Reader, w io.Writer) *shell {
	return &shell{
		sc:   bufio.NewScanner(r),
		w:    w,
		echo: true,
	}
}

// index builds the index over the key column.
// It keeps asking for another column while the given one can't be used.
func (s *shell) index(t *dataset.Table, key string, deg int, kind dataset.Kind) error {
	for {
		if key == "" {
			fmt.Fprintf(s.w, "The columns are: %q\nThe index column must be unique, of string or numeric type.\n", t.Columns)

			var ok bool
			key, ok = s.ask("Please enter the column name you want to set as index: ")
			if !ok {
				return errors.Wrap(errNoInput, "index column")
			}
		}

		x, err := dataset.NewIndex(t, key, deg, &dataset.IndexOptions{Kind: kind, Logger: tl})
		if errors.Is(err, minidb.ErrInvalidDegree) {
			return err
		}

		if err != nil {
			errorf(s.w, "Error: %v\n", err)
			key = ""

			continue
		}

		s.x = x

		okf(s.w, "The column %v is set as the index (%v keys, %v).\n", key, x.Tree().Len(), x.Kind())

		if s.echo {
			s.printTree()
		}

		return nil
	}
}

func (s *shell) Run() error {
	s.printHelp()

	for {
		line, ok := s.ask("> ")
		if !ok {
			fmt.Fprintln(s.w)
			return s.sc.Err()
		}

		if s.exec(line) {
			return nil
		}
	}
}

func (s *shell) printHelp() {
	fmt.Fprint(s.w, `
Commands:
  insert <key> [column=value...]    add a row, asks for the missing columns    (1)
  get <key>                         show the row with the key                  (2)
  del <key>                         delete the row with the key                (3)
  update <key> <column> <value>     change a non-key column
  rows                              list all the rows
  print                             print the tree level by level
  tree                              print the tree outline
  dot [file]                        write the tree as a graphviz file
  save <file>                       write the table to an xlsx or csv file
  help                              show this message
  exit                              leave                                      (4)

`)
}

func (s *shell) ask(prompt string) (string, bool) {
	fmt.Fprint(s.w, prompt)

	if !s.sc.Scan() {
		return "", false
	}

	return strings.TrimSpace(s.sc.Text()), true
}

func (s *shell) exec(line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	args := fields[1:]

	switch cmd := strings.ToLower(fields[0]); cmd {
	case "insert", "1":
		s.insert(args)
	case "get", "search", "2":
		s.get(args)
	case "del", "delete", "3":
		s.del(args)
	case "update":
		s.update(args)
	case "rows":
		s.rows()
	case "print":
		s.printTree()
	case "tree":
		fmt.Fprint(s.w, render.Outline(s.x.Tree().Walk()))
	case "dot":
		s.dot(args)
	case "save":
		s.save(args)
	case "help":
		s.printHelp()
	case "exit", "quit", "4":
		return true
	default:
		errorf(s.w, "Unknown command %q\n", cmd)
	}

	return false
}

func (s *shell) key(args []string, prompt string) (string, bool) {
	if len(args) != 0 {
		return args[0], true
	}

	return s.ask(prompt)
}

func (s *shell) insert(args []string) {
	key, ok := s.key(args, "Enter the key you want to insert: ")
	if !ok {
		return
	}

	vals := map[string]string{}

	for _, a := range args[min(1, len(args)):] {
		col, val, ok := strings.Cut(a, "=")
		if !ok {
			errorf(s.w, "Usage: insert <key> [column=value...]\n")
			return
		}

		vals[col] = val
	}

	for _, col := range s.x.Table().Columns {
		if _, ok := vals[col]; ok || col == s.x.Column() {
			continue
		}

		v, ok := s.ask(fmt.Sprintf("Enter the value for %v: ", col))
		if !ok {
			return
		}

		vals[col] = v
	}

	r, err := s.x.Insert(key, vals)
	if err != nil {
		errorf(s.w, "Error: %v\n", err)
		return
	}

	okf(s.w, "Inserted ")
	s.printRow(r)
	s.changed()
}

func (s *shell) get(args []string) {
	key, ok := s.key(args, "Enter the key you want to search: ")
	if !ok {
		return
	}

	r, err := s.x.Search(key)
	if errors.Is(err, minidb.ErrKeyNotFound) {
		errorf(s.w, "The key %v is not found in the B-tree\n", key)
		return
	}
	if err != nil {
		errorf(s.w, "Error: %v\n", err)
		return
	}

	okf(s.w, "Key %v found: ", key)
	s.printRow(r)
}

func (s *shell) del(args []string) {
	key, ok := s.key(args, "Enter the key you want to delete: ")
	if !ok {
		return
	}

	r, err := s.x.Delete(key)
	if errors.Is(err, minidb.ErrKeyNotFound) {
		errorf(s.w, "The key %v is not found in the B-tree\n", key)
		return
	}
	if err != nil {
		errorf(s.w, "Error: %v\n", err)
		return
	}

	okf(s.w, "Deleted ")
	s.printRow(r)
	s.changed()
}

func (s *shell) update(args []string) {
	if len(args) < 3 {
		errorf(s.w, "Usage: update <key> <column> <value>\n")
		return
	}

	r, err := s.x.Update(args[0], args[1], strings.Join(args[2:], " "))
	if err != nil {
		errorf(s.w, "Error: %v\n", err)
		return
	}

	okf(s.w, "Updated ")
	s.printRow(r)
}

func (s *shell) rows() {
	t := s.x.Table()

	headf(s.w, "%d rows, index on %v\n", t.Len(), s.x.Column())

	for _, r := range t.Rows() {
		s.printRow(r)
	}
}

func (s *shell) dot(args []string) {
	name := "btree.dot"
	if len(args) != 0 {
		name = args[0]
	}

	f, err := os.Create(name)
	if err != nil {
		errorf(s.w, "Error: %v\n", err)
		return
	}

	err = render.DOT(f, s.x.Tree().Walk())
	if e := f.Close(); err == nil {
		err = e
	}
	if err != nil {
		errorf(s.w, "Error: %v\n", err)
		return
	}

	okf(s.w, "Tree written to %v\n", name)
}

func (s *shell) save(args []string) {
	if len(args) != 1 {
		errorf(s.w, "Usage: save <file>\n")
		return
	}

	err := dataset.Save(args[0], s.x.Table())
	if err != nil {
		errorf(s.w, "Error: %v\n", err)
		return
	}

	okf(s.w, "%d rows written to %v\n", s.x.Table().Len(), args[0])
}

func (s *shell) changed() {
	if s.echo {
		s.printTree()
	}
}

func (s *shell) printTree() {
	tr := s.x.Tree()

	headf(s.w, "B-tree t=%d, %d keys, height %d\n", tr.Degree(), tr.Len(), tr.Height())

	err := render.Text(s.w, tr.Walk())
	if err != nil {
		errorf(s.w, "Error: %v\n", err)
	}

	fmt.Fprintln(s.w, strings.Repeat("-", 50))
}

func (s *shell) printRow(r dataset.Row) {
	var b strings.Builder

	fmt.Fprintf(&b, "row %d:", r.Num)

	for i, col := range s.x.Table().Columns {
		fmt.Fprintf(&b, " %v=%q", col, r.Values[i])
	}

	fmt.Fprintln(s.w, b.String())
}
