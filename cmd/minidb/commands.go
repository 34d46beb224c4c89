package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"nikand.dev/go/minidb"
	"nikand.dev/go/minidb/dataset"
	"nikand.dev/go/minidb/render"
	"tlog.app/go/errors"
)

const defaultDataFile = "data/data_with_grade.xlsx"

var kindFlag = &cli.StringFlag{
	Name:  "kind",
	Usage: "key type: auto, string or numeric",
	Value: "auto",
}

var quietFlag = &cli.BoolFlag{
	Name:    "quiet",
	Aliases: []string{"q"},
	Usage:   "don't print the tree after every change",
}

var cmdImport = &cli.Command{
	Name:      "import",
	Usage:     "load a table and index one of its columns",
	ArgsUsage: "[file]",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "xlsx or csv file",
			Value:   defaultDataFile,
		},
		&cli.StringFlag{
			Name:    "key",
			Aliases: []string{"k"},
			Usage:   "index column, asked for if empty",
		},
		kindFlag,
		quietFlag,
	},
	Action: runImport,
}

var cmdNew = &cli.Command{
	Name:  "new",
	Usage: "start with an empty table",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "columns",
			Aliases:  []string{"c"},
			Usage:    "comma separated column names",
			Required: true,
		},
		&cli.StringFlag{
			Name:    "key",
			Aliases: []string{"k"},
			Usage:   "index column, asked for if empty",
		},
		kindFlag,
		quietFlag,
	},
	Action: runNew,
}

var cmdGenerate = &cli.Command{
	Name:  "generate",
	Usage: "write a table of fake students",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "rows",
			Aliases: []string{"n"},
			Value:   50,
		},
		&cli.Int64Flag{
			Name:  "seed",
			Value: 8,
		},
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Value:   defaultDataFile,
		},
	},
	Action: runGenerate,
}

var cmdDemo = &cli.Command{
	Name:  "demo",
	Usage: "insert (i, 2i) pairs printing the tree after each one",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"n"},
			Value:   30,
		},
		&cli.IntFlag{
			Name:  "search",
			Value: 8,
		},
	},
	Action: runDemo,
}

func runImport(c *cli.Context) error {
	deg, err := degree(c)
	if err != nil {
		return err
	}

	kind, err := dataset.ParseKind(c.String("kind"))
	if err != nil {
		return err
	}

	path := c.String("file")
	if c.Args().Present() {
		path = c.Args().First()
	}

	t, err := dataset.Load(path)
	if err != nil {
		return errors.Wrap(err, "load %v", path)
	}

	tl.Printw("table loaded", "path", path, "rows", t.Len(), "columns", t.Columns)

	sh := newShell(os.Stdin, os.Stdout)
	sh.echo = !c.Bool("quiet")

	err = sh.index(t, c.String("key"), deg, kind)
	if err != nil {
		return err
	}

	return sh.Run()
}

func runNew(c *cli.Context) error {
	deg, err := degree(c)
	if err != nil {
		return err
	}

	kind, err := dataset.ParseKind(c.String("kind"))
	if err != nil {
		return err
	}

	t, err := dataset.NewTable(strings.Split(c.String("columns"), ","))
	if err != nil {
		return err
	}

	sh := newShell(os.Stdin, os.Stdout)
	sh.echo = !c.Bool("quiet")

	err = sh.index(t, c.String("key"), deg, kind)
	if err != nil {
		return err
	}

	return sh.Run()
}

func runGenerate(c *cli.Context) error {
	t := dataset.Generate(c.Int("rows"), c.Int64("seed"))

	out := c.String("out")

	if dir := filepath.Dir(out); dir != "." {
		err := os.MkdirAll(dir, 0o755)
		if err != nil {
			return errors.Wrap(err, "mkdir")
		}
	}

	err := dataset.Save(out, t)
	if err != nil {
		return errors.Wrap(err, "save %v", out)
	}

	tl.Printw("table generated", "path", out, "rows", t.Len())

	fmt.Printf("%d rows written to %v\n", t.Len(), out)

	return nil
}

func runDemo(c *cli.Context) error {
	deg, err := degree(c)
	if err != nil {
		return err
	}

	tr, err := minidb.New[int, int](deg)
	if err != nil {
		return err
	}

	w := os.Stdout

	for i := 0; i < c.Int("count"); i++ {
		err = tr.Insert(i, 2*i)
		if err != nil {
			return err
		}

		err = render.Text(w, tr.Walk())
		if err != nil {
			return err
		}

		fmt.Fprintln(w, strings.Repeat("-", 50))
	}

	k := c.Int("search")

	if v, ok := tr.Search(k); ok {
		fmt.Fprintf(w, "Key %d found, value %d\n", k, v)
	} else {
		fmt.Fprintf(w, "Key %d not found in the B-tree.\n", k)
	}

	return nil
}
