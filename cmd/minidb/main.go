package main

import (
	"fmt"
	"os"

	"github.com/carlmjohnson/versioninfo"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v2"
	"nikand.dev/go/minidb"
	"tlog.app/go/tlog"
)

var tl *tlog.Logger

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	app := cli.App{
		Name:    "minidb",
		Usage:   "spreadsheet rows indexed by a B-tree",
		Version: versioninfo.Short(),
		Before:  before,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "max-degree",
				Aliases: []string{"m"},
				Usage:   "max children per tree node, even number larger than 3",
				Value:   4,
				EnvVars: []string{"MINIDB_MAX_DEGREE"},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log index operations to stderr",
				EnvVars: []string{"MINIDB_VERBOSE"},
			},
		},
		Commands: []*cli.Command{
			cmdImport,
			cmdNew,
			cmdGenerate,
			cmdDemo,
		},
	}

	return app.Run(args)
}

func before(c *cli.Context) error {
	if c.Bool("verbose") {
		tl = tlog.New(tlog.NewConsoleWriter(os.Stderr, tlog.LstdFlags))
	}

	return nil
}

func degree(c *cli.Context) (int, error) {
	return minidb.DegreeFromMax(c.Int("max-degree"))
}
