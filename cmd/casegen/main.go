// Command casegen generates synthetic test cases from any registered generator,
// optionally recording each run in an archive so it can be replayed later.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"pkg.jsn.cam/casegen/internal/archive"
	"pkg.jsn.cam/casegen/internal/generator"
	"pkg.jsn.cam/casegen/internal/runner"
)

var errArchiveRequired = errors.New("--archive is required")

func newApp(stdin io.Reader, stdout io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "casegen"
	app.Usage = "generate synthetic test cases"
	app.Version = archive.ToolVersion
	app.Writer = stdout

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "log, l",
			Usage:  "log level: debug,info,warning,error",
			Value:  "info",
			EnvVar: "CASEGEN_LOG",
		},
		cli.StringFlag{
			Name:   "archive, a",
			Usage:  "bbolt file runs are recorded in and replayed from",
			EnvVar: "CASEGEN_ARCHIVE",
		},
	}

	app.Before = func(c *cli.Context) error {
		return runner.SetupLogging(c.String("log"))
	}

	app.Commands = []cli.Command{
		{
			Name:   "list",
			Usage:  "list registered generators",
			Action: func(c *cli.Context) error { return listGenerators(stdout) },
		},
		{
			Name:      "gen",
			Usage:     "generate cases",
			ArgsUsage: "<generator>",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "count, n", Value: -1, Usage: "number of cases (default: the generator's default)"},
				cli.BoolFlag{Name: "stdin-count", Usage: "read the number of cases from the first line of stdin"},
				cli.IntFlag{Name: "size", Usage: "matrix dimension (default: 5)"},
				cli.Float64Flag{Name: "radius", Usage: "triangle bounding radius (default: 100)"},
				cli.StringFlag{Name: "seed", Usage: "random seed (default: fresh each run)", EnvVar: "CASEGEN_SEED"},
				cli.StringFlag{Name: "output, o", Usage: "write cases to this file instead of stdout"},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() != 1 {
					return fmt.Errorf("gen takes exactly one generator name, got %d arguments", c.NArg())
				}
				seed, err := runner.ParseSeed(c.String("seed"))
				if err != nil {
					return err
				}
				count := c.Int("count")
				if c.Bool("stdin-count") {
					if count, err = generator.ReadCount(stdin); err != nil {
						return err
					}
				}
				job := runner.Job{
					Generator: c.Args().First(),
					Config:    generator.Config{Size: c.Int("size"), Radius: c.Float64("radius")},
					Count:     count,
					Seed:      seed,
				}
				return withArchive(c.GlobalString("archive"), false, func(a *archive.Archive) error {
					return withOutput(stdout, c.String("output"), func(w io.Writer) error {
						_, err := runner.RunAndRecord(w, a, job)
						return err
					})
				})
			},
		},
		{
			Name:  "runs",
			Usage: "list archived runs",
			Action: func(c *cli.Context) error {
				return withArchive(c.GlobalString("archive"), true, func(a *archive.Archive) error {
					return listRuns(stdout, a)
				})
			},
		},
		{
			Name:      "replay",
			Usage:     "regenerate an archived run",
			ArgsUsage: "<run-id>",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "output, o", Usage: "write cases to this file instead of stdout"},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() != 1 {
					return fmt.Errorf("replay takes exactly one run ID, got %d arguments", c.NArg())
				}
				return withArchive(c.GlobalString("archive"), true, func(a *archive.Archive) error {
					return withOutput(stdout, c.String("output"), func(w io.Writer) error {
						_, err := runner.Replay(w, a, c.Args().First())
						return err
					})
				})
			},
		},
		{
			Name:      "rm",
			Usage:     "delete an archived run",
			ArgsUsage: "<run-id>",
			Action: func(c *cli.Context) error {
				if c.NArg() != 1 {
					return fmt.Errorf("rm takes exactly one run ID, got %d arguments", c.NArg())
				}
				return withArchive(c.GlobalString("archive"), true, func(a *archive.Archive) error {
					if err := a.Delete(c.Args().First()); err != nil {
						return err
					}
					logrus.WithField("run", c.Args().First()).Info("deleted run")
					return nil
				})
			},
		},
	}
	return app
}

// withArchive opens the archive at path for fn. An empty path passes a nil archive
// unless required is set.
func withArchive(path string, required bool, fn func(a *archive.Archive) error) error {
	if path == "" {
		if required {
			return errArchiveRequired
		}
		return fn(nil)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}
	a, err := archive.Open(path)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

// withOutput hands fn a file created at path, or stdout when path is empty
func withOutput(stdout io.Writer, path string, fn func(w io.Writer) error) error {
	if path == "" {
		return fn(stdout)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := fn(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func listGenerators(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDEFAULT COUNT\tDESCRIPTION")
	for _, name := range generator.List() {
		g, err := generator.Get(name, generator.Config{})
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\n", name, g.DefaultCount(), g.Description())
	}
	return tw.Flush()
}

func listRuns(w io.Writer, a *archive.Archive) error {
	runs, err := a.List()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tGENERATOR\tCASES\tSEED\tSIZE\tVERSION\tCREATED")
	for _, run := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%s\t%s\n",
			run.ID, run.Generator, run.Count, run.Seed,
			humanize.Bytes(uint64(run.Bytes)), run.Version,
			run.CreatedAt.Format(time.RFC3339))
	}
	return tw.Flush()
}

func main() {
	if err := newApp(os.Stdin, os.Stdout).Run(os.Args); err != nil {
		logrus.WithError(err).Error("casegen failed")
		os.Exit(1)
	}
}
