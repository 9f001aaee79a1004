// Command trianglegen reads a triangle count from stdin and prints that many random 3D triangles.
package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"pkg.jsn.cam/casegen/internal/generator"
	"pkg.jsn.cam/casegen/internal/runner"
)

func newApp(stdin io.Reader, stdout io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "trianglegen"
	app.Usage = "read N from stdin and print N random triangles, one vertex per line"
	app.HideVersion = true
	app.Writer = stdout

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "seed",
			Usage:  "random seed (default: fresh each run)",
			EnvVar: "CASEGEN_SEED",
		},
		cli.StringFlag{
			Name:   "log, l",
			Usage:  "log level: debug,info,warning,error",
			Value:  "warning",
			EnvVar: "CASEGEN_LOG",
		},
	}

	app.Before = func(c *cli.Context) error {
		return runner.SetupLogging(c.String("log"))
	}

	app.Action = func(c *cli.Context) error {
		seed, err := runner.ParseSeed(c.String("seed"))
		if err != nil {
			return err
		}
		count, err := generator.ReadCount(stdin)
		if err != nil {
			return err
		}
		_, _, err = runner.Run(stdout, runner.Job{
			Generator: "triangle",
			Config:    generator.Config{Radius: generator.DefaultRadius},
			Count:     count,
			Seed:      seed,
		})
		return err
	}
	return app
}

func main() {
	if err := newApp(os.Stdin, os.Stdout).Run(os.Args); err != nil {
		logrus.WithError(err).Error("trianglegen failed")
		os.Exit(1)
	}
}
