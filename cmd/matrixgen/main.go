// Command matrixgen prints random 5x5 integer matrices with their determinants.
package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"pkg.jsn.cam/casegen/internal/generator"
	"pkg.jsn.cam/casegen/internal/runner"
)

func newApp(stdout io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "matrixgen"
	app.Usage = "print 100 random 5x5 integer matrices, each followed by its determinant"
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
		_, _, err = runner.Run(stdout, runner.Job{
			Generator: "matrix",
			Config:    generator.Config{Size: generator.DefaultMatrixSize},
			Count:     generator.DefaultMatrixCount,
			Seed:      seed,
		})
		return err
	}
	return app
}

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		logrus.WithError(err).Error("matrixgen failed")
		os.Exit(1)
	}
}
