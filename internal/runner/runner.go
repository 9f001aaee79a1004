// Package runner ties the generator registry to the run archive and to the command-line tools.
package runner

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"pkg.jsn.cam/casegen/internal/archive"
	"pkg.jsn.cam/casegen/internal/generator"
)

// Job is one request to generate cases
type Job struct {
	Generator string
	Config    generator.Config
	// Count < 0 selects the generator's default count
	Count int
	Seed  uint64
}

// NewSeed picks a fresh seed from the runtime's randomly seeded source
func NewSeed() uint64 {
	return rand.Uint64()
}

// ParseSeed parses a decimal seed; an empty string picks a fresh one
func ParseSeed(s string) (uint64, error) {
	if s == "" {
		return NewSeed(), nil
	}
	seed, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seed %q: %w", s, err)
	}
	return seed, nil
}

// SetupLogging sends logs to stderr at the given level; stdout carries case data only
func SetupLogging(level string) error {
	lv, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(lv)
	return nil
}

// Run generates job into w and returns the job as executed, with its count resolved
func Run(w io.Writer, job Job) (Job, int64, error) {
	g, err := generator.Get(job.Generator, job.Config)
	if err != nil {
		return job, 0, err
	}
	if job.Count < 0 {
		job.Count = g.DefaultCount()
	}

	n, err := generator.Generate(w, g, generator.NewRand(job.Seed), job.Count)
	if err != nil {
		return job, n, fmt.Errorf("generate %s: %w", job.Generator, err)
	}

	logrus.WithFields(logrus.Fields{
		"generator": job.Generator,
		"cases":     job.Count,
		"seed":      job.Seed,
		"bytes":     humanize.Bytes(uint64(n)),
	}).Debug("generated cases")
	return job, n, nil
}

// RunAndRecord runs job and, when a is not nil, records it so it can be replayed
func RunAndRecord(w io.Writer, a *archive.Archive, job Job) (archive.Run, error) {
	job, n, err := Run(w, job)
	if err != nil {
		return archive.Run{}, err
	}
	run := archive.Run{
		Generator: job.Generator,
		Config:    job.Config,
		Count:     job.Count,
		Seed:      job.Seed,
		Bytes:     n,
	}
	if a == nil {
		return run, nil
	}

	run, err = a.Record(run)
	if err != nil {
		return run, err
	}
	logrus.WithFields(logrus.Fields{
		"run":       run.ID,
		"generator": run.Generator,
		"bytes":     humanize.Bytes(uint64(run.Bytes)),
	}).Info("recorded run")
	return run, nil
}

// Replay regenerates an archived run into w
func Replay(w io.Writer, a *archive.Archive, id string) (archive.Run, error) {
	run, err := a.Replayable(id)
	if err != nil {
		return run, err
	}

	_, n, err := Run(w, Job{
		Generator: run.Generator,
		Config:    run.Config,
		Count:     run.Count,
		Seed:      run.Seed,
	})
	if err != nil {
		return run, err
	}
	if n != run.Bytes {
		logrus.WithFields(logrus.Fields{
			"run":      run.ID,
			"recorded": humanize.Bytes(uint64(run.Bytes)),
			"replayed": humanize.Bytes(uint64(n)),
		}).Warn("replayed output size differs from the recorded run")
	}
	return run, nil
}
