package generator

import (
	"io"
	"math/rand/v2"
)

// Generator produces test cases for one downstream consumer
type Generator interface {
	// Init attaches the random source every case is drawn from.
	// Each generator owns its source so a run can be reproduced from its seed.
	Init(r *rand.Rand)

	// Validate reports a configuration no case can be drawn from
	Validate() error

	// WriteHeader writes the lines that precede the first case
	WriteHeader(w io.Writer, count int) error

	// WriteCase draws one case and writes it
	WriteCase(w io.Writer) error

	// Description returns a human-readable description of the data format
	Description() string

	// DefaultCount returns the suggested number of cases to generate
	DefaultCount() int
}

// Config carries the tunable parameters of every registered generator.
// Fields a generator does not use are ignored; zero values select defaults.
type Config struct {
	Size   int     `json:"size,omitempty"`
	Radius float64 `json:"radius,omitempty"`
}

// seedStream is the PCG stream selector; changing it changes every seeded run.
const seedStream = 0x9e3779b97f4a7c15

// NewRand returns a PCG-backed source for seed
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^seedStream))
}
