package generator

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

const (
	DefaultMatrixCount = 100
	DefaultMatrixSize  = 5
	DefaultMatrixLow   = -25
	DefaultMatrixHigh  = 25 // exclusive
)

var errNonFinite = errors.New("determinant is not finite")

// MatrixCase is a square integer matrix and its truncated determinant
type MatrixCase struct {
	Entries [][]int
	Det     int64
}

// MatrixGenerator generates square integer matrices paired with their determinants.
// Entries are drawn uniformly from [Low, High).
type MatrixGenerator struct {
	Size int
	Low  int
	High int
	rand *rand.Rand
	buf  []byte
}

// NewMatrixGenerator returns a generator with the default bounds
func NewMatrixGenerator(size int) *MatrixGenerator {
	return &MatrixGenerator{Size: size, Low: DefaultMatrixLow, High: DefaultMatrixHigh}
}

func (g *MatrixGenerator) Init(r *rand.Rand) {
	g.rand = r
}

// Validate rejects an empty matrix and an empty entry range
func (g *MatrixGenerator) Validate() error {
	if g.Size < 1 {
		return fmt.Errorf("%w: matrix size %d", ErrInvalidConfig, g.Size)
	}
	if g.Low >= g.High {
		return fmt.Errorf("%w: empty entry range [%d, %d)", ErrInvalidConfig, g.Low, g.High)
	}
	return nil
}

// Next draws one matrix and computes its determinant
func (g *MatrixGenerator) Next() (MatrixCase, error) {
	entries := make([][]int, g.Size)
	span := g.High - g.Low
	for i := range entries {
		row := make([]int, g.Size)
		for j := range row {
			row[j] = g.Low + g.rand.IntN(span)
		}
		entries[i] = row
	}

	det, err := Determinant(entries)
	if err != nil {
		return MatrixCase{}, err
	}
	return MatrixCase{Entries: entries, Det: RoundDeterminant(det)}, nil
}

// WriteHeader writes the case count and the matrix size on separate lines
func (g *MatrixGenerator) WriteHeader(w io.Writer, count int) error {
	g.buf = strconv.AppendInt(g.buf[:0], int64(count), 10)
	g.buf = append(g.buf, '\n')
	g.buf = strconv.AppendInt(g.buf, int64(g.Size), 10)
	g.buf = append(g.buf, '\n')
	_, err := w.Write(g.buf)
	return err
}

// WriteCase writes one row per line followed by the determinant line
func (g *MatrixGenerator) WriteCase(w io.Writer) error {
	c, err := g.Next()
	if err != nil {
		return err
	}

	g.buf = g.buf[:0]
	for _, row := range c.Entries {
		for j, v := range row {
			if j > 0 {
				g.buf = append(g.buf, ' ')
			}
			g.buf = strconv.AppendInt(g.buf, int64(v), 10)
		}
		g.buf = append(g.buf, '\n')
	}
	g.buf = strconv.AppendInt(g.buf, c.Det, 10)
	g.buf = append(g.buf, '\n')

	_, err = w.Write(g.buf)
	return err
}

func (g *MatrixGenerator) Description() string {
	return "Square integer matrices followed by their determinant"
}

func (g *MatrixGenerator) DefaultCount() int {
	return DefaultMatrixCount
}

// Determinant computes the determinant of a square integer matrix in floating point
func Determinant(entries [][]int) (float64, error) {
	n := len(entries)
	data := make([]float64, 0, n*n)
	for _, row := range entries {
		if len(row) != n {
			return 0, &ComputationError{Op: "determinant", Err: fmt.Errorf("row of length %d in %dx%d matrix", len(row), n, n)}
		}
		for _, v := range row {
			data = append(data, float64(v))
		}
	}
	if n == 0 {
		return 1, nil
	}

	det := mat.Det(mat.NewDense(n, n, data))
	if math.IsNaN(det) || math.IsInf(det, 0) {
		return 0, &ComputationError{Op: "determinant", Err: errNonFinite}
	}
	return det, nil
}

// RoundDeterminant rounds det to one decimal place, half to even, then truncates toward zero
func RoundDeterminant(det float64) int64 {
	rounded := math.RoundToEven(det*10) / 10
	return int64(math.Trunc(rounded))
}
