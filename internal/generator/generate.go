package generator

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
)

// countingWriter tracks how many bytes reach the underlying writer
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// Generate writes the header and count cases from g to w, drawing from r.
// It returns the number of bytes written.
func Generate(w io.Writer, g Generator, r *rand.Rand, count int) (int64, error) {
	if count < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	if err := g.Validate(); err != nil {
		return 0, err
	}
	g.Init(r)

	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)

	if err := g.WriteHeader(bw, count); err != nil {
		return cw.n, fmt.Errorf("failed to write header: %w", err)
	}
	for i := 0; i < count; i++ {
		if err := g.WriteCase(bw); err != nil {
			return cw.n, fmt.Errorf("failed to write case %d: %w", i, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return cw.n, fmt.Errorf("failed to flush output: %w", err)
	}
	return cw.n, nil
}
