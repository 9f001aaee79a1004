package generator

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestGenerateRejectsNegativeCount(t *testing.T) {
	var buf bytes.Buffer
	_, err := Generate(&buf, NewMatrixGenerator(5), NewRand(1), -1)
	assert.ErrorIs(t, err, ErrInvalidCount)
	assert.Zero(t, buf.Len())
}

func TestGenerateRejectsInvalidConfig(t *testing.T) {
	var buf bytes.Buffer
	_, err := Generate(&buf, NewTriangleGenerator(0), NewRand(1), 3)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Zero(t, buf.Len())
}

func TestGenerateReportsWriteFailure(t *testing.T) {
	_, err := Generate(failingWriter{}, NewMatrixGenerator(5), NewRand(1), 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
