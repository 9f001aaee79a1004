package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrixgenOutput(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, newApp(&out).Run([]string{"matrixgen", "--seed", "2024"}))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 2+600)
	assert.Equal(t, "100", lines[0])
	assert.Equal(t, "5", lines[1])

	for c := 0; c < 100; c++ {
		block := lines[2+c*6 : 2+(c+1)*6]
		for _, row := range block[:5] {
			assert.Len(t, strings.Fields(row), 5)
		}
		assert.Len(t, strings.Fields(block[5]), 1)
	}
}

func TestMatrixgenSeedIsReproducible(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, newApp(&a).Run([]string{"matrixgen", "--seed", "7"}))
	require.NoError(t, newApp(&b).Run([]string{"matrixgen", "--seed", "7"}))
	assert.Equal(t, a.String(), b.String())
}

func TestMatrixgenBadSeed(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, newApp(&out).Run([]string{"matrixgen", "--seed", "x"}))
}
