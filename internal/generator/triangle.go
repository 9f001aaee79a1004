package generator

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	DefaultTriangleCount = 1000
	DefaultRadius        = 100
	DefaultJitter        = 0.5
)

// Triangle is three vertices clustered around a common origin
type Triangle struct {
	Vertices [3]r3.Vec
}

// TriangleGenerator scatters small triangles through a cube of side Radius centred on zero.
// Every vertex coordinate is the origin coordinate plus a uniform offset in [-Jitter, Jitter].
type TriangleGenerator struct {
	Radius float64
	Jitter float64
	rand   *rand.Rand
	buf    []byte
}

// NewTriangleGenerator returns a generator with the default jitter
func NewTriangleGenerator(radius float64) *TriangleGenerator {
	return &TriangleGenerator{Radius: radius, Jitter: DefaultJitter}
}

func (g *TriangleGenerator) Init(r *rand.Rand) {
	g.rand = r
}

// Validate rejects a non-positive radius and a negative jitter
func (g *TriangleGenerator) Validate() error {
	if !(g.Radius > 0) {
		return fmt.Errorf("%w: radius %v", ErrInvalidConfig, g.Radius)
	}
	if !(g.Jitter >= 0) {
		return fmt.Errorf("%w: jitter %v", ErrInvalidConfig, g.Jitter)
	}
	return nil
}

// uniform returns a value drawn uniformly from [lo, hi)
func (g *TriangleGenerator) uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*g.rand.Float64()
}

// Next draws an origin inside the bounding cube and perturbs it once per vertex
func (g *TriangleGenerator) Next() Triangle {
	half := g.Radius / 2
	origin := r3.Vec{
		X: g.uniform(-half, half),
		Y: g.uniform(-half, half),
		Z: g.uniform(-half, half),
	}

	var t Triangle
	for i := range t.Vertices {
		t.Vertices[i] = r3.Add(origin, r3.Vec{
			X: g.uniform(-g.Jitter, g.Jitter),
			Y: g.uniform(-g.Jitter, g.Jitter),
			Z: g.uniform(-g.Jitter, g.Jitter),
		})
	}
	return t
}

// WriteHeader writes the case count
func (g *TriangleGenerator) WriteHeader(w io.Writer, count int) error {
	g.buf = strconv.AppendInt(g.buf[:0], int64(count), 10)
	g.buf = append(g.buf, '\n')
	_, err := w.Write(g.buf)
	return err
}

// WriteCase writes one vertex per line as three space-separated coordinates
func (g *TriangleGenerator) WriteCase(w io.Writer) error {
	t := g.Next()

	g.buf = g.buf[:0]
	for _, v := range t.Vertices {
		g.buf = strconv.AppendFloat(g.buf, v.X, 'g', -1, 64)
		g.buf = append(g.buf, ' ')
		g.buf = strconv.AppendFloat(g.buf, v.Y, 'g', -1, 64)
		g.buf = append(g.buf, ' ')
		g.buf = strconv.AppendFloat(g.buf, v.Z, 'g', -1, 64)
		g.buf = append(g.buf, '\n')
	}

	_, err := w.Write(g.buf)
	return err
}

func (g *TriangleGenerator) Description() string {
	return "3D triangles: three lines of x y z per triangle"
}

func (g *TriangleGenerator) DefaultCount() int {
	return DefaultTriangleCount
}
