package generator

import (
	"fmt"
	"sort"
)

// Registry maps generator names to factories.
// Factories take the Config so callers can override sizes without touching the map.
var Registry = map[string]func(Config) Generator{
	"matrix": func(c Config) Generator {
		size := c.Size
		if size == 0 {
			size = DefaultMatrixSize
		}
		return NewMatrixGenerator(size)
	},
	"triangle": func(c Config) Generator {
		radius := c.Radius
		if radius == 0 {
			radius = DefaultRadius
		}
		return NewTriangleGenerator(radius)
	},
}

// Get returns a validated generator by name
func Get(name string, cfg Config) (Generator, error) {
	factory, exists := Registry[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGenerator, name)
	}
	g := factory(cfg)
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// List returns all available generator names in sorted order
func List() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
