package reach

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/keyvault/keyset"
)

// ErrNilGrid is returned when Build is called with a nil grid.
var ErrNilGrid = errors.New("reach: grid is nil")

// Edge is the shortest corridor walk from one key (or entrance) to another
// key, with the doors met along that walk.
type Edge struct {
	From, To keyset.Key
	Steps    int
	Required keyset.KeySet
}

func (e Edge) String() string {
	return fmt.Sprintf("%s->%s(%d,%s)", e.From, e.To, e.Steps, e.Required)
}

// Option configures Build.
type Option func(*Options)

// Options holds the Build hooks.
type Options struct {
	// OnEdge is called for each edge as it is emitted.
	OnEdge func(Edge)
}

// DefaultOptions returns Options with a no-op OnEdge hook.
func DefaultOptions() Options {
	return Options{
		OnEdge: func(Edge) {},
	}
}

// WithOnEdge registers a callback run for every emitted edge.
func WithOnEdge(fn func(Edge)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEdge = fn
		}
	}
}

// Graph is the directed key graph. It is immutable once built.
type Graph struct {
	sources []keyset.Key
	edges   map[keyset.Key][]Edge
	all     keyset.KeySet
	count   int
}

// From returns the edges leaving k in emission order.
// The slice must not be modified.
func (g *Graph) From(k keyset.Key) []Edge { return g.edges[k] }

// Sources returns the BFS origins in ascending key order.
func (g *Graph) Sources() []keyset.Key {
	out := make([]keyset.Key, len(g.sources))
	copy(out, g.sources)
	return out
}

// HasSource reports whether k was a BFS origin.
func (g *Graph) HasSource(k keyset.Key) bool {
	_, ok := g.edges[k]
	return ok
}

// Entrances returns the entrance sources in ascending order.
func (g *Graph) Entrances() []keyset.Key {
	var out []keyset.Key
	for _, k := range g.sources {
		if k.IsEntrance() {
			out = append(out, k)
		}
	}
	return out
}

// AllKeys returns the set of keys that must be collected.
func (g *Graph) AllKeys() keyset.KeySet { return g.all }

// Len returns the total number of edges.
func (g *Graph) Len() int { return g.count }

// Edges returns every edge, grouped by source in ascending order and in
// emission order within a source.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.count)
	for _, k := range g.sources {
		out = append(out, g.edges[k]...)
	}
	return out
}
