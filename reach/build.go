package reach

import (
	"github.com/katalvlaran/keyvault/keyset"
	"github.com/katalvlaran/keyvault/vaultgrid"
)

// queueItem pairs a cell with its BFS depth and the doors passed to reach it.
type queueItem struct {
	pos      vaultgrid.Position
	steps    int
	required keyset.KeySet
}

// walker encapsulates the mutable state of one source's traversal.
// Buffers are reused between sources.
type walker struct {
	grid    *vaultgrid.Grid
	opts    Options
	queue   []queueItem
	visited []bool
	nbrs    []vaultgrid.Position
}

// Build runs one BFS per source of g and returns the key graph.
// Sources are processed in ascending key order, so the result is the same
// for equal grids. Returns ErrNilGrid if g is nil.
func Build(g *vaultgrid.Grid, opts ...Option) (*Graph, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sources := g.Sources()
	graph := &Graph{
		sources: sources,
		edges:   make(map[keyset.Key][]Edge, len(sources)),
		all:     g.AllKeys(),
	}
	w := &walker{
		grid:    g,
		opts:    o,
		queue:   make([]queueItem, 0, g.Len()),
		visited: make([]bool, g.Len()),
		nbrs:    make([]vaultgrid.Position, 0, 4),
	}
	for _, src := range sources {
		start, _ := g.Position(src)
		edges := w.walk(src, start)
		graph.edges[src] = edges
		graph.count += len(edges)
	}

	return graph, nil
}

// walk traverses everything reachable from start and returns the edges from
// src to each key reached, in BFS order.
func (w *walker) walk(src keyset.Key, start vaultgrid.Position) []Edge {
	for i := range w.visited {
		w.visited[i] = false
	}
	w.queue = w.queue[:0]
	edges := []Edge{}

	w.visited[w.grid.Index(start)] = true
	w.queue = append(w.queue, queueItem{pos: start})
	for qi := 0; qi < len(w.queue); qi++ {
		item := w.queue[qi]
		w.nbrs = w.grid.Neighbors(w.nbrs[:0], item.pos)
		for _, next := range w.nbrs {
			idx := w.grid.Index(next)
			if w.visited[idx] {
				continue
			}
			w.visited[idx] = true

			cell := w.grid.At(next)
			required := item.required
			if cell.Kind == vaultgrid.Door {
				required = required.Add(cell.ID)
			}
			nextItem := queueItem{pos: next, steps: item.steps + 1, required: required}
			w.queue = append(w.queue, nextItem)

			if cell.Kind == vaultgrid.Key {
				e := Edge{From: src, To: cell.ID, Steps: nextItem.steps, Required: required}
				edges = append(edges, e)
				w.opts.OnEdge(e)
			}
		}
	}
	return edges
}
