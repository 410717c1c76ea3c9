package search

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/keyvault/keyset"
	"github.com/katalvlaran/keyvault/reach"
)

// MinSteps returns the fewest steps that collect every key of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. The start (Start option, or the first entrance) must be a source of g
//     (ErrStartNotFound).
//
// A graph with no keys is solved in 0 steps. If the frontier empties first,
// the error wraps ErrUnreachableGoal.
func MinSteps(g *reach.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.hasStart {
		entrances := g.Entrances()
		if len(entrances) == 0 {
			return Result{}, ErrStartNotFound
		}
		cfg.Start = entrances[0]
	}
	if !g.HasSource(cfg.Start) {
		return Result{}, fmt.Errorf("%w: %s", ErrStartNotFound, cfg.Start)
	}

	r := &runner{
		g:    g,
		opts: cfg,
		goal: g.AllKeys(),
		best: make(map[State]int),
	}
	if cfg.ReturnPath {
		r.prev = make(map[State]State)
	}
	r.init()
	return r.process()
}

// runner holds the mutable state of a single search.
type runner struct {
	g        *reach.Graph
	opts     Options
	goal     keyset.KeySet
	origin   State
	best     map[State]int   // best known cost per state
	prev     map[State]State // predecessor per state, nil unless ReturnPath
	pq       statePQ
	expanded int
}

// init pushes the start state at cost 0. Starting on a letter key holds it.
func (r *runner) init() {
	r.origin = State{At: r.opts.Start}
	if !r.opts.Start.IsEntrance() {
		r.origin.Collected = keyset.Of(r.opts.Start)
	}
	r.best[r.origin] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &stateItem{state: r.origin, cost: 0})
}

// process pops states in ascending cost until one holds every key.
func (r *runner) process() (Result, error) {
	var reached keyset.KeySet
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*stateItem)
		if item.cost > r.best[item.state] {
			continue // stale entry
		}
		reached = reached.Union(item.state.Collected)
		if item.state.Collected == r.goal {
			return Result{
				Steps:    item.cost,
				Order:    r.order(item.state),
				Expanded: r.expanded,
			}, nil
		}
		r.expanded++
		r.relax(item)
	}
	return Result{}, fmt.Errorf("%w: missing %s", ErrUnreachableGoal, r.goal.Without(reached))
}

// relax follows every edge out of item whose doors are already open.
func (r *runner) relax(item *stateItem) {
	from := item.state
	for _, e := range r.g.From(from.At) {
		if !from.Collected.ContainsAll(e.Required) {
			continue
		}
		next := State{At: e.To, Collected: from.Collected.Add(e.To)}
		cost := item.cost + e.Steps
		if old, ok := r.best[next]; ok && cost >= old {
			continue
		}
		r.best[next] = cost
		if r.prev != nil {
			r.prev[next] = from
		}
		r.opts.OnRelax(from, next, item.cost, cost)
		heap.Push(&r.pq, &stateItem{state: next, cost: cost})
	}
}

// order walks the predecessor chain back from s and returns the keys in
// the order they were reached. Returns nil when paths are not tracked.
func (r *runner) order(s State) []keyset.Key {
	if r.prev == nil {
		return nil
	}
	var rev []keyset.Key
	for at := s; at != r.origin; at = r.prev[at] {
		rev = append(rev, at.At)
	}
	out := make([]keyset.Key, len(rev))
	for i, k := range rev {
		out[len(rev)-1-i] = k
	}
	return out
}

// stateItem is a heap entry: a state and the cost it was pushed with.
type stateItem struct {
	state State
	cost  int
}

// statePQ is a min-heap of *stateItem ordered by cost, then collected set,
// then key.
type statePQ []*stateItem

func (pq statePQ) Len() int { return len(pq) }

func (pq statePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	if a.state.Collected != b.state.Collected {
		return a.state.Collected < b.state.Collected
	}
	return a.state.At < b.state.At
}

func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
