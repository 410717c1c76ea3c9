package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/keyvault/keyset"
)

// Sentinel errors returned by MinSteps.
var (
	// ErrNilGraph indicates that a nil *reach.Graph was passed.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrStartNotFound indicates that the start key is not a graph source,
	// or that the graph has no entrance to default to.
	ErrStartNotFound = errors.New("search: start not found in graph")

	// ErrUnreachableGoal indicates the frontier emptied before every key was
	// collected.
	ErrUnreachableGoal = errors.New("search: not all keys can be collected")
)

// State is a search node: where the walker stands and what it holds.
type State struct {
	At        keyset.Key
	Collected keyset.KeySet
}

func (s State) String() string {
	return fmt.Sprintf("(%s,%s)", s.At, s.Collected)
}

// Result is the outcome of a successful search.
type Result struct {
	// Steps is the minimal total walk length.
	Steps int
	// Order lists keys in collection order; nil unless WithReturnPath was set.
	Order []keyset.Key
	// Expanded counts the states popped and expanded.
	Expanded int
}

// Options configures MinSteps.
type Options struct {
	Start      keyset.Key
	hasStart   bool
	ReturnPath bool
	// OnRelax is called for every accepted transition from → to.
	OnRelax func(from, to State, fromCost, toCost int)
}

// Option is a functional option for MinSteps.
type Option func(*Options)

// Start sets the source the walker begins at.
func Start(k keyset.Key) Option {
	return func(o *Options) {
		o.Start = k
		o.hasStart = true
	}
}

// WithReturnPath records predecessors so that Result.Order can be rebuilt.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithOnRelax registers a callback run on each accepted transition.
func WithOnRelax(fn func(from, to State, fromCost, toCost int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// DefaultOptions returns Options with no explicit start, no path tracking
// and a no-op OnRelax hook.
func DefaultOptions() Options {
	return Options{
		OnRelax: func(State, State, int, int) {},
	}
}
