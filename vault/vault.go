package vault

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/keyvault/puzzle"
	"github.com/katalvlaran/keyvault/quadrant"
	"github.com/katalvlaran/keyvault/reach"
	"github.com/katalvlaran/keyvault/search"
	"github.com/katalvlaran/keyvault/vaultgrid"
)

// Options configures a Solver.
type Options struct {
	// Logger receives debug records for each pipeline stage.
	Logger *log.Logger
	// Strict enables vaultgrid.WithStrict.
	Strict bool
}

// Option is a functional option for New.
type Option func(*Options)

// WithLogger sets the logger. A nil logger keeps the default, which discards.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithStrict rejects floor characters other than '.'.
func WithStrict() Option {
	return func(o *Options) {
		o.Strict = true
	}
}

// Solver answers both parts of the vault puzzle.
type Solver struct {
	logger    *log.Logger
	parseOpts []vaultgrid.Option
}

// New returns a Solver configured by opts.
func New(opts ...Option) *Solver {
	o := Options{Logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(&o)
	}
	s := &Solver{logger: o.Logger}
	if o.Strict {
		s.parseOpts = append(s.parseOpts, vaultgrid.WithStrict())
	}
	return s
}

// Solve returns the minimal step count for in.Part as decimal text.
func (s *Solver) Solve(in puzzle.Input) (string, error) {
	var (
		n   int
		err error
	)
	switch in.Part {
	case puzzle.PartOne:
		n, err = s.MinSteps(in.Text)
	case puzzle.PartTwo:
		n, err = s.SplitSteps(in.Text)
	default:
		return "", fmt.Errorf("vault: %w: %s", puzzle.ErrUnknownPart, in.Part)
	}
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}

// Graph parses text and builds its key graph.
func (s *Solver) Graph(text string) (*reach.Graph, error) {
	grid, err := vaultgrid.Parse(text, s.parseOpts...)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("parsed grid",
		"width", grid.Width,
		"height", grid.Height,
		"keys", grid.AllKeys().String(),
		"entrances", len(grid.Entrances()))

	g, err := reach.Build(grid)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("built key graph", "sources", len(g.Sources()), "edges", g.Len())
	return g, nil
}

// MinSteps solves a single-entrance map.
func (s *Solver) MinSteps(text string) (int, error) {
	g, err := s.Graph(text)
	if err != nil {
		return 0, err
	}
	res, err := search.MinSteps(g)
	if err != nil {
		return 0, err
	}
	s.logger.Debug("search finished", "steps", res.Steps, "expanded", res.Expanded)
	return res.Steps, nil
}

// SplitSteps solves the four-quadrant variant of a map.
func (s *Solver) SplitSteps(text string) (int, error) {
	return quadrant.Sum(text, s.MinSteps)
}

// Part1 solves part one with a default Solver.
func Part1(text string) (string, error) {
	return New().Solve(puzzle.Input{Text: text, Part: puzzle.PartOne})
}

// Part2 solves part two with a default Solver.
func Part2(text string) (string, error) {
	return New().Solve(puzzle.Input{Text: text, Part: puzzle.PartTwo})
}
