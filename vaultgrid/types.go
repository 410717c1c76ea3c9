package vaultgrid

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/keyvault/keyset"
)

// Sentinel errors for grid parsing.
var (
	// ErrEmptyGrid indicates the input text has no rows.
	ErrEmptyGrid = errors.New("vaultgrid: input grid must have at least one non-empty row")
	// ErrNoEntrance indicates no '@' cell was found.
	ErrNoEntrance = errors.New("vaultgrid: grid has no entrance")
	// ErrInvalidCell indicates a character that cannot be part of a map.
	ErrInvalidCell = errors.New("vaultgrid: invalid cell character")
	// ErrDuplicateKey indicates a key letter that appears more than once.
	ErrDuplicateKey = errors.New("vaultgrid: duplicate key")
	// ErrRegistryOverflow indicates more keys and entrances than a KeySet can hold.
	ErrRegistryOverflow = errors.New("vaultgrid: too many keys and entrances for key set width")
)

// ParseError reports a parse failure, with the 1-based line and column of the
// offending character when there is one.
type ParseError struct {
	Line   int  // 1-based; 0 when the error is not tied to a cell
	Column int  // 1-based; 0 when the error is not tied to a cell
	Char   byte // offending character, if any
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v %q at line %d, column %d", e.Err, e.Char, e.Line, e.Column)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Kind is the type of a grid cell.
type Kind uint8

const (
	// Wall blocks movement.
	Wall Kind = iota
	// Open is walkable floor.
	Open
	// Key holds a collectible key.
	Key
	// Door is walkable during graph building but requires its key.
	Door
	// Entrance is a start position.
	Entrance
)

func (k Kind) String() string {
	switch k {
	case Wall:
		return "wall"
	case Open:
		return "open"
	case Key:
		return "key"
	case Door:
		return "door"
	case Entrance:
		return "entrance"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Cell is one grid cell. ID is meaningful for Key, Door and Entrance cells:
// the key a Key cell holds, the key a Door requires, or the virtual key of an
// Entrance.
type Cell struct {
	Kind Kind
	ID   keyset.Key
}

// Walkable reports whether a walker may stand on c.
func (c Cell) Walkable() bool { return c.Kind != Wall }

// Position is a grid coordinate; X is the column, Y the row, both 0-based.
type Position struct {
	X, Y int
}

func (p Position) String() string { return fmt.Sprintf("%d,%d", p.X, p.Y) }

// Options configures parsing.
type Options struct {
	// Strict rejects floor characters other than '.'.
	Strict bool
}

// Option is a functional option for Parse.
type Option func(*Options)

// WithStrict makes Parse reject any character outside ".#@ a-zA-Z".
func WithStrict() Option {
	return func(o *Options) {
		o.Strict = true
	}
}

// DefaultOptions returns lenient parsing options.
func DefaultOptions() Options {
	return Options{Strict: false}
}

// Grid is a parsed vault map. It is immutable once built.
// Width and Height define dimensions; cells are stored row-major.
type Grid struct {
	Width, Height int

	cells     []Cell
	keys      map[keyset.Key]Position
	present   keyset.KeySet
	entrances []Position
}
