package vaultgrid

import (
	"strings"

	"github.com/katalvlaran/keyvault/keyset"
)

// offsets lists the 4-connected neighbour deltas in S, N, W, E order.
// BFS keeps only the first path it finds to a cell, so among equally short
// routes this order decides which doors a key edge requires.
var offsets = [4][2]int{{0, 1}, {0, -1}, {-1, 0}, {1, 0}}

// Parse reads a vault map from text, one row per line.
// Trailing blank lines and carriage returns are ignored.
// Algorithmic complexity: O(W×H) time and memory.
func Parse(text string, opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rows := splitRows(text)
	if len(rows) == 0 {
		return nil, &ParseError{Err: ErrEmptyGrid}
	}
	w := 0
	for _, row := range rows {
		if len(row) > w {
			w = len(row)
		}
	}

	// First pass: validate characters and register keys, so that a second
	// pass can tell which doors stay locked.
	g := &Grid{
		Width:  w,
		Height: len(rows),
		cells:  make([]Cell, w*len(rows)),
		keys:   make(map[keyset.Key]Position),
	}
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			c := row[x]
			if !validChar(c, o.Strict) {
				return nil, &ParseError{Line: y + 1, Column: x + 1, Char: c, Err: ErrInvalidCell}
			}
			switch {
			case c == '@':
				if len(g.entrances) == keyset.MaxEntrances {
					return nil, &ParseError{Line: y + 1, Column: x + 1, Char: c, Err: ErrRegistryOverflow}
				}
				g.entrances = append(g.entrances, Position{x, y})
			case 'a' <= c && c <= 'z':
				k, _ := keyset.FromLetter(c)
				if g.present.Has(k) {
					return nil, &ParseError{Line: y + 1, Column: x + 1, Char: c, Err: ErrDuplicateKey}
				}
				g.present = g.present.Add(k)
				g.keys[k] = Position{x, y}
			}
		}
	}
	if len(g.entrances) == 0 {
		return nil, &ParseError{Err: ErrNoEntrance}
	}

	// Second pass: type every cell. Cells beyond a short row stay Wall.
	entrance := 0
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			g.cells[g.index(x, y)] = g.classify(row[x], &entrance)
		}
	}

	return g, nil
}

// classify maps one character to its cell. entrance counts the entrances
// seen so far in row-major order.
func (g *Grid) classify(c byte, entrance *int) Cell {
	switch {
	case c == '#' || c == ' ':
		return Cell{Kind: Wall}
	case c == '@':
		cell := Cell{Kind: Entrance, ID: keyset.Entrance(*entrance)}
		*entrance++
		return cell
	case 'a' <= c && c <= 'z':
		k, _ := keyset.FromLetter(c)
		return Cell{Kind: Key, ID: k}
	case 'A' <= c && c <= 'Z':
		k, _ := keyset.FromLetter(c)
		if !g.present.Has(k) {
			return Cell{Kind: Open}
		}
		return Cell{Kind: Door, ID: k}
	}
	return Cell{Kind: Open}
}

// splitRows splits text into lines, dropping '\r' and trailing empty lines.
func splitRows(text string) []string {
	rows := strings.Split(text, "\n")
	for i := range rows {
		rows[i] = strings.TrimSuffix(rows[i], "\r")
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return rows
}

// validChar reports whether c may appear in a map.
func validChar(c byte, strict bool) bool {
	switch {
	case c == '#' || c == ' ' || c == '.' || c == '@':
		return true
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		return true
	case strict:
		return false
	}
	return c > ' ' && c < 0x7f
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the cell at p. Positions outside the grid are walls.
// Complexity: O(1).
func (g *Grid) At(p Position) Cell {
	if !g.InBounds(p) {
		return Cell{Kind: Wall}
	}
	return g.cells[g.index(p.X, p.Y)]
}

// Neighbors appends to dst the walkable 4-connected neighbours of p in
// S, N, W, E order and returns the extended slice.
func (g *Grid) Neighbors(dst []Position, p Position) []Position {
	for _, d := range offsets {
		q := Position{p.X + d[0], p.Y + d[1]}
		if g.At(q).Walkable() {
			dst = append(dst, q)
		}
	}
	return dst
}

// index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Index returns the row-major index of p. p must be in bounds.
func (g *Grid) Index(p Position) int {
	return g.index(p.X, p.Y)
}

// Len returns the number of cells, Width×Height.
func (g *Grid) Len() int { return len(g.cells) }

// AllKeys returns the set of keys present in the grid.
func (g *Grid) AllKeys() keyset.KeySet { return g.present }

// Entrances returns the entrance positions in row-major order.
// The i-th position belongs to keyset.Entrance(i).
func (g *Grid) Entrances() []Position {
	out := make([]Position, len(g.entrances))
	copy(out, g.entrances)
	return out
}

// Position returns where k sits: the key cell for a letter, the entrance cell
// for an entrance slot.
func (g *Grid) Position(k keyset.Key) (Position, bool) {
	if k.IsEntrance() {
		i := k.EntranceIndex()
		if i >= len(g.entrances) {
			return Position{}, false
		}
		return g.entrances[i], true
	}
	p, ok := g.keys[k]
	return p, ok
}

// Sources returns every key in ascending order followed by every entrance.
// These are the BFS origins of the reachability graph.
func (g *Grid) Sources() []keyset.Key {
	out := g.present.Keys()
	for i := range g.entrances {
		out = append(out, keyset.Entrance(i))
	}
	return out
}

// String renders the normalised grid: padded rows, degraded doors as '.'.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := g.cells[g.index(x, y)]
			switch c.Kind {
			case Wall:
				b.WriteByte('#')
			case Open:
				b.WriteByte('.')
			case Key:
				b.WriteByte(c.ID.Letter())
			case Door:
				b.WriteByte(c.ID.Letter() - 'a' + 'A')
			case Entrance:
				b.WriteByte('@')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
