// Package reach builds the compact key graph of a vault grid.
//
// For every key and every entrance of a vaultgrid.Grid, Build runs one full
// breadth-first traversal over the walkable cells. Doors never block the
// traversal; instead each door passed adds its key to a running
// required-keys set carried by every cell reached beyond it. When a key cell
// is first reached, one directed Edge is emitted:
//
//	(source, key, steps, required)
//
// Every cell is visited at most once per source, so only the first
// BFS-shortest path to a key is kept, even when another path of the same
// length would need a different set of doors.
//
// Complexity:
//
//   - Build: O(S × W×H) time, O(W×H + S×K) memory, for S sources and K keys.
//
// Options:
//
//   - WithOnEdge(fn): called once per emitted edge, in emission order.
//
// Errors:
//
//   - ErrNilGrid: Build was given a nil grid.
//
// The resulting Graph is immutable. ToDOT renders it as Graphviz DOT and
// RenderSVG turns that into an SVG document.
package reach
