package quadrant

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrGridTooSmall indicates the grid cannot hold a 3×3 centre.
	ErrGridTooSmall = errors.New("quadrant: grid must be at least 3×3")
	// ErrNoCentreEntrance indicates the centre is neither a single '@' nor
	// an already split centre.
	ErrNoCentreEntrance = errors.New("quadrant: centre cell is not the entrance")
)

// Quadrant names one of the four sub-vaults.
type Quadrant int

// Quadrants in Split order.
const (
	TopLeft Quadrant = iota
	TopRight
	BottomLeft
	BottomRight
)

func (q Quadrant) String() string {
	switch q {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	}
	return fmt.Sprintf("Quadrant(%d)", int(q))
}

// All lists the quadrants in Split order.
var All = [4]Quadrant{TopLeft, TopRight, BottomLeft, BottomRight}

// Split rewrites the centre of text and returns the four quadrant maps,
// indexed by Quadrant. Each map keeps its rows newline-terminated.
//
// The centre cell at (cols/2, rows/2) must be '@', or the map must already
// be split: a wall cross at the centre with '@' on its four diagonals.
func Split(text string) ([4]string, error) {
	var out [4]string
	rows := strings.Split(strings.TrimRight(strings.ReplaceAll(text, "\r\n", "\n"), "\n"), "\n")
	if len(rows) < 3 || len(rows[0]) < 3 {
		return out, ErrGridTooSmall
	}
	cy, cx := len(rows)/2, len(rows[0])/2
	if charAt(rows, cx, cy) != '@' && !presplit(rows, cx, cy) {
		return out, fmt.Errorf("%w: found %q at %d,%d", ErrNoCentreEntrance, charAt(rows, cx, cy), cx, cy)
	}

	var parts [4]strings.Builder
	for y, row := range rows {
		top := y <= cy
		for x := 0; x < len(row); x++ {
			q := pick(top, x <= cx)
			parts[q].WriteByte(rewrite(row[x], cx-x, cy-y))
		}
		if top {
			parts[TopLeft].WriteByte('\n')
			parts[TopRight].WriteByte('\n')
		} else {
			parts[BottomLeft].WriteByte('\n')
			parts[BottomRight].WriteByte('\n')
		}
	}
	for i := range parts {
		out[i] = parts[i].String()
	}
	return out, nil
}

// Sum splits text and adds up solve over the four quadrants.
// The first failing quadrant aborts with its name in the error.
func Sum(text string, solve func(string) (int, error)) (int, error) {
	parts, err := Split(text)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, q := range All {
		n, err := solve(parts[q])
		if err != nil {
			return 0, fmt.Errorf("quadrant %s: %w", q, err)
		}
		total += n
	}
	return total, nil
}

func pick(top, left bool) Quadrant {
	switch {
	case top && left:
		return TopLeft
	case top:
		return TopRight
	case left:
		return BottomLeft
	}
	return BottomRight
}

// rewrite returns the character at offset (dx, dy) from the centre after the
// entrance has been replaced by four.
func rewrite(c byte, dx, dy int) byte {
	switch [2]int{dx, dy} {
	case [2]int{0, 0}, [2]int{1, 0}, [2]int{-1, 0}, [2]int{0, 1}, [2]int{0, -1}:
		return '#'
	case [2]int{1, 1}, [2]int{1, -1}, [2]int{-1, 1}, [2]int{-1, -1}:
		return '@'
	}
	return c
}

// presplit reports whether the 3×3 block around (cx, cy) already reads as
// the rewritten centre.
func presplit(rows []string, cx, cy int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			c := charAt(rows, cx+dx, cy+dy)
			if c != rewrite(c, dx, dy) {
				return false
			}
		}
	}
	return true
}

func charAt(rows []string, x, y int) byte {
	if y >= 0 && y < len(rows) && x >= 0 && x < len(rows[y]) {
		return rows[y][x]
	}
	return ' '
}
