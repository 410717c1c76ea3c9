// Package search_test checks MinSteps on hand-made vaults: the known sample
// answers, error paths, path reconstruction and the non-decreasing cost of
// every accepted transition.
package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keyvault/keyset"
	"github.com/katalvlaran/keyvault/reach"
	"github.com/katalvlaran/keyvault/search"
	"github.com/katalvlaran/keyvault/vaultgrid"
)

const (
	corridor = "" +
		"#########\n" +
		"#b.A.@.a#\n" +
		"#########"

	hallway = "" +
		"########################\n" +
		"#f.D.E.e.C.b.A.@.a.B.c.#\n" +
		"######################.#\n" +
		"#d.....................#\n" +
		"########################"

	backtrack = "" +
		"########################\n" +
		"#...............b.C.D.f#\n" +
		"#.######################\n" +
		"#.....@.a.B.c.d.A.e.F.g#\n" +
		"########################"

	branches = "" +
		"########################\n" +
		"#@..............ac.GI.b#\n" +
		"###d#e#f################\n" +
		"###A#B#C################\n" +
		"###g#h#i################\n" +
		"########################"
)

func key(c byte) keyset.Key {
	k, _ := keyset.FromLetter(c)
	return k
}

func graphOf(t *testing.T, text string) *reach.Graph {
	t.Helper()
	grid, err := vaultgrid.Parse(text)
	require.NoError(t, err)
	g, err := reach.Build(grid)
	require.NoError(t, err)
	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestMinSteps_NilGraph(t *testing.T) {
	_, err := search.MinSteps(nil)
	require.ErrorIs(t, err, search.ErrNilGraph)
}

func TestMinSteps_StartNotFound(t *testing.T) {
	g := graphOf(t, corridor)
	_, err := search.MinSteps(g, search.Start(key('z')))
	require.ErrorIs(t, err, search.ErrStartNotFound)

	_, err = search.MinSteps(g, search.Start(keyset.Entrance(3)))
	require.ErrorIs(t, err, search.ErrStartNotFound)
}

// ------------------------------------------------------------------------
// 2. Known answers
// ------------------------------------------------------------------------

func TestMinSteps_Samples(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int
	}{
		{"Corridor", corridor, 8},
		{"Hallway", hallway, 86},
		{"Backtrack", backtrack, 132},
		{"Branches", branches, 81},
		{"NoKeys", "#@..#", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := search.MinSteps(graphOf(t, tc.text))
			require.NoError(t, err)
			require.Equal(t, tc.want, res.Steps)
			require.Nil(t, res.Order)
		})
	}
}

// TestMinSteps_SingleKey checks that one key and no doors costs exactly the
// corridor distance to it.
func TestMinSteps_SingleKey(t *testing.T) {
	text := "" +
		"#######\n" +
		"#@#...#\n" +
		"#.#.#.#\n" +
		"#...#a#\n" +
		"#######"
	res, err := search.MinSteps(graphOf(t, text))
	require.NoError(t, err)
	require.Equal(t, 10, res.Steps)
}

// TestMinSteps_MissingKeyDoorIsFloor checks that a door whose key is not in
// the grid does not block the other keys.
func TestMinSteps_MissingKeyDoorIsFloor(t *testing.T) {
	res, err := search.MinSteps(graphOf(t, "#@.A.b#"))
	require.NoError(t, err)
	require.Equal(t, 4, res.Steps)
}

// ------------------------------------------------------------------------
// 3. Failure
// ------------------------------------------------------------------------

func TestMinSteps_Unreachable(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"Walled", "#@#a#"},
		// b is behind A and a is behind B.
		{"Deadlock", "#a.B.@.A.b#"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := search.MinSteps(graphOf(t, tc.text))
			require.ErrorIs(t, err, search.ErrUnreachableGoal)
		})
	}
}

// ------------------------------------------------------------------------
// 4. Options
// ------------------------------------------------------------------------

func TestMinSteps_ReturnPath(t *testing.T) {
	res, err := search.MinSteps(graphOf(t, hallway), search.WithReturnPath())
	require.NoError(t, err)
	require.Equal(t, 86, res.Steps)
	want := []keyset.Key{key('a'), key('b'), key('c'), key('d'), key('e'), key('f')}
	require.Equal(t, want, res.Order)
	require.Positive(t, res.Expanded)
}

func TestMinSteps_ReturnPathNoKeys(t *testing.T) {
	res, err := search.MinSteps(graphOf(t, "#@#"), search.WithReturnPath())
	require.NoError(t, err)
	require.Equal(t, 0, res.Steps)
	require.Empty(t, res.Order)
}

// TestMinSteps_StartOnKey starts on key b, which is then already held.
func TestMinSteps_StartOnKey(t *testing.T) {
	res, err := search.MinSteps(graphOf(t, "#@.b.a#"), search.Start(key('b')), search.WithReturnPath())
	require.NoError(t, err)
	require.Equal(t, 2, res.Steps)
	require.Equal(t, []keyset.Key{key('a')}, res.Order)
}

// TestMinSteps_CostNeverDecreases checks every accepted transition through the
// OnRelax hook: the new cost is at least the old one and the edge was open.
func TestMinSteps_CostNeverDecreases(t *testing.T) {
	g := graphOf(t, backtrack)
	var relaxed int
	_, err := search.MinSteps(g, search.WithOnRelax(func(from, to search.State, fromCost, toCost int) {
		relaxed++
		require.GreaterOrEqual(t, toCost, fromCost, "%s -> %s", from, to)
		require.True(t, to.Collected.ContainsAll(from.Collected))
		require.True(t, to.Collected.Has(to.At))
	}))
	require.NoError(t, err)
	require.Positive(t, relaxed)
}

func TestStateString(t *testing.T) {
	s := search.State{At: key('c'), Collected: keyset.Of(key('a'), key('c'))}
	require.Equal(t, "(c,ac)", s.String())
}
