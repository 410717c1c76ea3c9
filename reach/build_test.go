package reach_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/keyvault/keyset"
	"github.com/katalvlaran/keyvault/reach"
	"github.com/katalvlaran/keyvault/vaultgrid"
)

const corridor = "#########\n#b.A.@.a#\n#########"

func key(c byte) keyset.Key {
	k, _ := keyset.FromLetter(c)
	return k
}

func mustParse(t *testing.T, text string) *vaultgrid.Grid {
	t.Helper()
	g, err := vaultgrid.Parse(text)
	require.NoError(t, err)
	return g
}

// BuildSuite exercises Build on small hand-checked vaults.
type BuildSuite struct {
	suite.Suite
}

// TestCorridor verifies every edge of the single-corridor vault.
func (s *BuildSuite) TestCorridor() {
	g, err := reach.Build(mustParse(s.T(), corridor))
	require.NoError(s.T(), err)

	a, b, e := key('a'), key('b'), keyset.Entrance(0)
	want := []reach.Edge{
		{From: a, To: b, Steps: 6, Required: keyset.Of(a)},
		{From: b, To: a, Steps: 6, Required: keyset.Of(a)},
		{From: e, To: a, Steps: 2, Required: keyset.Empty},
		{From: e, To: b, Steps: 4, Required: keyset.Of(a)},
	}
	require.Equal(s.T(), want, g.Edges())
	require.Equal(s.T(), 4, g.Len())
	require.Equal(s.T(), keyset.Of(a, b), g.AllKeys())
	require.Equal(s.T(), []keyset.Key{a, b, e}, g.Sources())
	require.Equal(s.T(), []keyset.Key{e}, g.Entrances())
	require.Len(s.T(), g.From(e), 2)
}

// TestDoorsAccumulate checks that every door passed ends up in Required.
func (s *BuildSuite) TestDoorsAccumulate() {
	g, err := reach.Build(mustParse(s.T(), "#@.A.B.c.a.b#"))
	require.NoError(s.T(), err)

	var toC reach.Edge
	for _, e := range g.From(keyset.Entrance(0)) {
		if e.To == key('c') {
			toC = e
		}
	}
	require.Equal(s.T(), 6, toC.Steps)
	require.Equal(s.T(), keyset.Of(key('a'), key('b')), toC.Required)
}

// TestKeysDoNotBlock checks that the walk continues through key cells and
// that a collected key on the way is not a requirement.
func (s *BuildSuite) TestKeysDoNotBlock() {
	g, err := reach.Build(mustParse(s.T(), "#@a.b#"))
	require.NoError(s.T(), err)
	want := []reach.Edge{
		{From: keyset.Entrance(0), To: key('a'), Steps: 1},
		{From: keyset.Entrance(0), To: key('b'), Steps: 3},
	}
	require.Equal(s.T(), want, g.From(keyset.Entrance(0)))
}

// TestUnreachableKeyHasNoEdge checks that walls cut keys off.
func (s *BuildSuite) TestUnreachableKeyHasNoEdge() {
	g, err := reach.Build(mustParse(s.T(), "#@#a#"))
	require.NoError(s.T(), err)
	require.Empty(s.T(), g.From(keyset.Entrance(0)))
	require.True(s.T(), g.HasSource(keyset.Entrance(0)))
	require.True(s.T(), g.HasSource(key('a')))
	require.False(s.T(), g.HasSource(key('b')))
}

// TestFirstShortestPathWins pins the single-path simplification: two
// equal-length routes lead to 'b', the upper one through door A. Neighbours
// are expanded south first, so the lower door-free route is the one kept.
func (s *BuildSuite) TestFirstShortestPathWins() {
	text := "" +
		"#####\n" +
		"#.A.#\n" +
		"#@#b#\n" +
		"#...#\n" +
		"#a###"
	g, err := reach.Build(mustParse(s.T(), text))
	require.NoError(s.T(), err)

	for _, e := range g.From(keyset.Entrance(0)) {
		if e.To == key('b') {
			require.Equal(s.T(), 4, e.Steps)
			require.Equal(s.T(), keyset.Empty, e.Required)
			return
		}
	}
	s.T().Fatal("no edge to b")
}

func TestBuildSuite(t *testing.T) {
	suite.Run(t, new(BuildSuite))
}

func TestBuild_NilGrid(t *testing.T) {
	_, err := reach.Build(nil)
	require.ErrorIs(t, err, reach.ErrNilGrid)
}

// TestBuild_Idempotent builds twice from the same grid and compares edge sets.
func TestBuild_Idempotent(t *testing.T) {
	text := "" +
		"########################\n" +
		"#f.D.E.e.C.b.A.@.a.B.c.#\n" +
		"######################.#\n" +
		"#d.....................#\n" +
		"########################"
	grid := mustParse(t, text)

	first, err := reach.Build(grid)
	require.NoError(t, err)
	second, err := reach.Build(grid)
	require.NoError(t, err)

	require.Equal(t, first.Edges(), second.Edges())
	require.Equal(t, first.Sources(), second.Sources())
}

// TestBuild_OnEdge checks the hook sees every edge in emission order.
func TestBuild_OnEdge(t *testing.T) {
	var seen []reach.Edge
	g, err := reach.Build(mustParse(t, corridor), reach.WithOnEdge(func(e reach.Edge) {
		seen = append(seen, e)
	}))
	require.NoError(t, err)
	require.Equal(t, g.Edges(), seen)

	// A nil hook keeps the default.
	_, err = reach.Build(mustParse(t, corridor), reach.WithOnEdge(nil))
	require.NoError(t, err)
}

func TestEdgeString(t *testing.T) {
	e := reach.Edge{From: keyset.Entrance(0), To: key('b'), Steps: 4, Required: keyset.Of(key('a'))}
	require.Equal(t, "@0->b(4,a)", e.String())
}
