// Package quadrant splits a single-entrance vault into four independent
// sub-vaults, one per robot.
//
// The centre cell (cols/2, rows/2) must be the entrance. It and its four
// orthogonal neighbours become walls; its four diagonal neighbours become
// entrances. Rows up to and including the centre row form the top half,
// columns up to and including the centre column the left half.
//
// Doors and keys are assumed never to straddle quadrant boundaries. This is
// not checked: a door whose key sits in another quadrant is parsed as open
// floor, so a violation yields the answer for the relaxed map.
package quadrant
