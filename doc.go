// Package keyvault finds the shortest walk that collects every key in an
// ASCII vault map, where doors open only once their key has been picked up.
//
// The pipeline runs in four stages, one package each:
//
//	vaultgrid/  parse the map into typed cells plus key and entrance registries
//	reach/      BFS from every key and entrance into a weighted key graph
//	search/     Dijkstra over (position, collected keys) states
//	quadrant/   split a map into four sub-vaults for the multi-robot variant
//
// keyset/ holds the bit vector shared by all stages, puzzle/ the
// input/answer contract, and vault/ the facade that chains the stages.
//
// Quick example:
//
//	#########
//	#b.A.@.a#
//	#########
//
// takes 8 steps: 2 to a, then 6 back through door A to b.
//
//	go run ./cmd/keyvault solve map.txt
package keyvault
