// Package search finds the fewest steps needed to collect every key of a
// reach.Graph.
//
// The search is Dijkstra's algorithm over states (At, Collected): the key (or
// entrance) the walker stands on and the set of keys already picked up. The
// start state is (entrance, {}) at cost 0. An edge (At → To, steps, required)
// may be taken only when required ⊆ Collected, and leads to
// (To, Collected ∪ {To}) at cost + steps. The first popped state whose
// Collected equals the graph's full key set is the answer.
//
// Complexity:
//
//   - States:  at most S × 2^K for S sources and K keys.
//   - Time:    O(E' log E') where E' is the number of accepted relaxations.
//   - Space:   O(S × 2^K) for the best-cost table and heap.
//
// Notes on implementation choices:
//
//   - A state is pushed only if it strictly improves the recorded best cost.
//   - Lazy decrease-key: stale heap entries are skipped when popped.
//   - Ties in cost pop by collected set, then by key, so runs are repeatable.
//
// Options:
//
//   - Start(k):        source to start from (default: first entrance). Starting
//     on a letter key counts that key as collected.
//   - WithReturnPath(): fill Result.Order with the key collection order.
//   - WithOnRelax(fn):  hook called for every accepted transition.
//
// Errors:
//
//   - ErrNilGraph:        the graph is nil.
//   - ErrStartNotFound:   the start key is not a source of the graph.
//   - ErrUnreachableGoal: no order of moves collects every key.
package search
