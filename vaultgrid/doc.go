// Package vaultgrid parses the ASCII vault map into an immutable grid of
// typed cells together with its key and entrance registries.
//
// What:
//
//   - '#' and ' ' are walls; short rows are padded with walls.
//   - '@' is an entrance. Several entrances may exist; each gets a virtual
//     keyset.Key in discovery (row-major) order.
//   - A lowercase letter is a key; the matching uppercase letter is a door.
//     A door whose key is absent from the parsed text degrades to open floor,
//     so a sub-grid never waits on a key it cannot reach.
//   - Any other printable ASCII character is open floor, unless WithStrict()
//     is set, in which case only '.' is.
//
// Complexity:
//
//   - Parse: O(W×H) time and memory, two passes over the text.
//   - InBounds, At, Position: O(1).
//
// Errors:
//
//   - ErrEmptyGrid:        the text has no non-empty row.
//   - ErrNoEntrance:       no '@' cell exists.
//   - ErrInvalidCell:      non-printable or non-ASCII byte (or, in strict mode,
//     a character outside ".#@ a-zA-Z").
//   - ErrDuplicateKey:     the same key letter appears twice.
//   - ErrRegistryOverflow: keys plus entrances exceed the keyset.Width slots.
//
// All errors are returned as *ParseError which wraps one of the sentinels
// above and, where it applies, the offending position.
package vaultgrid
