// Package keyset provides the fixed-width bit vector used to track vault keys.
//
// What:
//
//   - Key is a slot in [0, Width). Lowercase letters a..z occupy slots 0..25;
//     entrances occupy the virtual slots starting at EntranceBase.
//   - KeySet is a uint32 bitmap over those slots, used both as "keys collected
//     so far" and as "keys required to walk an edge".
//
// Operations:
//
//   - Add, Has, Union:   O(1).
//   - ContainsAll:       O(1) subset test (s & other == other).
//   - Len:               O(1) population count.
//   - Keys, String:      O(Width).
//
// A KeySet is a plain value; copying it is free and it is safe to use as a
// map key.
package keyset
