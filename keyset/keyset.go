package keyset

import (
	"math/bits"
	"strconv"
	"strings"
)

const (
	// Width is the number of slots a KeySet can represent.
	Width = 32
	// Letters is the number of key letters (a..z).
	Letters = 26
	// EntranceBase is the first slot reserved for entrances.
	EntranceBase = Letters
	// MaxEntrances is the number of entrance slots left after the letters.
	MaxEntrances = Width - EntranceBase
)

// Key identifies a single key (and the door it opens) or an entrance.
type Key uint8

// FromLetter maps a lowercase or uppercase ASCII letter to its Key.
// The second result is false for any other byte.
func FromLetter(c byte) (Key, bool) {
	switch {
	case 'a' <= c && c <= 'z':
		return Key(c - 'a'), true
	case 'A' <= c && c <= 'Z':
		return Key(c - 'A'), true
	}
	return 0, false
}

// Entrance returns the virtual Key of the i-th entrance.
// It panics if i is outside [0, MaxEntrances).
func Entrance(i int) Key {
	if i < 0 || i >= MaxEntrances {
		panic("keyset: entrance index " + strconv.Itoa(i) + " out of range")
	}
	return Key(EntranceBase + i)
}

// IsEntrance reports whether k is an entrance slot.
func (k Key) IsEntrance() bool { return k >= EntranceBase }

// EntranceIndex returns the entrance index of k, or -1 for a letter key.
func (k Key) EntranceIndex() int {
	if !k.IsEntrance() {
		return -1
	}
	return int(k - EntranceBase)
}

// Letter returns the lowercase letter of k, or '@' for an entrance.
func (k Key) Letter() byte {
	if k.IsEntrance() {
		return '@'
	}
	return 'a' + byte(k)
}

// String renders a letter key as "a".."z" and an entrance as "@0", "@1", ...
func (k Key) String() string {
	if k.IsEntrance() {
		return "@" + strconv.Itoa(k.EntranceIndex())
	}
	return string(k.Letter())
}

// KeySet is a bitmap of Keys.
type KeySet uint32

// Empty is the set with no keys.
const Empty KeySet = 0

// Of returns the set containing exactly keys.
func Of(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s = s.Add(k)
	}
	return s
}

// Add returns s with k included.
func (s KeySet) Add(k Key) KeySet { return s | 1<<k }

// Has reports whether k is in s.
func (s KeySet) Has(k Key) bool { return s>>k&1 == 1 }

// ContainsAll reports whether other is a subset of s.
func (s KeySet) ContainsAll(other KeySet) bool { return s&other == other }

// Union returns the keys present in s or other.
func (s KeySet) Union(other KeySet) KeySet { return s | other }

// Without returns the keys of s that are not in other.
func (s KeySet) Without(other KeySet) KeySet { return s &^ other }

// Len returns the number of keys in s.
func (s KeySet) Len() int { return bits.OnesCount32(uint32(s)) }

// Keys returns the members of s in ascending order.
func (s KeySet) Keys() []Key {
	out := make([]Key, 0, s.Len())
	for rest := uint32(s); rest != 0; rest &= rest - 1 {
		out = append(out, Key(bits.TrailingZeros32(rest)))
	}
	return out
}

// String renders s as its letters in ascending order, e.g. "abd".
// Entrances are rendered as "@N" after the letters. The empty set is "{}".
func (s KeySet) String() string {
	if s == Empty {
		return "{}"
	}
	var b strings.Builder
	for _, k := range s.Keys() {
		b.WriteString(k.String())
	}
	return b.String()
}
