// Package favorites keeps the user's saved asset ids in insertion order.
package favorites

import "slices"

// Set is an insertion-ordered set of asset ids. It encodes as a JSON array.
type Set []string

// Contains reports whether id is a favorite.
func (s Set) Contains(id string) bool {
	return slices.Contains(s, id)
}

// Toggle adds id if absent or removes it if present. It returns the new set
// and whether id was added. The receiver is left untouched.
func (s Set) Toggle(id string) (Set, bool) {
	if i := slices.Index(s, id); i >= 0 {
		return slices.Delete(slices.Clone(s), i, i+1), false
	}
	return append(slices.Clone(s), id), true
}
