// Package sparse provides a sparse set of small non-negative integers.
//
// A sparse set supports O(1) insertion and membership testing without
// clearing its backing arrays. The table builders use it to remember which
// overlap lengths have already produced a good-suffix entry, where the
// universe is bounded by the pattern length.
package sparse

import "github.com/coregx/skipsearch/internal/conv"

// Set is a set of integers in [0, capacity).
//
// The sparse slice maps a value to its slot in dense. A value is a member
// exactly when its slot is in range and dense points back at it, so the
// uninitialized contents of sparse never matter.
type Set struct {
	sparse []uint32
	dense  []uint32
}

// New creates a set able to hold values in [0, capacity).
func New(capacity int) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds v to the set and reports whether it was newly added.
// Values outside [0, capacity) are rejected and reported as not added.
func (s *Set) Insert(v int) bool {
	if v < 0 || v >= len(s.sparse) || s.Contains(v) {
		return false
	}
	s.sparse[v] = conv.IntToUint32(len(s.dense))
	s.dense = append(s.dense, conv.IntToUint32(v))
	return true
}

// Contains reports whether v is in the set.
func (s *Set) Contains(v int) bool {
	if v < 0 || v >= len(s.sparse) {
		return false
	}
	slot := int(s.sparse[v])
	return slot < len(s.dense) && int(s.dense[slot]) == v
}
