package models

import "sort"

// ColumnSelection is a set of 0-based column indices chosen for export.
// The zero value is an empty selection ready to use.
type ColumnSelection struct {
	set map[int]struct{}
}

// Toggle flips membership of index and reports whether it is now selected.
func (s *ColumnSelection) Toggle(index int) bool {
	if s.set == nil {
		s.set = make(map[int]struct{})
	}
	if _, ok := s.set[index]; ok {
		delete(s.set, index)
		return false
	}
	s.set[index] = struct{}{}
	return true
}

// Add marks index as selected.
func (s *ColumnSelection) Add(index int) {
	if s.set == nil {
		s.set = make(map[int]struct{})
	}
	s.set[index] = struct{}{}
}

// Contains reports whether index is selected.
func (s *ColumnSelection) Contains(index int) bool {
	_, ok := s.set[index]
	return ok
}

// Len returns the number of selected columns.
func (s *ColumnSelection) Len() int {
	return len(s.set)
}

// Clear removes every index.
func (s *ColumnSelection) Clear() {
	s.set = nil
}

// Indices returns the selected indices in ascending order.
func (s *ColumnSelection) Indices() []int {
	out := make([]int, 0, len(s.set))
	for i := range s.set {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// NewColumnSelection creates a selection holding the given indices.
func NewColumnSelection(indices ...int) ColumnSelection {
	var s ColumnSelection
	for _, i := range indices {
		s.Add(i)
	}
	return s
}
