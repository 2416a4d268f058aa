package core

// Sequence hands out monotonically increasing ids starting at 1. The
// simulation owns one allocator per entity kind, so ids are deterministic
// for a given run instead of living in hidden process-global state.
type Sequence struct {
	next int64
}

func NewSequence() *Sequence {
	return &Sequence{next: 1}
}

func (s *Sequence) Next() int64 {
	id := s.next
	s.next++
	return id
}
