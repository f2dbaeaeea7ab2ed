// Package codestore keeps the most recently received IR codes in a small
// fixed-size window.
package codestore

import "github.com/sparques/ircapture"

// DefaultCapacity is the number of codes a Store holds when none is given.
const DefaultCapacity = ircapture.DefaultStoreCapacity

// Store is an ordered, bounded sequence of codes. When full, pushing a code
// shifts everything toward the front, dropping the oldest. It is not safe
// for concurrent use.
type Store struct {
	codes []ircapture.Code
}

// New returns an empty Store. A capacity below one selects DefaultCapacity.
func New(capacity int) *Store {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Store{codes: make([]ircapture.Code, 0, capacity)}
}

// Push appends code, evicting the oldest code if the store is full.
func (s *Store) Push(code ircapture.Code) ircapture.PushResult {
	if len(s.codes) < cap(s.codes) {
		s.codes = append(s.codes, code)
		return ircapture.PushResult{Index: len(s.codes) - 1}
	}

	dropped := s.codes[0]
	copy(s.codes, s.codes[1:])
	last := len(s.codes) - 1
	s.codes[last] = code

	return ircapture.PushResult{
		Index:   last,
		Evicted: true,
		Dropped: dropped,
	}
}

// Snapshot returns a copy of the stored codes, oldest first.
func (s *Store) Snapshot() []ircapture.Code {
	out := make([]ircapture.Code, len(s.codes))
	copy(out, s.codes)
	return out
}

func (s *Store) Len() int { return len(s.codes) }
func (s *Store) Cap() int { return cap(s.codes) }
