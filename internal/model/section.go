package model

import (
	"bytes"
	"encoding/json"
)

// Section is an optional resume sequence. An absent section is different
// from a present one with no items: absent sections are omitted from JSON and
// render nothing, while present ones are always emitted as arrays.
type Section[T any] struct {
	items   []T
	present bool
}

// Present returns a section holding a copy of items.
func Present[T any](items ...T) Section[T] {
	out := make([]T, len(items))
	copy(out, items)
	return Section[T]{items: out, present: true}
}

// Absent returns the empty, not-present section.
func Absent[T any]() Section[T] {
	return Section[T]{}
}

// Items returns the section content and whether the section is present.
// The returned slice must not be modified.
func (s Section[T]) Items() ([]T, bool) {
	return s.items, s.present
}

func (s Section[T]) IsPresent() bool { return s.present }

func (s Section[T]) Len() int { return len(s.items) }

// IsZero reports an absent section; encoding/json uses it for omitzero.
func (s Section[T]) IsZero() bool { return !s.present }

func (s Section[T]) clone() Section[T] {
	if !s.present {
		return Section[T]{}
	}
	return Present(s.items...)
}

// append adds item, making the section present if it was absent.
func (s *Section[T]) append(item T) {
	s.items = append(s.items, item)
	s.present = true
}

func (s *Section[T]) remove(i int) {
	s.items = append(s.items[:i], s.items[i+1:]...)
}

func (s Section[T]) MarshalJSON() ([]byte, error) {
	if !s.present {
		return []byte("null"), nil
	}
	if s.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.items)
}

func (s *Section[T]) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*s = Section[T]{}
		return nil
	}
	var items []T
	if err := json.Unmarshal(b, &items); err != nil {
		return err
	}
	if items == nil {
		items = []T{}
	}
	*s = Section[T]{items: items, present: true}
	return nil
}
