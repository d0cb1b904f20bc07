package store

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/idilsaglam/later/internal/model"
)

// In-memory item store for one session.
// Single-threaded by contract, no locking.

// ErrOutOfRange is matched by every *OutOfRangeError.
var ErrOutOfRange = errors.New("position out of range")

// OutOfRangeError reports a user position that does not address an item.
type OutOfRangeError struct {
	Len      int
	Position uint
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("position out of range: have %d, got %d", e.Len, e.Position)
}

func (e *OutOfRangeError) Is(target error) bool { return target == ErrOutOfRange }

// Store keeps items in insertion order.
type Store struct {
	items []model.Item
}

func New() *Store { return &Store{} }

// Append adds item at the end and returns the new count.
func (s *Store) Append(item model.Item) int {
	s.items = append(s.items, item)
	return len(s.items)
}

// RemoveAt removes the item at a 1-based position and returns its title.
// The store is left untouched when the position is out of range.
func (s *Store) RemoveAt(position uint) (string, error) {
	if position < 1 || position > uint(len(s.items)) {
		return "", &OutOfRangeError{Len: len(s.items), Position: position}
	}
	idx := int(position - 1)
	title := s.items[idx].Title
	s.items = slices.Delete(s.items, idx, idx+1)
	return title, nil
}

// All yields the items in insertion order. Each range over the result
// starts from the first item again.
func (s *Store) All() iter.Seq[model.Item] {
	return func(yield func(model.Item) bool) {
		for _, it := range s.items {
			if !yield(it) {
				return
			}
		}
	}
}

// ReplaceAll swaps the whole contents for a copy of items.
func (s *Store) ReplaceAll(items []model.Item) {
	s.items = slices.Clone(items)
}

// Snapshot returns a copy of the ordered contents.
func (s *Store) Snapshot() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Len() int { return len(s.items) }
