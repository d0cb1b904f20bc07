package store

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/later/internal/model"
)

func item(title string) model.Item { return model.Item{Title: title} }

func TestAppendThenRemoveFirst(t *testing.T) {
	s := New()
	assert.Equal(t, 1, s.Append(item("first")))
	assert.Equal(t, 2, s.Append(item("second")))

	title, err := s.RemoveAt(1)
	require.NoError(t, err)
	assert.Equal(t, "first", title)

	title, err = s.RemoveAt(1)
	require.NoError(t, err)
	assert.Equal(t, "second", title)
	assert.Equal(t, 0, s.Len())
}

func TestRemoveAt_KeepsOrder(t *testing.T) {
	s := New()
	for _, title := range []string{"a", "b", "c", "d"} {
		s.Append(item(title))
	}
	title, err := s.RemoveAt(2)
	require.NoError(t, err)
	assert.Equal(t, "b", title)
	assert.Equal(t, []model.Item{item("a"), item("c"), item("d")}, s.Snapshot())
}

func TestRemoveAt_OutOfRange(t *testing.T) {
	s := New()
	s.Append(item("only"))

	for _, pos := range []uint{0, 2, 100} {
		_, err := s.RemoveAt(pos)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrOutOfRange))

		var oor *OutOfRangeError
		require.True(t, errors.As(err, &oor))
		assert.Equal(t, 1, oor.Len)
		assert.Equal(t, pos, oor.Position)
		assert.Equal(t, 1, s.Len())
	}
}

func TestAll_IsRestartable(t *testing.T) {
	s := New()
	s.Append(item("a"))
	s.Append(item("b"))

	first := slices.Collect(s.All())
	second := slices.Collect(s.All())
	assert.Equal(t, first, second)
	assert.Len(t, first, 2)

	for it := range s.All() {
		assert.Equal(t, "a", it.Title)
		break
	}
	assert.Equal(t, 2, s.Len())
}

func TestReplaceAll_CopiesInput(t *testing.T) {
	s := New()
	s.Append(item("old"))

	in := []model.Item{item("x"), item("y")}
	s.ReplaceAll(in)
	in[0].Title = "mutated"

	assert.Equal(t, []model.Item{item("x"), item("y")}, s.Snapshot())
}

func TestSnapshot_DoesNotAlias(t *testing.T) {
	s := New()
	s.Append(item("a"))
	snap := s.Snapshot()
	snap[0].Title = "changed"
	assert.Equal(t, "a", slices.Collect(s.All())[0].Title)
}

func TestLenTracksAppendsMinusRemoves(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := New()
	appends, removes := 0, 0
	for i := 0; i < 500; i++ {
		if rng.Intn(3) == 0 {
			if _, err := s.RemoveAt(uint(rng.Intn(6))); err == nil {
				removes++
			}
			continue
		}
		s.Append(item("t"))
		appends++
	}
	assert.Equal(t, appends-removes, s.Len())
}
