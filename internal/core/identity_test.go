package core

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateAssignsDefaultsByRegistrantCount(t *testing.T) {
	s := NewIdentityStore()

	first, created := s.GetOrCreate("u1")
	require.True(t, created)
	assert.Equal(t, Profile{Color: ColorBlue, Name: "User1", Shape: ShapeSquare}, first)

	second, created := s.GetOrCreate("u2")
	require.True(t, created)
	assert.Equal(t, Profile{Color: ColorGreen, Name: "User2", Shape: ShapeSquare}, second)

	again, created := s.GetOrCreate("u1")
	assert.False(t, created)
	assert.Equal(t, first, again)
	assert.Equal(t, 2, s.Len())
}

func TestGetOrCreateWrapsPalette(t *testing.T) {
	s := NewIdentityStore()
	for i := 0; i < 12; i++ {
		s.GetOrCreate("user-" + strings.Repeat("x", i+1))
	}

	p, _ := s.GetOrCreate("thirteenth")
	assert.Equal(t, ColorBlue, p.Color)
	assert.Equal(t, "User13", p.Name)
}

func TestUpsertRejectsInvalidInput(t *testing.T) {
	s := NewIdentityStore()

	_, _, err := s.Upsert("", ProfileUpdate{Name: "x"})
	assert.ErrorIs(t, err, ErrNoUserID)

	_, _, err = s.Upsert("u1", ProfileUpdate{Color: "#000000"})
	assert.ErrorIs(t, err, ErrInvalidColor)

	_, _, err = s.Upsert("u1", ProfileUpdate{Shape: "triangle"})
	assert.ErrorIs(t, err, ErrInvalidShape)

	assert.Equal(t, 0, s.Len(), "failed upserts must not create profiles")
}

func TestUpsertInvalidColorLeavesExistingProfile(t *testing.T) {
	s := NewIdentityStore()
	before, _, err := s.Upsert("u1", ProfileUpdate{Name: "alice"})
	require.NoError(t, err)

	_, _, err = s.Upsert("u1", ProfileUpdate{Name: "bob", Color: "#000000"})
	require.ErrorIs(t, err, ErrInvalidColor)

	after, ok := s.Get("u1")
	require.True(t, ok)
	assert.Equal(t, before, after)
}

func TestUpsertMergesPartialUpdates(t *testing.T) {
	s := NewIdentityStore()

	p, created, err := s.Upsert("u1", ProfileUpdate{Name: "alice"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "alice", p.Name)
	assert.Equal(t, ColorBlue, p.Color)

	p, created, err = s.Upsert("u1", ProfileUpdate{Color: "#8e44ad"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, Profile{Color: ColorPurple, Name: "alice", Shape: ShapeSquare}, p)
}

func TestUpsertCreatesWithSuppliedValues(t *testing.T) {
	s := NewIdentityStore()

	p, _, err := s.Upsert("u1", ProfileUpdate{Color: "#1abc9c", Shape: "diamond"})
	require.NoError(t, err)
	assert.Equal(t, Profile{Color: ColorTurquoise, Name: "User1", Shape: ShapeDiamond}, p)
}

func TestUpsertTrimsAndTruncatesName(t *testing.T) {
	s := NewIdentityStore()

	p, _, err := s.Upsert("u1", ProfileUpdate{Name: "   " + strings.Repeat("é", 25) + "  "})
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("é", MaxNameLength), p.Name)

	p, _, err = s.Upsert("u1", ProfileUpdate{Name: "   "})
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("é", MaxNameLength), p.Name, "blank name is ignored")
}

func TestIdentityStoreConcurrentCreatesGetDistinctNames(t *testing.T) {
	s := NewIdentityStore()

	const n = 50
	var wg sync.WaitGroup
	names := make([]string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, _ := s.GetOrCreate(strings.Repeat("u", i+1))
			names[i] = p.Name
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool, n)
	for _, name := range names {
		assert.False(t, seen[name], "duplicate default name %q", name)
		seen[name] = true
	}
}
