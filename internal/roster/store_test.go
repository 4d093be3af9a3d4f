package roster

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	return New(WithHandleGenerator(NewSequenceGenerator("h")))
}

type failingGenerator struct{}

func (failingGenerator) NewHandle() (Handle, error) {
	return "", errors.New("out of handles")
}

func TestStore_Scenario(t *testing.T) {
	s := newTestStore()

	_, err := s.Add(1, 20, "Alice")
	require.NoError(t, err)
	_, err = s.Add(2, 21, "Bob")
	require.NoError(t, err)

	assert.Equal(t, []Record{
		{Handle: "h-1", ID: 1, Age: 20, Name: "Alice"},
		{Handle: "h-2", ID: 2, Age: 21, Name: "Bob"},
	}, s.List())

	removed, err := s.DeleteByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Alice", removed.Name)
	assert.Equal(t, []Record{{Handle: "h-2", ID: 2, Age: 21, Name: "Bob"}}, s.List())

	_, err = s.DeleteByID(99)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	assert.Equal(t, 1, s.Clear())
	assert.Empty(t, s.List())
}

func TestStore_AddPreservesOrderWithDuplicates(t *testing.T) {
	s := newTestStore()
	ids := []int{3, 1, 3, 2, 1}
	for i, id := range ids {
		_, err := s.Add(id, 18+i, "student")
		require.NoError(t, err)
	}

	list := s.List()
	require.Len(t, list, len(ids))
	for i, r := range list {
		assert.Equal(t, ids[i], r.ID)
		assert.Equal(t, 18+i, r.Age)
	}
}

func TestStore_DeleteRemovesFirstMatchOnly(t *testing.T) {
	s := newTestStore()
	_, _ = s.Add(7, 20, "first")
	_, _ = s.Add(8, 21, "middle")
	_, _ = s.Add(7, 22, "second")

	removed, err := s.DeleteByID(7)
	require.NoError(t, err)
	assert.Equal(t, "first", removed.Name)

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "middle", list[0].Name)
	assert.Equal(t, "second", list[1].Name)
}

func TestStore_DeleteMissingLeavesStoreUnchanged(t *testing.T) {
	s := newTestStore()
	_, _ = s.Add(1, 20, "a")
	_, _ = s.Add(2, 21, "b")
	before := s.List()

	_, err := s.DeleteByID(3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, IsEmptyStore(err))
	assert.Equal(t, before, s.List())
}

func TestStore_DeleteOnEmptyStore(t *testing.T) {
	s := newTestStore()

	_, err := s.DeleteByID(1)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, 0, s.Len())
}

func TestStore_Clear(t *testing.T) {
	s := newTestStore()
	assert.Equal(t, 0, s.Clear())

	for i := 0; i < 4; i++ {
		_, _ = s.Add(i, 20, "x")
	}
	assert.Equal(t, 4, s.Clear())
	assert.Empty(t, s.List())
	assert.Equal(t, 0, s.Clear())
	assert.NotNil(t, s.List())
}

func TestStore_ListReturnsCopies(t *testing.T) {
	s := newTestStore()
	_, _ = s.Add(1, 20, "Alice")

	list := s.List()
	list[0].Name = "Mallory"

	assert.Equal(t, "Alice", s.List()[0].Name)
}

func TestStore_HandleLifetime(t *testing.T) {
	s := newTestStore()
	h1, err := s.Add(1, 20, "Alice")
	require.NoError(t, err)
	h2, err := s.Add(2, 21, "Bob")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)

	r, ok := s.Get(h1)
	require.True(t, ok)
	assert.Equal(t, "Alice", r.Name)

	_, err = s.DeleteByID(1)
	require.NoError(t, err)
	_, ok = s.Get(h1)
	assert.False(t, ok, "handle must not resolve after delete")

	s.Clear()
	_, ok = s.Get(h2)
	assert.False(t, ok, "handle must not resolve after clear")
}

func TestStore_AllocationFailure(t *testing.T) {
	s := New(WithHandleGenerator(failingGenerator{}))

	_, err := s.Add(1, 20, "Alice")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAllocation))
	assert.Contains(t, err.Error(), "out of handles")
	assert.Equal(t, 0, s.Len())
}

func TestStore_Close(t *testing.T) {
	s := newTestStore()
	_, _ = s.Add(1, 20, "a")
	_, _ = s.Add(2, 21, "b")
	_, _ = s.Add(3, 22, "c")

	assert.Equal(t, 3, s.Close())
	assert.Equal(t, 0, s.Close(), "second close releases nothing")
	assert.Empty(t, s.List())
	assert.Equal(t, 0, s.Clear())

	_, err := s.Add(4, 23, "d")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStoreClosed))
}

func TestStore_CloseEmpty(t *testing.T) {
	s := newTestStore()
	assert.Equal(t, 0, s.Close())
}

func TestStore_AddTruncatesName(t *testing.T) {
	s := newTestStore()
	long := strings.Repeat("n", MaxNameLength+20)

	_, err := s.Add(1, 20, long)
	require.NoError(t, err)
	assert.Equal(t, long[:MaxNameLength], s.List()[0].Name)
}

func TestStore_DefaultGeneratorProducesUUIDs(t *testing.T) {
	s := New()
	h, err := s.Add(1, 20, "Alice")
	require.NoError(t, err)
	assert.Len(t, string(h), 36)
}

func TestStore_AddKeepsNameContent(t *testing.T) {
	s := newTestStore()
	decomposed := strings.Repeat("e\u0301", 30)

	_, err := s.Add(1, 20, decomposed)
	require.NoError(t, err)

	stored := s.List()[0].Name
	assert.True(t, strings.HasPrefix(decomposed, stored), "stored name must be a prefix of the input")
	assert.Equal(t, MaxNameLength, utf8.RuneCountInString(stored))
}
