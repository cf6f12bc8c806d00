// ABOUTME: Tests for the SQLite record store.
// ABOUTME: Verifies insert, list, get, update, and delete semantics including no-op cases.
package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/harperreed/fitlog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func alexRecord() *models.Record {
	return &models.Record{
		Name:     "Alex",
		Age:      30,
		Weight:   72.5,
		Date:     "2024-01-10",
		Exercise: "Running",
		Duration: 30,
		Calories: 300,
	}
}

func samRecord() *models.Record {
	return &models.Record{
		Name:     "Sam",
		Age:      44,
		Weight:   88.0,
		Date:     "2024-02-01",
		Exercise: "Swimming",
		Duration: 50,
		Calories: 410,
	}
}

func TestListEmptyStore(t *testing.T) {
	s := setupTestStore(t)

	records, err := s.List()
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestInsertAssignsFirstID(t *testing.T) {
	s := setupTestStore(t)

	id, err := s.Insert(alexRecord())
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	records, err := s.List()
	require.NoError(t, err)
	require.Len(t, records, 1)

	want := alexRecord()
	want.ID = 1
	assert.Equal(t, want, records[0])
}

func TestInsertIgnoresCallerID(t *testing.T) {
	s := setupTestStore(t)

	r := alexRecord()
	r.ID = 42
	id, err := s.Insert(r)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	_, err = s.Get(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInsertAssignsUniqueIDs(t *testing.T) {
	s := setupTestStore(t)

	seen := map[int64]bool{}
	for i := 0; i < 5; i++ {
		id, err := s.Insert(alexRecord())
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}

	records, err := s.List()
	require.NoError(t, err)
	assert.Len(t, records, 5)
}

func TestIDsNotReusedAfterDelete(t *testing.T) {
	s := setupTestStore(t)

	first, err := s.Insert(alexRecord())
	require.NoError(t, err)
	_, err = s.Delete(first)
	require.NoError(t, err)

	second, err := s.Insert(samRecord())
	require.NoError(t, err)
	assert.Greater(t, second, first)
}

func TestListInInsertionOrder(t *testing.T) {
	s := setupTestStore(t)

	// Later session date first; storage order is still insertion order.
	idSam, err := s.Insert(samRecord())
	require.NoError(t, err)
	idAlex, err := s.Insert(alexRecord())
	require.NoError(t, err)

	records, err := s.List()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, idSam, records[0].ID)
	assert.Equal(t, idAlex, records[1].ID)
}

func TestDateRoundTrip(t *testing.T) {
	s := setupTestStore(t)

	r := alexRecord()
	r.Date = "2024-03-15"
	id, err := s.Insert(r)
	require.NoError(t, err)

	got, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", got.Date)
}

func TestGetNotFound(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.Get(99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrStorageUnavailable))
}

func TestUpdateChangesOnlyTarget(t *testing.T) {
	s := setupTestStore(t)

	idAlex, err := s.Insert(alexRecord())
	require.NoError(t, err)
	idSam, err := s.Insert(samRecord())
	require.NoError(t, err)

	edited := alexRecord()
	edited.Name = "Alex P."
	edited.Age = 31
	edited.Weight = 70.25
	edited.Date = "2024-01-11"
	edited.Exercise = "Rowing"
	edited.Duration = 40
	edited.Calories = 350

	changed, err := s.Update(idAlex, edited)
	require.NoError(t, err)
	assert.True(t, changed)

	got, err := s.Get(idAlex)
	require.NoError(t, err)
	edited.ID = idAlex
	assert.Equal(t, edited, got)

	other, err := s.Get(idSam)
	require.NoError(t, err)
	want := samRecord()
	want.ID = idSam
	assert.Equal(t, want, other)
}

func TestUpdateMissingIDIsNoop(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.Insert(alexRecord())
	require.NoError(t, err)
	before, err := s.List()
	require.NoError(t, err)

	changed, err := s.Update(99, samRecord())
	require.NoError(t, err)
	assert.False(t, changed)

	after, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestDeleteFirstOfTwo(t *testing.T) {
	s := setupTestStore(t)

	first, err := s.Insert(alexRecord())
	require.NoError(t, err)
	second, err := s.Insert(samRecord())
	require.NoError(t, err)

	changed, err := s.Delete(first)
	require.NoError(t, err)
	assert.True(t, changed)

	records, err := s.List()
	require.NoError(t, err)
	require.Len(t, records, 1)

	want := samRecord()
	want.ID = second
	assert.Equal(t, want, records[0])
}

func TestDeleteMissingIDIsNoop(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.Insert(alexRecord())
	require.NoError(t, err)

	changed, err := s.Delete(99)
	require.NoError(t, err)
	assert.False(t, changed)

	records, err := s.List()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestDeleteTwiceSecondIsNoop(t *testing.T) {
	s := setupTestStore(t)

	id, err := s.Insert(alexRecord())
	require.NoError(t, err)

	changed, err := s.Delete(id)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = s.Delete(id)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestRepositoryPersistsAcrossStores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "fitness.db")

	s1, err := Open(dbPath)
	require.NoError(t, err)
	_, err = s1.Insert(alexRecord())
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := Open(dbPath)
	require.NoError(t, err)
	records, err := s2.List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Alex", records[0].Name)
}

// setupTestStore creates a store backed by a fresh database in a temp directory.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), DBFileName)
	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	return s
}
