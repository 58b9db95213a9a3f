package service

import (
	"testing"

	"nurse-call-backend/internal/apperrors"
	"nurse-call-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDirectBedBeatsIsland(t *testing.T) {
	db := setupTestDB(t)
	resolver := NewResolverService(repository.NewNurseRepo(db))

	island := createIsland(t, db, "West Wing")
	bed := createBed(t, db, island.ID, "W-01")

	islandNurse := createNurse(t, db, "nurse.island")
	assignIsland(t, db, islandNurse, island)

	bedNurse := createNurse(t, db, "nurse.bed")
	assignBed(t, db, bedNurse, bed)

	nurse, err := resolver.ResolveNurseForBed(bed)
	require.NoError(t, err)
	assert.Equal(t, bedNurse.ID, nurse.ID)
}

func TestResolveFallsBackToIsland(t *testing.T) {
	db := setupTestDB(t)
	resolver := NewResolverService(repository.NewNurseRepo(db))

	island := createIsland(t, db, "West Wing")
	bed := createBed(t, db, island.ID, "W-01")

	islandNurse := createNurse(t, db, "nurse.island")
	assignIsland(t, db, islandNurse, island)

	nurse, err := resolver.ResolveNurseForBed(bed)
	require.NoError(t, err)
	assert.Equal(t, islandNurse.ID, nurse.ID)
}

func TestResolveLowestNurseIDWins(t *testing.T) {
	db := setupTestDB(t)
	resolver := NewResolverService(repository.NewNurseRepo(db))

	island := createIsland(t, db, "West Wing")
	bed := createBed(t, db, island.ID, "W-01")

	first := createNurse(t, db, "nurse.first")
	second := createNurse(t, db, "nurse.second")
	require.Less(t, first.ID, second.ID)

	// append order must not matter, only the nurse id
	assignIsland(t, db, second, island)
	assignIsland(t, db, first, island)

	nurse, err := resolver.ResolveNurseForBed(bed)
	require.NoError(t, err)
	assert.Equal(t, first.ID, nurse.ID)
}

func TestResolveNoAssignment(t *testing.T) {
	db := setupTestDB(t)
	resolver := NewResolverService(repository.NewNurseRepo(db))

	island := createIsland(t, db, "West Wing")
	bed := createBed(t, db, island.ID, "W-01")
	createNurse(t, db, "nurse.unassigned")

	_, err := resolver.ResolveNurseForBed(bed)
	assert.ErrorIs(t, err, apperrors.ErrNoNurseAssigned)
}

func TestResolveNursePrefersUserID(t *testing.T) {
	db := setupTestDB(t)
	resolver := NewResolverService(repository.NewNurseRepo(db))

	// arrange an id collision: value 2 is both the user id behind the
	// first nurse and the row id of the second nurse
	createUser(t, db, "spacer", "patient")
	byUser := createNurse(t, db, "nurse.a") // user id 2, nurse id 1
	createNurse(t, db, "nurse.b")           // user id 3, nurse id 2
	require.Equal(t, uint(2), byUser.UserID)

	nurse, err := resolver.ResolveNurse(2)
	require.NoError(t, err)
	assert.Equal(t, byUser.ID, nurse.ID)
}

func TestResolveNurseFallsBackToNurseID(t *testing.T) {
	db := setupTestDB(t)
	resolver := NewResolverService(repository.NewNurseRepo(db))

	createUser(t, db, "spacer.one", "patient")
	createUser(t, db, "spacer.two", "patient")
	nurse := createNurse(t, db, "nurse.a") // user id 3, nurse id 1

	// no user with id 1 is a nurse, so the value resolves as a nurse id
	got, err := resolver.ResolveNurse(nurse.ID)
	require.NoError(t, err)
	assert.Equal(t, nurse.ID, got.ID)
	assert.NotEqual(t, nurse.ID, got.UserID)
}

func TestResolveNurseUnknown(t *testing.T) {
	db := setupTestDB(t)
	resolver := NewResolverService(repository.NewNurseRepo(db))

	_, err := resolver.ResolveNurse(999)
	assert.ErrorIs(t, err, apperrors.ErrNurseNotFound)
}
