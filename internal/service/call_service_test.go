package service

import (
	"testing"
	"time"

	"nurse-call-backend/internal/apperrors"
	"nurse-call-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCallUnknownBed(t *testing.T) {
	env := newCallEnv(t, defaultCallConfig())

	_, err := env.calls.CreateCall(999)
	assert.ErrorIs(t, err, apperrors.ErrBedNotFound)
}

func TestCreateCallNoNurseAssigned(t *testing.T) {
	env := newCallEnv(t, defaultCallConfig())
	island := createIsland(t, env.db, "West Wing")
	bed := createBed(t, env.db, island.ID, "W-01")

	_, err := env.calls.CreateCall(bed.ID)
	assert.ErrorIs(t, err, apperrors.ErrNoNurseAssigned)

	// nothing may be persisted when resolution fails
	var count int64
	require.NoError(t, env.db.Model(&models.Call{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateCallRoutesToIslandNurse(t *testing.T) {
	env := newCallEnv(t, defaultCallConfig())
	island := createIsland(t, env.db, "West Wing")
	bed := createBed(t, env.db, island.ID, "W-01")
	nurse := createNurse(t, env.db, "nurse.jones")
	assignIsland(t, env.db, nurse, island)
	patient := createPatientInBed(t, env.db, "patient.smith", bed.ID)

	call, err := env.calls.CreateCall(bed.ID)
	require.NoError(t, err)

	assert.Equal(t, models.CallStatusActive, call.Status)
	assert.Equal(t, bed.ID, call.BedID)
	assert.Equal(t, nurse.ID, call.NurseID)
	require.NotNil(t, call.PatientID)
	assert.Equal(t, patient.ID, *call.PatientID)
	assert.Equal(t, call.CreatedAt.Add(10*time.Minute), call.ExpiresAt)
}

func TestCreateCallEmptyBed(t *testing.T) {
	env := newCallEnv(t, defaultCallConfig())
	island := createIsland(t, env.db, "East Wing")
	bed := createBed(t, env.db, island.ID, "E-01")
	nurse := createNurse(t, env.db, "nurse.lee")
	assignIsland(t, env.db, nurse, island)

	call, err := env.calls.CreateCall(bed.ID)
	require.NoError(t, err)

	// an unoccupied bed still raises a routable call
	assert.Nil(t, call.PatientID)
	assert.Equal(t, nurse.ID, call.NurseID)
}

func TestCreateCallCooldown(t *testing.T) {
	env := newCallEnv(t, defaultCallConfig())
	island := createIsland(t, env.db, "West Wing")
	bed := createBed(t, env.db, island.ID, "W-01")
	nurse := createNurse(t, env.db, "nurse.jones")
	assignIsland(t, env.db, nurse, island)

	first, err := env.calls.CreateCall(bed.ID)
	require.NoError(t, err)

	_, err = env.calls.CreateCall(bed.ID)
	assert.ErrorIs(t, err, apperrors.ErrCooldownActive)

	// age the first call past the cooldown window
	require.NoError(t, env.db.Model(&models.Call{}).
		Where("id = ?", first.ID).
		Update("created_at", time.Now().UTC().Add(-31*time.Second)).Error)

	second, err := env.calls.CreateCall(bed.ID)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCooldownOnlyCountsActiveCalls(t *testing.T) {
	env := newCallEnv(t, defaultCallConfig())
	island := createIsland(t, env.db, "West Wing")
	bed := createBed(t, env.db, island.ID, "W-01")
	nurse := createNurse(t, env.db, "nurse.jones")
	assignIsland(t, env.db, nurse, island)

	first, err := env.calls.CreateCall(bed.ID)
	require.NoError(t, err)

	_, err = env.calls.AcknowledgeCall(first.ID)
	require.NoError(t, err)

	// acknowledging frees the bed for a new call immediately
	_, err = env.calls.CreateCall(bed.ID)
	assert.NoError(t, err)
}

func TestCooldownIsPerBed(t *testing.T) {
	env := newCallEnv(t, defaultCallConfig())
	island := createIsland(t, env.db, "West Wing")
	bedA := createBed(t, env.db, island.ID, "W-01")
	bedB := createBed(t, env.db, island.ID, "W-02")
	nurse := createNurse(t, env.db, "nurse.jones")
	assignIsland(t, env.db, nurse, island)

	_, err := env.calls.CreateCall(bedA.ID)
	require.NoError(t, err)

	_, err = env.calls.CreateCall(bedB.ID)
	assert.NoError(t, err)
}

func TestSubscribeReceivesDispatchedCall(t *testing.T) {
	env := newCallEnv(t, defaultCallConfig())
	island := createIsland(t, env.db, "West Wing")
	bed := createBed(t, env.db, island.ID, "W-01")
	nurse := createNurse(t, env.db, "nurse.jones")
	assignIsland(t, env.db, nurse, island)

	other := createNurse(t, env.db, "nurse.other")
	otherCh, otherCancel := env.calls.Subscribe(other.ID)
	defer otherCancel()

	ch, cancel := env.calls.Subscribe(nurse.ID)
	defer cancel()

	created, err := env.calls.CreateCall(bed.ID)
	require.NoError(t, err)

	select {
	case got := <-ch:
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, models.CallStatusActive, got.Status)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for live call delivery")
	}

	select {
	case got := <-otherCh:
		t.Fatalf("call %d delivered to the wrong nurse", got.ID)
	default:
	}
}

func TestSubscribeByUserID(t *testing.T) {
	env := newCallEnv(t, defaultCallConfig())
	island := createIsland(t, env.db, "West Wing")
	bed := createBed(t, env.db, island.ID, "W-01")
	nurse := createNurse(t, env.db, "nurse.jones")
	assignIsland(t, env.db, nurse, island)

	// clients often hold their login id rather than the nurse row id
	ch, cancel := env.calls.Subscribe(nurse.UserID)
	defer cancel()

	created, err := env.calls.CreateCall(bed.ID)
	require.NoError(t, err)

	select {
	case got := <-ch:
		assert.Equal(t, created.ID, got.ID)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for live call delivery")
	}
}

func TestAcknowledgeCall(t *testing.T) {
	env := newCallEnv(t, defaultCallConfig())
	island := createIsland(t, env.db, "West Wing")
	bed := createBed(t, env.db, island.ID, "W-01")
	nurse := createNurse(t, env.db, "nurse.jones")
	assignIsland(t, env.db, nurse, island)

	created, err := env.calls.CreateCall(bed.ID)
	require.NoError(t, err)

	acked, err := env.calls.AcknowledgeCall(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CallStatusAcknowledged, acked.Status)

	active, err := env.calls.GetActiveCallsForNurse(nurse.ID)
	require.NoError(t, err)
	assert.Empty(t, active)

	// a second acknowledge must be rejected, not silently succeed
	_, err = env.calls.AcknowledgeCall(created.ID)
	assert.ErrorIs(t, err, apperrors.ErrCallNotActive)
}

func TestAcknowledgeUnknownCall(t *testing.T) {
	env := newCallEnv(t, defaultCallConfig())

	_, err := env.calls.AcknowledgeCall(12345)
	assert.ErrorIs(t, err, apperrors.ErrCallNotFound)
}

func TestGetActiveCallsForUnknownNurse(t *testing.T) {
	env := newCallEnv(t, defaultCallConfig())

	calls, err := env.calls.GetActiveCallsForNurse(12345)
	require.NoError(t, err)
	assert.Empty(t, calls)
}

func TestGetActiveCallsByUserID(t *testing.T) {
	env := newCallEnv(t, defaultCallConfig())
	island := createIsland(t, env.db, "West Wing")
	bed := createBed(t, env.db, island.ID, "W-01")
	nurse := createNurse(t, env.db, "nurse.jones")
	assignIsland(t, env.db, nurse, island)

	created, err := env.calls.CreateCall(bed.ID)
	require.NoError(t, err)

	calls, err := env.calls.GetActiveCallsForNurse(nurse.UserID)
	require.NoError(t, err)
	require.Len(t, calls, 1)
	assert.Equal(t, created.ID, calls[0].ID)
	assert.Equal(t, bed.ID, calls[0].Bed.ID)
	assert.Equal(t, island.Name, calls[0].Bed.Island.Name)
}
