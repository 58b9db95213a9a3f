package repository

import (
	"testing"
	"time"

	"nurse-call-backend/internal/apperrors"
	"nurse-call-backend/internal/database"
	"nurse-call-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	require.NoError(t, err)

	// a single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

type callFixture struct {
	db      *gorm.DB
	repo    *CallRepository
	bedID   uint
	nurseID uint
}

func newCallFixture(t *testing.T) *callFixture {
	t.Helper()
	db := setupTestDB(t)

	island := &models.Island{Name: "West Wing"}
	require.NoError(t, db.Create(island).Error)
	bed := &models.Bed{IslandID: island.ID, BedNumber: "W-01", QRToken: "qr-w-01"}
	require.NoError(t, db.Create(bed).Error)
	user := &models.User{Username: "nurse.jones", PasswordHash: "x", Role: models.RoleNurse}
	require.NoError(t, db.Create(user).Error)
	nurse := &models.Nurse{UserID: user.ID}
	require.NoError(t, db.Create(nurse).Error)

	return &callFixture{
		db:      db,
		repo:    NewCallRepo(db),
		bedID:   bed.ID,
		nurseID: nurse.ID,
	}
}

func (f *callFixture) insertCall(t *testing.T, status string, createdAt, expiresAt time.Time) *models.Call {
	t.Helper()
	call := &models.Call{
		BedID:     f.bedID,
		NurseID:   f.nurseID,
		Status:    status,
		CreatedAt: createdAt,
		ExpiresAt: expiresAt,
	}
	require.NoError(t, f.repo.CreateCall(call))
	return call
}

func TestGetCallByIDNotFound(t *testing.T) {
	f := newCallFixture(t)

	_, err := f.repo.GetCallByID(999)
	assert.ErrorIs(t, err, apperrors.ErrCallNotFound)
}

func TestGetLatestActiveCallForBed(t *testing.T) {
	f := newCallFixture(t)
	now := time.Now().UTC()

	latest, err := f.repo.GetLatestActiveCallForBed(f.bedID)
	require.NoError(t, err)
	assert.Nil(t, latest)

	f.insertCall(t, models.CallStatusAcknowledged, now.Add(-2*time.Minute), now.Add(8*time.Minute))
	older := f.insertCall(t, models.CallStatusActive, now.Add(-time.Minute), now.Add(9*time.Minute))
	newest := f.insertCall(t, models.CallStatusActive, now, now.Add(10*time.Minute))

	latest, err = f.repo.GetLatestActiveCallForBed(f.bedID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, newest.ID, latest.ID)
	assert.NotEqual(t, older.ID, latest.ID)
}

func TestGetActiveCallsForNurseOrdering(t *testing.T) {
	f := newCallFixture(t)
	now := time.Now().UTC()

	oldest := f.insertCall(t, models.CallStatusActive, now.Add(-3*time.Minute), now.Add(7*time.Minute))
	middle := f.insertCall(t, models.CallStatusActive, now.Add(-2*time.Minute), now.Add(8*time.Minute))
	newest := f.insertCall(t, models.CallStatusActive, now.Add(-time.Minute), now.Add(9*time.Minute))

	calls, err := f.repo.GetActiveCallsForNurse(f.nurseID, now)
	require.NoError(t, err)
	require.Len(t, calls, 3)
	assert.Equal(t, newest.ID, calls[0].ID)
	assert.Equal(t, middle.ID, calls[1].ID)
	assert.Equal(t, oldest.ID, calls[2].ID)
}

func TestGetActiveCallsFiltersOverdueAndNonActive(t *testing.T) {
	f := newCallFixture(t)
	now := time.Now().UTC()

	live := f.insertCall(t, models.CallStatusActive, now.Add(-time.Minute), now.Add(9*time.Minute))
	// overdue but not yet swept: must still be hidden from the nurse
	f.insertCall(t, models.CallStatusActive, now.Add(-20*time.Minute), now.Add(-10*time.Minute))
	f.insertCall(t, models.CallStatusAcknowledged, now.Add(-2*time.Minute), now.Add(8*time.Minute))
	f.insertCall(t, models.CallStatusExpired, now.Add(-30*time.Minute), now.Add(-20*time.Minute))

	calls, err := f.repo.GetActiveCallsForNurse(f.nurseID, now)
	require.NoError(t, err)
	require.Len(t, calls, 1)
	assert.Equal(t, live.ID, calls[0].ID)
}

func TestAcknowledgeActiveCallIsConditional(t *testing.T) {
	f := newCallFixture(t)
	now := time.Now().UTC()

	call := f.insertCall(t, models.CallStatusActive, now, now.Add(10*time.Minute))

	ok, err := f.repo.AcknowledgeActiveCall(call.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.repo.AcknowledgeActiveCall(call.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	expired := f.insertCall(t, models.CallStatusExpired, now.Add(-20*time.Minute), now.Add(-10*time.Minute))
	ok, err = f.repo.AcknowledgeActiveCall(expired.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestExpireOverdueCalls(t *testing.T) {
	f := newCallFixture(t)
	now := time.Now().UTC()

	overdueA := f.insertCall(t, models.CallStatusActive, now.Add(-30*time.Minute), now.Add(-20*time.Minute))
	overdueB := f.insertCall(t, models.CallStatusActive, now.Add(-15*time.Minute), now.Add(-5*time.Minute))
	fresh := f.insertCall(t, models.CallStatusActive, now, now.Add(10*time.Minute))
	acked := f.insertCall(t, models.CallStatusAcknowledged, now.Add(-30*time.Minute), now.Add(-20*time.Minute))

	count, err := f.repo.ExpireOverdueCalls(now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	assertStatus := func(id uint, want string) {
		var call models.Call
		require.NoError(t, f.db.First(&call, id).Error)
		assert.Equal(t, want, call.Status)
	}
	assertStatus(overdueA.ID, models.CallStatusExpired)
	assertStatus(overdueB.ID, models.CallStatusExpired)
	assertStatus(fresh.ID, models.CallStatusActive)
	assertStatus(acked.ID, models.CallStatusAcknowledged)

	// a second sweep finds nothing left to expire
	count, err = f.repo.ExpireOverdueCalls(now)
	require.NoError(t, err)
	assert.Zero(t, count)
}
