package service

import (
	"strings"
	"testing"

	"nurse-call-backend/internal/apperrors"
	"nurse-call-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newQRCodeService(t *testing.T) (*QRCodeService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	bedRepo := repository.NewBedRepo(db)
	resolver := NewResolverService(repository.NewNurseRepo(db))
	return NewQRCodeService(bedRepo, resolver), db
}

func TestGetQRCodeDataUnknownToken(t *testing.T) {
	svc, _ := newQRCodeService(t)

	_, err := svc.GetQRCodeData("no-such-token")
	assert.ErrorIs(t, err, apperrors.ErrBedNotFound)
}

func TestGetQRCodeDataFullBed(t *testing.T) {
	svc, db := newQRCodeService(t)

	island := createIsland(t, db, "West Wing")
	bed := createBed(t, db, island.ID, "W-01")
	nurse := createNurse(t, db, "nurse.jones")
	assignIsland(t, db, nurse, island)
	createPatientInBed(t, db, "patient.smith", bed.ID)

	data, err := svc.GetQRCodeData(bed.QRToken)
	require.NoError(t, err)

	assert.Equal(t, bed.ID, data.BedID)
	assert.Equal(t, "W-01", data.BedNumber)
	assert.Equal(t, "West Wing", data.IslandName)
	require.NotNil(t, data.Patient)
	assert.Equal(t, "patient.smith", data.Patient.FullName)
	require.NotNil(t, data.Nurse)
	assert.Equal(t, "nurse.jones", data.Nurse.FullName)
}

func TestGetQRCodeDataUnassignedEmptyBed(t *testing.T) {
	svc, db := newQRCodeService(t)

	island := createIsland(t, db, "East Wing")
	bed := createBed(t, db, island.ID, "E-01")

	// a bed with no patient and no nurse still yields a scannable payload
	data, err := svc.GetQRCodeData(bed.QRToken)
	require.NoError(t, err)
	assert.Nil(t, data.Patient)
	assert.Nil(t, data.Nurse)
}

func TestGenerateQRCodeImage(t *testing.T) {
	svc, db := newQRCodeService(t)

	island := createIsland(t, db, "West Wing")
	bed := createBed(t, db, island.ID, "W-01")

	image, err := svc.GenerateQRCodeImage(bed.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(image, "data:image/png;base64,"))

	_, err = svc.GenerateQRCodeImage(999)
	assert.ErrorIs(t, err, apperrors.ErrBedNotFound)
}
