package service

import (
	"fmt"
	"testing"
	"time"

	"nurse-call-backend/internal/config"
	"nurse-call-backend/internal/database"
	"nurse-call-backend/internal/hub"
	"nurse-call-backend/internal/models"
	"nurse-call-backend/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
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

type callEnv struct {
	db       *gorm.DB
	liveHub  *hub.Hub
	callRepo *repository.CallRepository
	resolver *ResolverService
	calls    *CallService
}

func newCallEnv(t *testing.T, cfg config.CallConfig) *callEnv {
	t.Helper()

	db := setupTestDB(t)
	liveHub := hub.New()
	log := zap.NewNop()

	callRepo := repository.NewCallRepo(db)
	bedRepo := repository.NewBedRepo(db)
	nurseRepo := repository.NewNurseRepo(db)
	pushRepo := repository.NewPushSubscriptionRepo(db)

	resolver := NewResolverService(nurseRepo)
	pushService := NewPushService(pushRepo, nurseRepo, config.PushConfig{}, log)
	notifier := NewNotificationService(liveHub, pushService, log)
	calls := NewCallService(callRepo, bedRepo, resolver, notifier, liveHub, cfg)

	return &callEnv{
		db:       db,
		liveHub:  liveHub,
		callRepo: callRepo,
		resolver: resolver,
		calls:    calls,
	}
}

func defaultCallConfig() config.CallConfig {
	return config.CallConfig{
		Cooldown: 30 * time.Second,
		TTL:      10 * time.Minute,
	}
}

func createIsland(t *testing.T, db *gorm.DB, name string) *models.Island {
	t.Helper()
	island := &models.Island{Name: name}
	require.NoError(t, db.Create(island).Error)
	return island
}

func createBed(t *testing.T, db *gorm.DB, islandID uint, number string) *models.Bed {
	t.Helper()
	bed := &models.Bed{IslandID: islandID, BedNumber: number, QRToken: fmt.Sprintf("qr-%d-%s", islandID, number)}
	require.NoError(t, db.Create(bed).Error)
	return bed
}

func createUser(t *testing.T, db *gorm.DB, username, role string) *models.User {
	t.Helper()
	user := &models.User{Username: username, PasswordHash: "x", FullName: username, Role: role}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createNurse(t *testing.T, db *gorm.DB, username string) *models.Nurse {
	t.Helper()
	user := createUser(t, db, username, models.RoleNurse)
	nurse := &models.Nurse{UserID: user.ID}
	require.NoError(t, db.Create(nurse).Error)
	nurse.User = *user
	return nurse
}

func assignIsland(t *testing.T, db *gorm.DB, nurse *models.Nurse, island *models.Island) {
	t.Helper()
	require.NoError(t, db.Model(nurse).Association("AssignedIslands").Append(island))
}

func assignBed(t *testing.T, db *gorm.DB, nurse *models.Nurse, bed *models.Bed) {
	t.Helper()
	require.NoError(t, db.Model(nurse).Association("AssignedBeds").Append(bed))
}

func createPatientInBed(t *testing.T, db *gorm.DB, username string, bedID uint) *models.Patient {
	t.Helper()
	user := createUser(t, db, username, models.RolePatient)
	patient := &models.Patient{UserID: user.ID, BedID: &bedID}
	require.NoError(t, db.Create(patient).Error)
	patient.User = *user
	return patient
}
