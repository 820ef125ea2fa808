package client_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-records/internal/audit"
	dbpkg "github.com/BruksfildServices01/salon-records/internal/db"
	domain "github.com/BruksfildServices01/salon-records/internal/domain/salon"
	infraRepo "github.com/BruksfildServices01/salon-records/internal/infra/repository"
	"github.com/BruksfildServices01/salon-records/internal/models"
	"github.com/BruksfildServices01/salon-records/internal/usecase/client"
)

func newTestRepo(t *testing.T) (domain.Repository, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))
	return infraRepo.NewSalonGormRepository(db), db
}

// seedClientTree creates one client with n appointments, each carrying p
// purchases and s services.
func seedClientTree(t *testing.T, db *gorm.DB, clientID string, n, p, s int) {
	require.NoError(t, db.Create(&models.Client{
		ID:        clientID,
		FirstName: "Alice",
		LastName:  "Anders",
	}).Error)

	for i := 0; i < n; i++ {
		apID := fmt.Sprintf("%s-ap%d", clientID, i)
		require.NoError(t, db.Create(&models.Appointment{
			ID:        apID,
			ClientID:  clientID,
			StartTime: time.Date(2016, time.February, 1+i, 10, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2016, time.February, 1+i, 11, 0, 0, 0, time.UTC),
		}).Error)

		for j := 0; j < p; j++ {
			require.NoError(t, db.Create(&models.Purchase{
				ID:            fmt.Sprintf("%s-pu%d", apID, j),
				AppointmentID: apID,
				Name:          "Shampoo",
				Price:         decimal.NewFromFloat(19.95),
				LoyaltyPoints: 30,
			}).Error)
		}
		for j := 0; j < s; j++ {
			require.NoError(t, db.Create(&models.Service{
				ID:            fmt.Sprintf("%s-sv%d", apID, j),
				AppointmentID: apID,
				Name:          "Cut",
				Price:         decimal.NewFromFloat(45),
				LoyaltyPoints: 60,
			}).Error)
		}
	}
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

func TestDeleteCascade_RemovesClientAndAllReferences(t *testing.T) {
	repo, db := newTestRepo(t)
	uc := client.NewDeleteCascade(repo, audit.NewDispatcher(audit.New(db)))

	// 1 client + 2 appointments + 2*3 purchases + 2*2 services = 13 rows
	seedClientTree(t, db, "c1", 2, 3, 2)
	// an unrelated client that must survive
	seedClientTree(t, db, "c2", 1, 1, 1)

	deleted, err := uc.Execute(context.Background(), "c1")
	require.NoError(t, err)
	assert.EqualValues(t, 1+2+2*3+2*2, deleted)

	assert.EqualValues(t, 1, countRows(t, db, &models.Client{}))
	assert.EqualValues(t, 1, countRows(t, db, &models.Appointment{}))
	assert.EqualValues(t, 1, countRows(t, db, &models.Purchase{}))
	assert.EqualValues(t, 1, countRows(t, db, &models.Service{}))

	var orphans int64
	require.NoError(t, db.Model(&models.Appointment{}).
		Where("client_id = ?", "c1").Count(&orphans).Error)
	assert.Zero(t, orphans, "no appointment may still reference the deleted client")
}

func TestDeleteCascade_ClientWithoutAppointments(t *testing.T) {
	repo, db := newTestRepo(t)
	uc := client.NewDeleteCascade(repo, audit.NewDispatcher(audit.New(db)))

	seedClientTree(t, db, "c1", 0, 0, 0)

	deleted, err := uc.Execute(context.Background(), "c1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)
	assert.EqualValues(t, 0, countRows(t, db, &models.Client{}))
}

func TestDeleteCascade_NonexistentClient(t *testing.T) {
	repo, db := newTestRepo(t)
	uc := client.NewDeleteCascade(repo, audit.NewDispatcher(audit.New(db)))

	seedClientTree(t, db, "c1", 1, 1, 1)

	deleted, err := uc.Execute(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Zero(t, deleted)

	// nothing else was touched
	assert.EqualValues(t, 1, countRows(t, db, &models.Client{}))
	assert.EqualValues(t, 1, countRows(t, db, &models.Appointment{}))
	assert.EqualValues(t, 1, countRows(t, db, &models.Purchase{}))
	assert.EqualValues(t, 1, countRows(t, db, &models.Service{}))
}
