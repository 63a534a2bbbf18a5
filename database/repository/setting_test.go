package repository

import (
	"testing"

	"lansdowne360/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Setting{}, &models.Reservation{}))
	return db
}

func TestSettingUpsertAndGetCategory(t *testing.T) {
	repo := NewGormSettingRepo(newTestDB(t))

	require.NoError(t, repo.Upsert("ezee", "base_url", "https://pms.test"))
	require.NoError(t, repo.Upsert("ezee", "hotel_code", "H1"))
	require.NoError(t, repo.Upsert("ezee", "base_url", "https://pms2.test")) // overwrite

	settings, err := repo.GetCategory("ezee")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"base_url":   "https://pms2.test",
		"hotel_code": "H1",
	}, settings)
}

func TestSettingEmptyCategoryYieldsEmptyMap(t *testing.T) {
	repo := NewGormSettingRepo(newTestDB(t))
	settings, err := repo.GetCategory("nope")
	require.NoError(t, err)
	assert.Empty(t, settings)
}

func TestReservationUpdateStatusByConfirmation(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormReservationRepo(db)

	require.NoError(t, repo.Create(&models.Reservation{
		ID:                 "res-1",
		ConfirmationNumber: "AI12345678",
		Status:             "confirmed",
		PaymentStatus:      "pending",
	}))

	require.NoError(t, repo.UpdateStatusByConfirmation("AI12345678", "cancelled"))

	row, err := repo.GetByConfirmation("AI12345678")
	require.NoError(t, err)
	assert.Equal(t, "cancelled", row.Status)
	assert.Equal(t, "pending", row.PaymentStatus, "payment status is independent of lifecycle status")

	err = repo.UpdateStatusByConfirmation("UNKNOWN", "cancelled")
	assert.Error(t, err)
}
