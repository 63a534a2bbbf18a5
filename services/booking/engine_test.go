package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"lansdowne360/config"
	"lansdowne360/database/repository"
	"lansdowne360/models"
	"lansdowne360/services/pms"

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
	require.NoError(t, db.AutoMigrate(&models.Reservation{}, &models.Setting{}))
	return db
}

func newTestEngine(t *testing.T, db *gorm.DB, baseURL string) *DefaultBookingEngine {
	t.Helper()
	settingRepo := repository.NewGormSettingRepo(db)
	require.NoError(t, settingRepo.Upsert("ezee", "base_url", baseURL))
	require.NoError(t, settingRepo.Upsert("ezee", "hotel_code", "H1"))
	require.NoError(t, settingRepo.Upsert("ezee", "username", "u"))
	require.NoError(t, settingRepo.Upsert("ezee", "password", "p"))
	return &DefaultBookingEngine{
		SettingsRepo:    settingRepo,
		ReservationRepo: repository.NewGormReservationRepo(db),
	}
}

func mockPMS(t *testing.T, bookingHandler http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "tok1",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	})
	if bookingHandler != nil {
		mux.HandleFunc("/booking", bookingHandler)
	}
	mux.HandleFunc("/availability", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items":[{"roomTypeId":"DLX","roomsAvailable":2,"rate":4500}]}`)
	})
	mux.HandleFunc("/booking/cancel", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"confirmationNumber":"AI12345678","total":9000,"status":"cancelled"}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestCreateBookingMirrorsLedger(t *testing.T) {
	srv := mockPMS(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"confirmationNumber":"AI12345678","total":9000,"status":"confirmed"}`)
	})
	db := newTestDB(t)
	engine := newTestEngine(t, db, srv.URL)

	input := models.BookingInput{
		CheckIn:     "2025-06-01",
		CheckOut:    "2025-06-03",
		GuestsCount: 2,
		Nights:      2,
		Subtotal:    9000,
		Total:       9000,
	}
	result, err := engine.CreateBooking(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "AI12345678", result.ConfirmationNumber)

	var rows []models.Reservation
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "AI12345678", row.ConfirmationNumber)
	assert.Equal(t, "confirmed", row.Status)
	assert.Equal(t, "pending", row.PaymentStatus)
	assert.Equal(t, "2025-06-01", row.CheckIn)
	assert.Equal(t, "2025-06-03", row.CheckOut)
	assert.Equal(t, 2, row.GuestsCount)
	assert.Equal(t, 2, row.Nights)
	assert.Equal(t, 9000.0, row.Total)
	assert.Nil(t, row.GuestID)
	assert.Nil(t, row.HotelID)
	assert.Nil(t, row.RoomID)
}

func TestCreateBookingInvalidResponseNotMirrored(t *testing.T) {
	srv := mockPMS(t, func(w http.ResponseWriter, r *http.Request) {
		// No confirmation number: must be rejected before the ledger write.
		fmt.Fprint(w, `{"total":9000,"status":"confirmed"}`)
	})
	db := newTestDB(t)
	engine := newTestEngine(t, db, srv.URL)

	_, err := engine.CreateBooking(context.Background(), models.BookingInput{
		CheckIn: "2025-06-01", CheckOut: "2025-06-03",
	})
	var valErr *pms.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "confirmationNumber", valErr.Field)

	var count int64
	require.NoError(t, db.Model(&models.Reservation{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCheckAvailabilityPassesThrough(t *testing.T) {
	srv := mockPMS(t, nil)
	db := newTestDB(t)
	engine := newTestEngine(t, db, srv.URL)

	items, err := engine.CheckAvailability(context.Background(), "2025-06-01", "2025-06-03", "")
	require.NoError(t, err)
	assert.Equal(t, []pms.AvailabilityItem{{RoomTypeID: "DLX", RoomsAvailable: 2, Rate: 4500}}, items)
}

func TestCancelBookingReturnsNewStatus(t *testing.T) {
	srv := mockPMS(t, nil)
	db := newTestDB(t)
	engine := newTestEngine(t, db, srv.URL)

	result, err := engine.CancelBooking(context.Background(), "AI12345678")
	require.NoError(t, err)
	assert.Equal(t, pms.StatusCancelled, result.Status)
}

func TestResolveConfigEnvFallbackPerField(t *testing.T) {
	db := newTestDB(t)
	settingRepo := repository.NewGormSettingRepo(db)
	// Only the base URL lives in the settings store.
	require.NoError(t, settingRepo.Upsert("ezee", "base_url", "https://pms.test"))

	prev := config.AppConfig
	config.AppConfig.EzeeUsername = "envuser"
	config.AppConfig.EzeePassword = "envpass"
	config.AppConfig.EzeeHotelCode = "ENVH1"
	t.Cleanup(func() { config.AppConfig = prev })

	engine := &DefaultBookingEngine{
		SettingsRepo:    settingRepo,
		ReservationRepo: repository.NewGormReservationRepo(db),
	}
	cfg, err := engine.resolveConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://pms.test", cfg.BaseURL)
	assert.Equal(t, "envuser", cfg.Username)
	assert.Equal(t, "envpass", cfg.Password)
	assert.Equal(t, "ENVH1", cfg.HotelCode)
}

func TestResolveConfigFailsWithoutBaseURL(t *testing.T) {
	db := newTestDB(t)
	prev := config.AppConfig
	config.AppConfig.EzeeBaseURL = ""
	t.Cleanup(func() { config.AppConfig = prev })

	engine := &DefaultBookingEngine{
		SettingsRepo:    repository.NewGormSettingRepo(db),
		ReservationRepo: repository.NewGormReservationRepo(db),
	}
	_, err := engine.resolveConfig()
	var engErr *EngineError
	require.ErrorAs(t, err, &engErr)
	assert.Equal(t, "configError", engErr.Code)
}
