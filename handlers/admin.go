package handlers

import (
	"net/http"
	"strconv"
	"time"

	"lansdowne360/database/repository"
	"lansdowne360/models"
	"lansdowne360/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AdminHandler exposes the back-office CRUD endpoints.
type AdminHandler struct {
	AdminRepo       repository.AdminUserRepository
	ReservationRepo repository.ReservationRepository
	RoomRepo        repository.RoomRepository
	SettingRepo     repository.SettingRepository
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(
	adminRepo repository.AdminUserRepository,
	reservationRepo repository.ReservationRepository,
	roomRepo repository.RoomRepository,
	settingRepo repository.SettingRepository,
) *AdminHandler {
	return &AdminHandler{
		AdminRepo:       adminRepo,
		ReservationRepo: reservationRepo,
		RoomRepo:        roomRepo,
		SettingRepo:     settingRepo,
	}
}

// LoginHandler authenticates an admin account and issues a JWT.
func (h *AdminHandler) LoginHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	user, err := h.AdminRepo.GetByEmail(input.Email)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to look up account", err.Error())
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, 12*time.Hour)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "name": user.Name})
}

// --- Reservations ---

// ListReservationsHandler lists mirrored reservations for the admin panel.
func (h *AdminHandler) ListReservationsHandler(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	rows, err := h.ReservationRepo.List(limit, offset)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list reservations", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": rows})
}

// GetReservationHandler returns a single mirrored reservation.
func (h *AdminHandler) GetReservationHandler(c *gin.Context) {
	row, err := h.ReservationRepo.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
		return
	}
	c.JSON(http.StatusOK, row)
}

// UpdateReservationHandler lets the admin panel adjust a mirror row
// (status, payment status, guest linkage).
func (h *AdminHandler) UpdateReservationHandler(c *gin.Context) {
	var input models.Reservation
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	input.ID = c.Param("id")

	if err := h.ReservationRepo.Update(&input); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update reservation", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// DeleteReservationHandler removes a mirror row.
func (h *AdminHandler) DeleteReservationHandler(c *gin.Context) {
	if err := h.ReservationRepo.Delete(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete reservation", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// --- Rooms ---

// ListRoomsHandler lists room content rows.
func (h *AdminHandler) ListRoomsHandler(c *gin.Context) {
	rooms, err := h.RoomRepo.List()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list rooms", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

// CreateRoomHandler adds a room content row.
func (h *AdminHandler) CreateRoomHandler(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.RoomRepo.Create(&room); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create room", err.Error())
		return
	}
	c.JSON(http.StatusCreated, room)
}

// UpdateRoomHandler updates a room content row.
func (h *AdminHandler) UpdateRoomHandler(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	room.ID = c.Param("id")
	if err := h.RoomRepo.Update(&room); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update room", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// DeleteRoomHandler removes a room content row.
func (h *AdminHandler) DeleteRoomHandler(c *gin.Context) {
	if err := h.RoomRepo.Delete(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete room", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// --- Settings ---

// ListSettingsHandler lists rows of one settings category.
func (h *AdminHandler) ListSettingsHandler(c *gin.Context) {
	rows, err := h.SettingRepo.List(c.Param("category"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list settings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": rows})
}

// UpsertSettingHandler creates or updates one settings row.
func (h *AdminHandler) UpsertSettingHandler(c *gin.Context) {
	var input struct {
		Key   string `json:"key" binding:"required"`
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.SettingRepo.Upsert(c.Param("category"), input.Key, input.Value); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save setting", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

// DeleteSettingHandler removes one settings row.
func (h *AdminHandler) DeleteSettingHandler(c *gin.Context) {
	if err := h.SettingRepo.Delete(c.Param("category"), c.Param("key")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete setting", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
