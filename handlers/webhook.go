package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"

	"lansdowne360/config"
	"lansdowne360/database/repository"
	"lansdowne360/models"
	"lansdowne360/services/tasks"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// WebhookHandler receives booking status events pushed by the PMS.
type WebhookHandler struct {
	SettingRepo repository.SettingRepository
	QueueClient *asynq.Client
	Logger      *zap.Logger
}

// NewWebhookHandler creates a new webhook handler.
func NewWebhookHandler(settingRepo repository.SettingRepository, queueClient *asynq.Client, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{SettingRepo: settingRepo, QueueClient: queueClient, Logger: logger}
}

// EzeeWebhookHandler verifies the HMAC signature on the raw body and
// enqueues a booking sync task. The ledger update itself happens in the
// background worker.
func (h *WebhookHandler) EzeeWebhookHandler(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
		return
	}

	secret := h.webhookSecret()
	if secret == "" {
		h.Logger.Warn("ezee webhook received but no webhook secret is configured")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "webhook not configured"})
		return
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(c.GetHeader("X-Ezee-Signature"))) {
		h.Logger.Warn("ezee webhook signature mismatch")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	var event models.BookingStatusEvent
	if err := json.Unmarshal(body, &event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	task, err := tasks.NewBookingSyncTask(event)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build sync task"})
		return
	}
	if _, err := h.QueueClient.Enqueue(task); err != nil {
		h.Logger.Error("failed to enqueue booking sync task", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to enqueue sync task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "accepted"})
}

// webhookSecret resolves the shared secret the same way the booking
// engine resolves the rest of the PMS connection settings.
func (h *WebhookHandler) webhookSecret() string {
	settings, err := h.SettingRepo.GetCategory("ezee")
	if err == nil {
		if secret := settings["webhook_secret"]; secret != "" {
			return secret
		}
	}
	return config.AppConfig.EzeeWebhookSecret
}
