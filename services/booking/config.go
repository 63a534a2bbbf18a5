package booking

import (
	"lansdowne360/config"
	"lansdowne360/services/pms"
	"lansdowne360/utils"

	"go.uber.org/zap"
)

// settingsCategory is the settings-table category holding the PMS
// connection rows.
const settingsCategory = "ezee"

// resolveConfig builds the PMS connection descriptor for this call.
// Each field falls back to environment configuration independently, so
// a tenant can override just the credentials it needs. Configuration is
// re-resolved on every operation rather than cached.
func (e *DefaultBookingEngine) resolveConfig() (pms.Config, error) {
	settings, err := e.SettingsRepo.GetCategory(settingsCategory)
	if err != nil {
		utils.GetLogger().Warn("failed to read ezee settings, falling back to environment", zap.Error(err))
		settings = map[string]string{}
	}

	cfg := pms.Config{
		BaseURL:       pick(settings["base_url"], config.AppConfig.EzeeBaseURL),
		HotelCode:     pick(settings["hotel_code"], config.AppConfig.EzeeHotelCode),
		Username:      pick(settings["username"], config.AppConfig.EzeeUsername),
		Password:      pick(settings["password"], config.AppConfig.EzeePassword),
		WebhookSecret: pick(settings["webhook_secret"], config.AppConfig.EzeeWebhookSecret),
	}
	if cfg.BaseURL == "" {
		return pms.Config{}, newConfigError("ezee base URL is configured neither in settings nor environment")
	}
	return cfg, nil
}

// client constructs a fresh PMS client for one operation.
func (e *DefaultBookingEngine) client() (*pms.Client, error) {
	cfg, err := e.resolveConfig()
	if err != nil {
		return nil, err
	}
	return pms.NewClient(cfg), nil
}

func pick(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
