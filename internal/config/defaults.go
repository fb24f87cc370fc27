package config

import (
	"github.com/knadh/koanf/providers/confmap"

	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/constants"
)

func DefaultConfig() map[string]interface{} {
	return map[string]interface{}{
		"store":    constants.DefaultStorePath,
		"timezone": constants.DefaultTimezone,
		"debug":    false,
		"scheduler": map[string]interface{}{
			"interval":   constants.DefaultPollInterval.String(),
			"due_window": constants.DefaultDueWindow.String(),
		},
		"reminders": map[string]interface{}{
			"default_snooze": constants.DefaultSnooze.String(),
		},
		"notifications": map[string]interface{}{
			"enabled":     constants.DefaultNotificationsEnabled,
			"desktop":     constants.DefaultDesktopNotifications,
			"duration_ms": constants.NotificationDurationMs,
		},
		"server": map[string]interface{}{
			"addr": constants.DefaultServerAddr,
		},
	}
}

func NewDefaultProvider() *confmap.Confmap {
	return confmap.Provider(DefaultConfig(), ".")
}

func GetDefaultConfigPath() string {
	return constants.DefaultConfigFile
}
