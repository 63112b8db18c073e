package models

import (
	"fmt"

	"github.com/julianstephens/smartygym/internal/constants"
)

// MapToSettings converts a map of key-value pairs to a Settings struct.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := Settings{}

	for key, value := range data {
		switch key {
		case constants.SettingUserID:
			settings.UserID = value
		case constants.SettingTimezone:
			settings.Timezone = value
		case constants.SettingGoal:
			settings.Goal = value
		case constants.SettingTimeAvailableMin:
			if _, err := fmt.Sscanf(value, "%d", &settings.TimeAvailableMin); err != nil {
				return Settings{}, fmt.Errorf("parsing time_available_min: %w", err)
			}
		case constants.SettingEquipmentPreference:
			settings.EquipmentPreference = value
		case constants.SettingHistoryWindow:
			if _, err := fmt.Sscanf(value, "%d", &settings.HistoryWindow); err != nil {
				return Settings{}, fmt.Errorf("parsing history_window: %w", err)
			}
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingUserID:              settings.UserID,
		constants.SettingTimezone:            settings.Timezone,
		constants.SettingGoal:                settings.Goal,
		constants.SettingTimeAvailableMin:    fmt.Sprintf("%d", settings.TimeAvailableMin),
		constants.SettingEquipmentPreference: settings.EquipmentPreference,
		constants.SettingHistoryWindow:       fmt.Sprintf("%d", settings.HistoryWindow),
	}
}

// ApplyDefaultSettings applies default values to missing settings.
func ApplyDefaultSettings(settings *Settings) {
	if settings.Timezone == "" {
		settings.Timezone = constants.DefaultTimezone
	}
	switch {
	case settings.HistoryWindow < constants.MinHistoryWindow:
		settings.HistoryWindow = constants.DefaultHistoryWindow
	case settings.HistoryWindow > constants.MaxHistoryWindow:
		settings.HistoryWindow = constants.MaxHistoryWindow
	}
}
