package constants

const (
	// General Settings
	SettingUserID              = "user_id"
	SettingTimezone            = "timezone"
	SettingGoal                = "goal"
	SettingTimeAvailableMin    = "time_available_min"
	SettingEquipmentPreference = "equipment_preference"
	SettingHistoryWindow       = "history_window"

	// Default Settings Values
	DefaultTimezone            = "Local" // Use system local timezone by default
	DefaultGoal                = ""
	DefaultTimeAvailableMin    = 0 // 0 means no time budget
	DefaultEquipmentPreference = ""
	DefaultHistoryWindow       = 7
)
