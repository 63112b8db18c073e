package models

// Settings represents application-wide settings
type Settings struct {
	UserID              string `json:"user_id"`              // local user identifier, generated at init
	Timezone            string `json:"timezone"`             // IANA timezone name, or "Local" for system timezone
	Goal                string `json:"goal"`                 // stated fitness goal, e.g. "weight_loss"
	TimeAvailableMin    int    `json:"time_available_min"`   // default workout time budget, 0 for none
	EquipmentPreference string `json:"equipment_preference"` // "bodyweight", "equipment" or empty
	HistoryWindow       int    `json:"history_window"`       // default days listed by history and summary
}
