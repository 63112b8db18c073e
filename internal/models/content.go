package models

import "time"

type ContentType string

const (
	ContentWorkout ContentType = "workout"
	ContentProgram ContentType = "program"
)

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// ContentItem is a read-only catalog entry (workout or training program).
type ContentItem struct {
	ID          string      `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Type        ContentType `json:"type" yaml:"type"`
	Category    string      `json:"category" yaml:"category"`
	Difficulty  *Difficulty `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	Duration    string      `json:"duration,omitempty" yaml:"duration,omitempty"` // e.g. "30 min"
	Equipment   string      `json:"equipment,omitempty" yaml:"equipment,omitempty"`
	Format      string      `json:"format,omitempty" yaml:"format,omitempty"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
}

type ActivityKind string

const (
	ActivityCompleted ActivityKind = "completed"
	ActivityScheduled ActivityKind = "scheduled"
	ActivityOngoing   ActivityKind = "ongoing"
)

// Activity links a user to a content item: a finished workout, a workout
// scheduled for a day, or a program in progress.
type Activity struct {
	ID        string       `json:"id"`
	UserID    string       `json:"user_id"`
	ContentID string       `json:"content_id"`
	Category  string       `json:"category"`
	Kind      ActivityKind `json:"kind"`
	Date      string       `json:"date"` // YYYY-MM-DD format
	CreatedAt time.Time    `json:"created_at"`
}

// SmartyContext is the per-request snapshot the recommendation engine reads.
type SmartyContext struct {
	Checkin              *CheckinRecord
	Goal                 string
	TimeAvailable        *int // minutes
	EquipmentPreference  string
	RecentCategories     []string // most recent first
	CompletedIDs         map[string]bool
	DaysSinceLastWorkout int // 999 when unknown
	ScheduledToday       []ContentItem
	OngoingPrograms      []ContentItem
}

// QuestionAnswers are explicit user answers; set fields win over SmartyContext.
type QuestionAnswers struct {
	Goal          *string
	TimeAvailable *int
	Equipment     *string
	Energy        *int // 1-10
	Mood          *int // 1-5
	Soreness      *int // 1-5
	SleepHours    *float64
}

type ScoredContent struct {
	Item    ContentItem `json:"item"`
	Score   int         `json:"score"`
	Reasons []string    `json:"reasons"`
}

type NoteSeverity string

const (
	NoteCaution       NoteSeverity = "caution"
	NoteEncouragement NoteSeverity = "encouragement"
	NoteInfo          NoteSeverity = "info"
)

type AdvisoryNote struct {
	Message  string       `json:"message"`
	Severity NoteSeverity `json:"severity"`
}
