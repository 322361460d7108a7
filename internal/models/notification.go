package models

import "time"

const (
	NotificationTypeIncomingCall = "incoming_call"

	ScreenIncomingCall = "/sessions/incoming-call"
	ScreenVideoCall    = "/sessions/video-call"
	ScreenComplete     = "/sessions/complete"
)

// NotificationPayload rides along with every armed one-shot so the tap
// handler can decide whether to navigate and so the slot can be re-armed
// after it fires. Hour and Period are kept in 12-hour form, matching what
// the user picked during onboarding.
type NotificationPayload struct {
	Type      string `json:"type"`
	Screen    string `json:"screen"`
	DayOfWeek int    `json:"dayOfWeek"`
	Hour      int    `json:"hour"`
	Minute    int    `json:"minute"`
	Period    string `json:"period"`
}

// ScheduledNotification is one armed one-shot owned by the platform
// scheduler. The primitive fires once per date; weekly recurrence is
// simulated by re-arming.
type ScheduledNotification struct {
	Identifier string              `json:"identifier"`
	FireAt     time.Time           `json:"fireAt"`
	Payload    NotificationPayload `json:"payload"`
}

// HandledNotification remembers a delivered identifier that was already
// acted upon, so a duplicate tap dispatch stays inert.
type HandledNotification struct {
	Identifier string    `gorm:"primaryKey"`
	HandledAt  time.Time `gorm:"not null"`
}
