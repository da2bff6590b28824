package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "JAPA_ROUND_COMPLETED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent helps embed common logic if needed,
// strictly creating valid implementations is preferred though.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

const (
	TypeJapaRoundCompleted = "JAPA_ROUND_COMPLETED"
	TypeUserLogin          = "USER_LOGIN"
	TypeBhaktRegistered    = "BHAKT_REGISTERED"
)

// NewJapaRoundCompleted is published after a full mantra cycle is persisted.
func NewJapaRoundCompleted(userToken string, totalCount, roundsToday int) Event {
	return BaseEvent{
		Type: TypeJapaRoundCompleted,
		Data: map[string]interface{}{
			"user_token":   userToken,
			"total_count":  totalCount,
			"rounds_today": roundsToday,
		},
		OccurredAt: time.Now(),
	}
}

// NewUserLogin is published when an OTP or harijap login succeeds.
func NewUserLogin(userToken, name, method string) Event {
	return BaseEvent{
		Type: TypeUserLogin,
		Data: map[string]interface{}{
			"user_token": userToken,
			"name":       name,
			"method":     method,
		},
		OccurredAt: time.Now(),
	}
}

// NewBhaktRegistered is published when a bhaktgan registration is stored.
func NewBhaktRegistered(name, email, city string) Event {
	return BaseEvent{
		Type: TypeBhaktRegistered,
		Data: map[string]interface{}{
			"name":  name,
			"email": email,
			"city":  city,
		},
		OccurredAt: time.Now(),
	}
}
