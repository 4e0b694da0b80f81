package entity

import "time"

type EventStatus string

const (
	EventStatusActive   EventStatus = "ACTIVE"
	EventStatusInactive EventStatus = "INACTIVE"
)

// Event is the per-night configuration record. While an event is ACTIVE its
// calendar date is owned by exactly one DateLock row referencing it.
type Event struct {
	EventID         string             `dynamodbav:"eventId"`
	EventName       string             `dynamodbav:"eventName"`
	EventDate       string             `dynamodbav:"eventDate"` // YYYY-MM-DD
	Status          EventStatus        `dynamodbav:"status"`
	MinDeposit      float64            `dynamodbav:"minDeposit"`
	TablePricing    map[string]float64 `dynamodbav:"tablePricing,omitempty"`
	SectionPricing  map[string]float64 `dynamodbav:"sectionPricing,omitempty"`
	DisabledTables  []string           `dynamodbav:"disabledTables,omitempty"`
	DisabledClients []string           `dynamodbav:"disabledClients,omitempty"`
	CreatedAt       time.Time          `dynamodbav:"createdAt"`
	CreatedBy       string             `dynamodbav:"createdBy"`
	UpdatedAt       time.Time          `dynamodbav:"updatedAt"`
}

func (e *Event) IsActive() bool {
	return e.Status == EventStatusActive
}

// HasDisabledTable reports whether tableID is explicitly disabled for this event.
func (e *Event) HasDisabledTable(tableID string) bool {
	for _, id := range e.DisabledTables {
		if id == tableID {
			return true
		}
	}
	return false
}

// HasDisabledClient reports whether clientID opted out of its default table
// for this event.
func (e *Event) HasDisabledClient(clientID string) bool {
	for _, id := range e.DisabledClients {
		if id == clientID {
			return true
		}
	}
	return false
}
