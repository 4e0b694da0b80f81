package entity

import "time"

type LockType string

const (
	LockTypeHold     LockType = "HOLD"
	LockTypeReserved LockType = "RESERVED"
)

// TableLock is the single lock slot per (eventDate, tableId). The slot is
// either absent, a time-boxed HOLD, or a RESERVED lock referencing a
// confirmed reservation. Expiry is lazy: an expired HOLD stays in the store
// until a competing conditioned write reclaims the slot.
type TableLock struct {
	EventDate     string    `dynamodbav:"eventDate"` // partition key
	TableID       string    `dynamodbav:"tableId"`   // sort key
	LockType      LockType  `dynamodbav:"lockType"`
	HoldID        string    `dynamodbav:"holdId,omitempty"`
	ExpiresAt     int64     `dynamodbav:"expiresAt,omitempty"` // epoch seconds, HOLD only
	ReservationID string    `dynamodbav:"reservationId,omitempty"`
	CustomerName  string    `dynamodbav:"customerName,omitempty"`
	Phone         string    `dynamodbav:"phone,omitempty"`
	CreatedAt     time.Time `dynamodbav:"createdAt"`
	CreatedBy     string    `dynamodbav:"createdBy"`
}

// IsExpired applies the lazy-expiry interpretation to a HOLD lock.
func (l *TableLock) IsExpired(now time.Time) bool {
	return l.LockType == LockTypeHold && l.ExpiresAt < now.Unix()
}
