package entity

// DateLock enforces at most one ACTIVE event per calendar date. It exists iff
// an ACTIVE event owns the date, and is created and deleted atomically with
// the owning event's lifecycle transitions.
type DateLock struct {
	EventDate string `dynamodbav:"eventDate"` // YYYY-MM-DD
	EventID   string `dynamodbav:"eventId"`
}
