package response

// Table display statuses. HOLD is reported on raw lock presence; expiry
// filtering is a policy decision left to callers, which get ExpiresAt.
const (
	TableStatusAvailable = "AVAILABLE"
	TableStatusHold      = "HOLD"
	TableStatusReserved  = "RESERVED"
	TableStatusDisabled  = "DISABLED"
)

type TableStatusResponse struct {
	TableID   string  `json:"table_id"`
	Number    int     `json:"number"`
	Section   string  `json:"section"`
	Price     float64 `json:"price"`
	Status    string  `json:"status"`
	ExpiresAt int64   `json:"expires_at,omitempty"` // set for HOLD only
}

type AvailabilityResponse struct {
	EventID   string                `json:"event_id"`
	EventName string                `json:"event_name"`
	EventDate string                `json:"event_date"`
	Tables    []TableStatusResponse `json:"tables"`
}
