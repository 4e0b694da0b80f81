package response

import "time"

type HoldResponse struct {
	HoldID    string `json:"hold_id"`
	EventDate string `json:"event_date"`
	TableID   string `json:"table_id"`
	ExpiresAt int64  `json:"expires_at"` // epoch seconds
}

type ReservationResponse struct {
	ReservationID string     `json:"reservation_id"`
	EventDate     string     `json:"event_date"`
	TableID       string     `json:"table_id"`
	CustomerName  string     `json:"customer_name"`
	Phone         string     `json:"phone"`
	DepositAmount float64    `json:"deposit_amount"`
	PaymentMethod string     `json:"payment_method"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	CancelReason  string     `json:"cancel_reason,omitempty"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`
	CancelledBy   string     `json:"cancelled_by,omitempty"`
}
