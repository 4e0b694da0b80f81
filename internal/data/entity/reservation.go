package entity

import "time"

type ReservationStatus string

const (
	ReservationStatusConfirmed ReservationStatus = "CONFIRMED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
)

const (
	PaymentMethodCash    = "cash"
	PaymentMethodCashApp = "cashapp"
	PaymentMethodSquare  = "square"
)

// Reservation is the durable record of a confirmed table. Created exactly
// once per successful hold conversion, mutated only for cancellation fields,
// never physically deleted.
type Reservation struct {
	ReservationID string            `dynamodbav:"reservationId"` // sort key
	EventDate     string            `dynamodbav:"eventDate"`     // partition key
	TableID       string            `dynamodbav:"tableId"`
	CustomerName  string            `dynamodbav:"customerName"`
	Phone         string            `dynamodbav:"phone"`
	DepositAmount float64           `dynamodbav:"depositAmount"`
	PaymentMethod string            `dynamodbav:"paymentMethod"`
	Status        ReservationStatus `dynamodbav:"status"`
	CreatedAt     time.Time         `dynamodbav:"createdAt"`
	CreatedBy     string            `dynamodbav:"createdBy"`
	CancelReason  string            `dynamodbav:"cancelReason,omitempty"`
	CancelledAt   *time.Time        `dynamodbav:"cancelledAt,omitempty"`
	CancelledBy   string            `dynamodbav:"cancelledBy,omitempty"`
}
