package entity

import "time"

// CRMProfile is the per-phone-number aggregate maintained as an idempotent
// side effect after successful reservations. Not part of the transactional
// core; its upkeep never rolls back a reservation.
type CRMProfile struct {
	Phone            string    `dynamodbav:"phone"`
	CustomerName     string    `dynamodbav:"customerName"`
	TotalSpend       float64   `dynamodbav:"totalSpend"`
	ReservationCount int64     `dynamodbav:"reservationCount"`
	LastEventDate    string    `dynamodbav:"lastEventDate"`
	LastTableID      string    `dynamodbav:"lastTableId"`
	UpdatedAt        time.Time `dynamodbav:"updatedAt"`
}
