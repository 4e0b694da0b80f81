package request

type CreateReservationRequest struct {
	EventDate     string  `json:"event_date" validate:"required,datetime=2006-01-02"`
	TableID       string  `json:"table_id" validate:"required"`
	HoldID        string  `json:"hold_id" validate:"required"`
	CustomerName  string  `json:"customer_name" validate:"required,max=120"`
	Phone         string  `json:"phone" validate:"required,max=32"`
	PaymentMethod string  `json:"payment_method" validate:"required,oneof=cash cashapp square"`
	DepositAmount float64 `json:"deposit_amount" validate:"gte=0"`
}

type CancelReservationRequest struct {
	TableID string `json:"table_id" validate:"required"`
	Reason  string `json:"reason" validate:"required,min=1,max=240"`
}
