package request

type CreateHoldRequest struct {
	EventDate    string `json:"event_date" validate:"required,datetime=2006-01-02"`
	TableID      string `json:"table_id" validate:"required"`
	CustomerName string `json:"customer_name,omitempty" validate:"omitempty,max=120"`
	Phone        string `json:"phone,omitempty" validate:"omitempty,max=32"`
}
