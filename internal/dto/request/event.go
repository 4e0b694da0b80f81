package request

type CreateEventRequest struct {
	EventName       string             `json:"event_name" validate:"required,min=1,max=120"`
	EventDate       string             `json:"event_date" validate:"required,datetime=2006-01-02"`
	MinDeposit      float64            `json:"min_deposit" validate:"gte=0"`
	TablePricing    map[string]float64 `json:"table_pricing,omitempty"`
	SectionPricing  map[string]float64 `json:"section_pricing,omitempty"`
	DisabledTables  []string           `json:"disabled_tables,omitempty"`
	DisabledClients []string           `json:"disabled_clients,omitempty"`
}

// UpdateEventRequest is a patch: nil fields keep their current value.
type UpdateEventRequest struct {
	EventName       *string            `json:"event_name,omitempty" validate:"omitempty,min=1,max=120"`
	EventDate       *string            `json:"event_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status          *string            `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
	MinDeposit      *float64           `json:"min_deposit,omitempty" validate:"omitempty,gte=0"`
	TablePricing    map[string]float64 `json:"table_pricing,omitempty"`
	SectionPricing  map[string]float64 `json:"section_pricing,omitempty"`
	DisabledTables  []string           `json:"disabled_tables,omitempty"`
	DisabledClients []string           `json:"disabled_clients,omitempty"`
}
