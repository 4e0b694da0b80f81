package response

import "time"

type EventResponse struct {
	EventID         string             `json:"event_id"`
	EventName       string             `json:"event_name"`
	EventDate       string             `json:"event_date"`
	Status          string             `json:"status"`
	MinDeposit      float64            `json:"min_deposit"`
	TablePricing    map[string]float64 `json:"table_pricing,omitempty"`
	SectionPricing  map[string]float64 `json:"section_pricing,omitempty"`
	DisabledTables  []string           `json:"disabled_tables,omitempty"`
	DisabledClients []string           `json:"disabled_clients,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}
