package usecase

import (
	"github.com/alekscortez/ff-reservations-sub000/internal/data/entity"
)

// EffectiveTable is a template table projected through an event's pricing
// overrides and disablement rules.
type EffectiveTable struct {
	entity.TableTemplate
	Price    float64
	Disabled bool
}

// EffectiveTables resolves the static floor plan against the event's pricing
// and disablement rules. Price precedence, first match wins: per-table
// override, per-section override, section default, table base price.
// Pure function, no I/O.
func EffectiveTables(event *entity.Event, extraDisabled map[string]bool) []EffectiveTable {
	layout := entity.TableLayout()
	out := make([]EffectiveTable, 0, len(layout))

	for _, t := range layout {
		out = append(out, EffectiveTable{
			TableTemplate: t,
			Price:         effectivePrice(event, t),
			Disabled:      event.HasDisabledTable(t.ID) || extraDisabled[t.ID],
		})
	}

	return out
}

func effectivePrice(event *entity.Event, t entity.TableTemplate) float64 {
	if price, ok := event.TablePricing[t.ID]; ok {
		return price
	}
	if price, ok := event.SectionPricing[t.Section]; ok {
		return price
	}
	if price, ok := entity.SectionDefaults[t.Section]; ok {
		return price
	}
	return t.BasePrice
}

// DisabledFromFrequentClients collects the default tables of ACTIVE frequent
// clients as additionally disabled for the event. Clients listed in the
// event's disabledClients are an explicit per-event opt-out and keep their
// table open. Pure function over the supplied directory snapshot.
func DisabledFromFrequentClients(clients []*entity.FrequentClient, event *entity.Event) map[string]bool {
	disabled := make(map[string]bool)

	for _, c := range clients {
		if c.Status != entity.ClientStatusActive {
			continue
		}
		if event.HasDisabledClient(c.ClientID) {
			continue
		}
		if c.DefaultTableID != "" {
			disabled[c.DefaultTableID] = true
		}
	}

	return disabled
}
