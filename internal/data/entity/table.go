package entity

// TableTemplate is a static, read-only entry of the venue floor plan.
type TableTemplate struct {
	ID        string
	Number    int
	Section   string
	BasePrice float64
}

// Per-section default prices, applied when an event overrides neither the
// table nor the section.
var SectionDefaults = map[string]float64{
	"A": 500,
	"B": 350,
	"C": 250,
}

// tableLayout is the venue floor plan: section A front tables, B mid-floor,
// C along the rail.
var tableLayout = []TableTemplate{
	{ID: "A01", Number: 1, Section: "A", BasePrice: 500},
	{ID: "A02", Number: 2, Section: "A", BasePrice: 500},
	{ID: "A03", Number: 3, Section: "A", BasePrice: 500},
	{ID: "A04", Number: 4, Section: "A", BasePrice: 600},
	{ID: "A05", Number: 5, Section: "A", BasePrice: 600},
	{ID: "A06", Number: 6, Section: "A", BasePrice: 500},
	{ID: "A07", Number: 7, Section: "A", BasePrice: 500},
	{ID: "A08", Number: 8, Section: "A", BasePrice: 500},
	{ID: "B01", Number: 9, Section: "B", BasePrice: 350},
	{ID: "B02", Number: 10, Section: "B", BasePrice: 350},
	{ID: "B03", Number: 11, Section: "B", BasePrice: 350},
	{ID: "B04", Number: 12, Section: "B", BasePrice: 350},
	{ID: "B05", Number: 13, Section: "B", BasePrice: 350},
	{ID: "B06", Number: 14, Section: "B", BasePrice: 350},
	{ID: "C01", Number: 15, Section: "C", BasePrice: 250},
	{ID: "C02", Number: 16, Section: "C", BasePrice: 250},
	{ID: "C03", Number: 17, Section: "C", BasePrice: 250},
	{ID: "C04", Number: 18, Section: "C", BasePrice: 250},
	{ID: "C05", Number: 19, Section: "C", BasePrice: 250},
	{ID: "C06", Number: 20, Section: "C", BasePrice: 250},
}

// TableLayout returns a copy of the static floor plan.
func TableLayout() []TableTemplate {
	out := make([]TableTemplate, len(tableLayout))
	copy(out, tableLayout)
	return out
}

// FindTable looks up a template entry by table id.
func FindTable(tableID string) (TableTemplate, bool) {
	for _, t := range tableLayout {
		if t.ID == tableID {
			return t, true
		}
	}
	return TableTemplate{}, false
}
