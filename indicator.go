package countryatlas

// IndicatorRecord is one observation from an indicator feed. The subject
// country's two-letter code sits under country.id; the ISO3 code the feed
// carries alongside it is never used for joining.
type IndicatorRecord struct {
	Country struct {
		ID string `json:"id"`
	} `json:"country"`
	ISO3  string   `json:"countryiso3code"`
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

type IndicatorTable map[string]float64

// NewIndicatorTable keeps the last value seen per code and discards records
// without a value.
func NewIndicatorTable(records []IndicatorRecord) IndicatorTable {
	table := make(IndicatorTable, len(records))
	for _, record := range records {
		if record.Value == nil || record.Country.ID == "" {
			continue
		}
		table[record.Country.ID] = *record.Value
	}
	return table
}
