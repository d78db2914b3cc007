package entities

// RateSheetRow is one raw line of a rate table spreadsheet. Values are kept
// as text so parsing problems surface as row errors instead of aborting the
// whole file.
type RateSheetRow struct {
	Line           int    `json:"line"`
	Origin         string `json:"origin"`
	OriginEnd      string `json:"origin_end,omitempty"`
	Destination    string `json:"destination"`
	DestinationEnd string `json:"destination_end,omitempty"`
	CostPerKg      string `json:"cost_per_kg"`
	MinPrice       string `json:"min_price,omitempty"`
	DeadlineDays   string `json:"deadline_days,omitempty"`
}

// RowError explains why a row was skipped.
type RowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// BatchResult is the outcome of a bulk import: imported routes and rejected
// rows. A bad row never fails the batch.
type BatchResult struct {
	Succeeded []FreightRoute `json:"succeeded"`
	Failed    []RowError     `json:"failed"`
}

func (b BatchResult) ImportedCount() int {
	return len(b.Succeeded)
}
