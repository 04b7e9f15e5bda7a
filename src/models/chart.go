package models

// LabelValue is a single bar or pie slice in a chart payload.
type LabelValue struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// TimePoint is a point in a date-indexed series. The date is rendered in
// the sheet's DD/MM/YYYY convention.
type TimePoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// PeriodInfo echoes back the date window a summary was computed over.
type PeriodInfo struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
