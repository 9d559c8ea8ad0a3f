package models

// Stat is a label/value pair of the dashboard and of the report executive summary.
type Stat struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Change string `json:"change,omitempty"`
}
