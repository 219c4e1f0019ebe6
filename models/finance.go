package models

import "time"

// FinancialEntry is one recorded set of contributions for a society.
type FinancialEntry struct {
	ID                      string    `json:"id"`
	Society                 Society   `json:"society"`
	Date                    Timestamp `json:"date"`
	Pledges                 float64   `json:"pledges"`
	SpecialEffort           float64   `json:"special_effort"`
	SundayCollection        float64   `json:"sunday_collection"`
	CircuitEventsCollection float64   `json:"circuit_events_collection"`
	Total                   float64   `json:"total"`
	CreatedBy               string    `json:"created_by"`
	CreatedAt               time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the FinancialEntry model.
func (f FinancialEntry) TableName() string {
	return "financial_entries"
}

// FinancialEntryInput is the body of POST /api/finances.
// Omitted amounts are zero.
type FinancialEntryInput struct {
	Society                 Society   `json:"society"`
	Date                    Timestamp `json:"date"`
	Pledges                 float64   `json:"pledges"`
	SpecialEffort           float64   `json:"special_effort"`
	SundayCollection        float64   `json:"sunday_collection"`
	CircuitEventsCollection float64   `json:"circuit_events_collection"`
}

// Total returns the sum of the four contribution amounts.
func (in FinancialEntryInput) Total() float64 {
	return in.Pledges + in.SpecialEffort + in.SundayCollection + in.CircuitEventsCollection
}

// FinanceFilter narrows a finance listing. Bounds are inclusive; nil
// disables a bound.
type FinanceFilter struct {
	Society   Society
	StartDate *time.Time
	EndDate   *time.Time
}
