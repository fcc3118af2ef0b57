package models

// OfferRecord is one parsed row of the historical admissions table.
// Rows whose average column failed numeric coercion are dropped at load
// time and never reach this type.
type OfferRecord struct {
	University  string
	ProgramName string
	Decision    string
	Top6Average float64
	SuppApp     string
	SuppNotes   string
	Comments    string
}
