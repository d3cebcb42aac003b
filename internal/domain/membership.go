package domain

import "time"

// Plan is an entry of the admin-defined membership catalog, referenced by
// Member.Plan and Payment.Plan.
type Plan struct {
	Name         string `json:"name"`
	Price        int    `json:"price"` // Rupees
	DurationDays int    `json:"durationDays"`
}

// Payment is one row of the append-only payment ledger. Rows are never
// mutated or deleted once recorded.
type Payment struct {
	MemberID int       `json:"memberId"`
	Amount   int       `json:"amount"`
	Date     time.Time `json:"date"`
	Plan     string    `json:"plan"`
}
