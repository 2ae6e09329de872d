package entities

import "time"

// Citizen is a beneficiary of the municipal septic-tank emptying service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (cin-index): cin_lower (CIN uniqueness is case-insensitive)
//
// Frozen is a derived flag, not authoritative data: it is a materialized
// view over the citizen's receipts (>= 3 not_emptied receipts) and is only
// ever written by the status derivation routine.

type Citizen struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	CIN       string    `json:"cin"`
	Address   string    `json:"address"`
	Frozen    bool      `json:"frozen"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FrozenThreshold is the number of not_emptied receipts at which a citizen
// becomes frozen.
const FrozenThreshold = 3
