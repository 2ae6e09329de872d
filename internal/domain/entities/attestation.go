package entities

import "time"

// FiscalAttestation is the attestation document record issued by the
// municipality.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Number is a global zero-padded sequence suffixed with the issuing year,
// e.g. "007/2026".

type FiscalAttestation struct {
	ID        string    `json:"id"`
	Type      bool      `json:"type"`
	Number    string    `json:"attestation_number"`
	Name      string    `json:"name"`
	ITP       string    `json:"itp"`
	IF        string    `json:"if"`
	Identity  string    `json:"identity"`
	Activity  string    `json:"activity"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
