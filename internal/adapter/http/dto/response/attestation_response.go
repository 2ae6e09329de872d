package response

import (
	"time"

	"assainissement/internal/domain/entities"
)

type AttestationResponse struct {
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

func FromAttestation(a entities.FiscalAttestation) AttestationResponse {
	return AttestationResponse{
		ID:        a.ID,
		Type:      a.Type,
		Number:    a.Number,
		Name:      a.Name,
		ITP:       a.ITP,
		IF:        a.IF,
		Identity:  a.Identity,
		Activity:  a.Activity,
		Address:   a.Address,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func FromAttestations(attestations []entities.FiscalAttestation) []AttestationResponse {
	out := make([]AttestationResponse, 0, len(attestations))
	for _, a := range attestations {
		out = append(out, FromAttestation(a))
	}
	return out
}
