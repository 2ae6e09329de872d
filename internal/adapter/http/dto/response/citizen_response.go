package response

import (
	"time"

	"assainissement/internal/domain/entities"
)

type CitizenResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	CIN       string    `json:"cin"`
	Address   string    `json:"address"`
	Frozen    bool      `json:"frozen"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromCitizen(c entities.Citizen) CitizenResponse {
	return CitizenResponse{
		ID:        c.ID,
		FullName:  c.FullName,
		CIN:       c.CIN,
		Address:   c.Address,
		Frozen:    c.Frozen,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func FromCitizens(citizens []entities.Citizen) []CitizenResponse {
	out := make([]CitizenResponse, 0, len(citizens))
	for _, c := range citizens {
		out = append(out, FromCitizen(c))
	}
	return out
}
