package response

import (
	"time"

	"assainissement/internal/domain/entities"
	"assainissement/internal/usecase"
)

type ReceiptResponse struct {
	ID        string    `json:"id"`
	CitizenID string    `json:"citizen_id"`
	Number    string    `json:"number"`
	Date      string    `json:"date"`
	Price     float64   `json:"price"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromReceipt(r entities.Receipt) ReceiptResponse {
	return ReceiptResponse{
		ID:        r.ID,
		CitizenID: r.CitizenID,
		Number:    r.Number,
		Date:      r.Date.Format(time.DateOnly),
		Price:     r.Price,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func FromReceipts(receipts []entities.Receipt) []ReceiptResponse {
	out := make([]ReceiptResponse, 0, len(receipts))
	for _, r := range receipts {
		out = append(out, FromReceipt(r))
	}
	return out
}

type TotalsResponse struct {
	EmptiedTotal               float64 `json:"emptied_total"`
	AllTotal                   float64 `json:"all_total"`
	NotEmptiedOrCancelledCount int     `json:"not_emptied_or_cancelled_count"`
}

func FromTotals(t usecase.ReceiptTotals) TotalsResponse {
	return TotalsResponse{
		EmptiedTotal:               t.EmptiedTotal,
		AllTotal:                   t.AllTotal,
		NotEmptiedOrCancelledCount: t.NotEmptiedOrCancelledCount,
	}
}
