package request

import (
	"errors"
	"time"
)

var ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")

type CreateReceiptRequest struct {
	CitizenID string   `json:"citizen_id" binding:"required"`
	Price     *float64 `json:"price"`
	Date      string   `json:"date"`
}

// ResolveDate parses the optional service date. An empty field yields the
// zero time, which downstream defaults to today.
func (r CreateReceiptRequest) ResolveDate() (time.Time, error) {
	if r.Date == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse(time.DateOnly, r.Date)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return d, nil
}

type UpdateReceiptStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
