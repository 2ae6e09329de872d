package entities

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ReceiptStatus represents the lifecycle of a quittance.
//
// Domain notes:
//   - pending is the only creation-time status.
//   - emptied / not_emptied / cancelled are terminal: a receipt leaves
//     pending exactly once and never transitions again.

type ReceiptStatus string

const (
	ReceiptStatusPending    ReceiptStatus = "pending"
	ReceiptStatusEmptied    ReceiptStatus = "emptied"
	ReceiptStatusNotEmptied ReceiptStatus = "not_emptied"
	ReceiptStatusCancelled  ReceiptStatus = "cancelled"
)

// IsTerminal reports whether s is one of the terminal statuses.
func (s ReceiptStatus) IsTerminal() bool {
	switch s {
	case ReceiptStatusEmptied, ReceiptStatusNotEmptied, ReceiptStatusCancelled:
		return true
	}
	return false
}

// DefaultReceiptPrice is charged when the caller does not provide a price.
const DefaultReceiptPrice = 200.0

// Receipt is the quittance entity persisted by the service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (citizen_id-index): citizen_id
//   - GSI2 (number_year-index): number_year
//
// Number is globally unique and formatted as "<sequence>/<4-digit year>",
// where the year component always equals the year of Date.

type Receipt struct {
	ID        string        `json:"id"`
	CitizenID string        `json:"citizen_id"`
	Number    string        `json:"number"`
	Date      time.Time     `json:"date"`
	Price     float64       `json:"price"`
	Status    ReceiptStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

var ErrMalformedReceiptNumber = errors.New("malformed receipt number")

// FormatReceiptNumber renders the canonical "<sequence>/<year>" form.
func FormatReceiptNumber(sequence, year int) string {
	return fmt.Sprintf("%d/%d", sequence, year)
}

// ParseReceiptNumber splits a receipt number into its sequence and year
// components. The expected shape is "<integer>/<4-digit year>".
func ParseReceiptNumber(number string) (sequence, year int, err error) {
	head, tail, ok := strings.Cut(number, "/")
	if !ok || len(tail) != 4 {
		return 0, 0, ErrMalformedReceiptNumber
	}
	sequence, err = strconv.Atoi(head)
	if err != nil || sequence <= 0 {
		return 0, 0, ErrMalformedReceiptNumber
	}
	year, err = strconv.Atoi(tail)
	if err != nil || year <= 0 {
		return 0, 0, ErrMalformedReceiptNumber
	}
	return sequence, year, nil
}
