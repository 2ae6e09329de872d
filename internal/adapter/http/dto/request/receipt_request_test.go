package request

import (
	"errors"
	"testing"
	"time"
)

func TestCreateReceiptRequest_ResolveDate(t *testing.T) {
	t.Run("empty date resolves to zero time", func(t *testing.T) {
		req := CreateReceiptRequest{CitizenID: "abc"}

		d, err := req.ResolveDate()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !d.IsZero() {
			t.Errorf("expected zero time, got %v", d)
		}
	})

	t.Run("valid date is parsed", func(t *testing.T) {
		req := CreateReceiptRequest{CitizenID: "abc", Date: "2025-03-14"}

		d, err := req.ResolveDate()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
		if !d.Equal(want) {
			t.Errorf("expected %v, got %v", want, d)
		}
	})

	t.Run("malformed date is rejected", func(t *testing.T) {
		for _, raw := range []string{"14/03/2025", "2025-3-14", "not-a-date"} {
			req := CreateReceiptRequest{CitizenID: "abc", Date: raw}
			if _, err := req.ResolveDate(); !errors.Is(err, ErrInvalidDateFormat) {
				t.Errorf("date %q: expected ErrInvalidDateFormat, got %v", raw, err)
			}
		}
	})
}
