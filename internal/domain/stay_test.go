package domain

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStay_Overlaps(t *testing.T) {
	t.Parallel()

	base := Stay{CheckIn: date(2024, 6, 1), CheckOut: date(2024, 6, 5)}

	cases := []struct {
		name  string
		other Stay
		want  bool
	}{
		{"identical", Stay{date(2024, 6, 1), date(2024, 6, 5)}, true},
		{"contained", Stay{date(2024, 6, 2), date(2024, 6, 4)}, true},
		{"containing", Stay{date(2024, 5, 30), date(2024, 6, 10)}, true},
		{"overlaps start", Stay{date(2024, 5, 30), date(2024, 6, 2)}, true},
		{"overlaps end", Stay{date(2024, 6, 4), date(2024, 6, 8)}, true},
		{"back to back after", Stay{date(2024, 6, 5), date(2024, 6, 8)}, false},
		{"back to back before", Stay{date(2024, 5, 28), date(2024, 6, 1)}, false},
		{"disjoint after", Stay{date(2024, 6, 10), date(2024, 6, 12)}, false},
		{"disjoint before", Stay{date(2024, 5, 1), date(2024, 5, 3)}, false},
		{"single night inside", Stay{date(2024, 6, 3), date(2024, 6, 4)}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.Overlaps(tc.other); got != tc.want {
				t.Fatalf("base.Overlaps(%v) = %v, want %v", tc.other, got, tc.want)
			}
			// Overlap is symmetric.
			if got := tc.other.Overlaps(base); got != tc.want {
				t.Fatalf("other.Overlaps(base) = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestStay_Validate(t *testing.T) {
	t.Parallel()

	today := date(2024, 6, 10)

	t.Run("valid future stay", func(t *testing.T) {
		s := Stay{CheckIn: date(2024, 6, 12), CheckOut: date(2024, 6, 15)}
		if err := s.Validate(today); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("check-in today is allowed", func(t *testing.T) {
		s := Stay{CheckIn: today, CheckOut: date(2024, 6, 11)}
		if err := s.Validate(today); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("past check-in rejected", func(t *testing.T) {
		s := Stay{CheckIn: date(2024, 6, 1), CheckOut: date(2024, 6, 3)}
		if err := s.Validate(today); err != ErrPastCheckIn {
			t.Fatalf("expected ErrPastCheckIn, got %v", err)
		}
	})

	t.Run("past check-in wins over inverted range", func(t *testing.T) {
		s := Stay{CheckIn: date(2024, 6, 5), CheckOut: date(2024, 6, 1)}
		if err := s.Validate(today); err != ErrPastCheckIn {
			t.Fatalf("expected ErrPastCheckIn, got %v", err)
		}
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		s := Stay{CheckIn: date(2024, 6, 20), CheckOut: date(2024, 6, 15)}
		if err := s.Validate(today); err != ErrInvalidStayRange {
			t.Fatalf("expected ErrInvalidStayRange, got %v", err)
		}
	})

	t.Run("empty range rejected", func(t *testing.T) {
		s := Stay{CheckIn: date(2024, 6, 20), CheckOut: date(2024, 6, 20)}
		if err := s.Validate(today); err != ErrInvalidStayRange {
			t.Fatalf("expected ErrInvalidStayRange, got %v", err)
		}
	})
}

func TestToDate(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+4", 4*60*60)
	in := time.Date(2024, 6, 10, 1, 30, 0, 0, loc) // 2024-06-09T21:30Z
	if got := ToDate(in); !got.Equal(date(2024, 6, 9)) {
		t.Fatalf("ToDate(%v) = %v, want 2024-06-09", in, got)
	}
}
