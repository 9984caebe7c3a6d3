package service

import (
	"errors"
	"testing"
)

func TestFormatBandID(t *testing.T) {
	cases := []struct {
		code   string
		year   int
		number int
		want   string
	}{
		{"ABC", 2024, 5, "ABC-2024-05"},
		{"ABC", 2024, 42, "ABC-2024-42"},
		{"AB-CD", 2023, 1, "AB-CD-2023-01"},
		{"X", 999, 7, "X-0999-07"},
	}

	for _, tc := range cases {
		if got := formatBandID(tc.code, tc.year, tc.number); got != tc.want {
			t.Errorf("formatBandID(%q, %d, %d) = %q, want %q", tc.code, tc.year, tc.number, got, tc.want)
		}
	}
}

func TestSplitBandID(t *testing.T) {
	cases := []struct {
		bandID string
		code   string
		year   int
		number int
	}{
		{"ABC-2024-05", "ABC", 2024, 5},
		{"AB-CD-2023-01", "AB-CD", 2023, 1},
		{"X-Y-Z-2020-12", "X-Y-Z", 2020, 12},
	}

	for _, tc := range cases {
		code, year, number, err := splitBandID(tc.bandID)
		if err != nil {
			t.Fatalf("splitBandID(%q): %v", tc.bandID, err)
		}
		if code != tc.code || year != tc.year || number != tc.number {
			t.Errorf("splitBandID(%q) = (%q, %d, %d), want (%q, %d, %d)",
				tc.bandID, code, year, number, tc.code, tc.year, tc.number)
		}
	}
}

func TestSplitBandIDRejectsMalformed(t *testing.T) {
	for _, bandID := range []string{"", "ABC", "ABC-2024", "ABC-year-05", "ABC-2024-nn"} {
		if _, _, _, err := splitBandID(bandID); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("splitBandID(%q): got %v, want ErrInvalidInput", bandID, err)
		}
	}
}

func TestBandIDRoundTrip(t *testing.T) {
	bandID := formatBandID("NL-04", 2025, 3)
	code, year, number, err := splitBandID(bandID)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if code != "NL-04" || year != 2025 || number != 3 {
		t.Fatalf("round trip lost data: (%q, %d, %d)", code, year, number)
	}
}
