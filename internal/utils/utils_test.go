package utils

import (
	"testing"
	"time"
)

func TestFormatMoney(t *testing.T) {
	cases := map[float64]string{
		0:          "0.00",
		12.5:       "12.50",
		1234.567:   "1,234.57",
		-1000000:   "-1,000,000.00",
		999999.999: "1,000,000.00",
	}
	for in, want := range cases {
		if got := FormatMoney(in); got != want {
			t.Fatalf("FormatMoney(%v) = %q, want %q", in, got, want)
		}
	}
	if got := FormatAmount(10, ""); got != "JOD 10.00" {
		t.Fatalf("FormatAmount default currency = %q", got)
	}
}

func TestParseAmount(t *testing.T) {
	v, err := ParseAmount(" 1,250.50 ")
	if err != nil || v != 1250.50 {
		t.Fatalf("ParseAmount = %v, %v", v, err)
	}
	if _, err := ParseAmount(""); err == nil {
		t.Fatalf("expected error for empty amount")
	}
	for _, raw := range []string{"NaN", "nan", "Inf", "-Inf", "+infinity"} {
		if v, err := ParseAmount(raw); err == nil {
			t.Fatalf("ParseAmount(%q) = %v, expected error", raw, v)
		}
	}
}

func TestBackendDates(t *testing.T) {
	if got := FormatDate("2024-03-05T10:20:30.1234567"); got != "2024-03-05" {
		t.Fatalf("FormatDate = %q", got)
	}
	if got := FormatDateTime("2024-03-05T10:20:30Z"); got != "2024-03-05 10:20" {
		t.Fatalf("FormatDateTime = %q", got)
	}
	if got := FormatDate("n/a"); got != "n/a" {
		t.Fatalf("FormatDate passthrough = %q", got)
	}
	if got := USDate("2024-12-31"); got != "12/31/2024" {
		t.Fatalf("USDate = %q", got)
	}
	if got := USDate("31-12-2024"); got != "" {
		t.Fatalf("USDate malformed = %q", got)
	}

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if !Expired("2024-06-01", now) {
		t.Fatalf("expected 2024-06-01 to be expired")
	}
	if Expired("2026-06-01", now) || Expired("", now) {
		t.Fatalf("unexpected expiry")
	}
}

func TestSafeFilenamePart(t *testing.T) {
	if got := SafeFilenamePart(" TRP/100:A "); got != "TRP_100_A" {
		t.Fatalf("SafeFilenamePart = %q", got)
	}
	if got := SafeFilenamePart(""); got != "NA" {
		t.Fatalf("SafeFilenamePart empty = %q", got)
	}
}
