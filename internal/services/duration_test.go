package services

import (
	"strings"
	"testing"
)

func TestFormatDuration(t *testing.T) {
	tt := []struct {
		name  string
		input string
		want  string
	}{
		{name: "hours minutes seconds", input: "PT1H2M3S", want: "1:02:03"},
		{name: "minutes only", input: "PT5M", want: "5:00"},
		{name: "seconds only", input: "PT45S", want: "0:45"},
		{name: "minutes and seconds", input: "PT10M45S", want: "10:45"},
		{name: "hours only", input: "PT2H", want: "2:00:00"},
		{name: "long hours are not padded", input: "PT12H5S", want: "12:00:05"},
		{name: "bare PT", input: "PT", want: "0:00"},
		{name: "zero hours falls back to M:SS", input: "PT0H3M9S", want: "3:09"},
		{name: "garbage", input: "garbage", want: "0:00"},
		{name: "empty", input: "", want: "0:00"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatDuration(tc.input); got != tc.want {
				t.Errorf("FormatDuration(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}

	t.Run("hour outputs have two padded trailing parts", func(t *testing.T) {
		for _, input := range []string{"PT1H", "PT1H1S", "PT3H7M", "PT10H59M59S"} {
			parts := strings.Split(FormatDuration(input), ":")
			if len(parts) != 3 {
				t.Fatalf("FormatDuration(%q) should have three parts, got %v", input, parts)
			}
			for _, p := range parts[1:] {
				if len(p) != 2 {
					t.Errorf("FormatDuration(%q) part %q is not two digits", input, p)
				}
			}
		}
	})
}

func TestClockSeconds(t *testing.T) {
	tt := []struct {
		input string
		want  int
	}{
		{input: "1:02:03", want: 3723},
		{input: "5:00", want: 300},
		{input: "0:45", want: 45},
		{input: "0:00", want: 0},
		{input: "nope", want: 0},
		{input: "1:2:3:4", want: 0},
		{input: "1:-5", want: 0},
	}

	for _, tc := range tt {
		if got := ClockSeconds(tc.input); got != tc.want {
			t.Errorf("ClockSeconds(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}

	t.Run("inverts FormatDuration", func(t *testing.T) {
		for input, seconds := range map[string]int{"PT1H2M3S": 3723, "PT10M": 600, "PT59S": 59, "PT3H": 10800} {
			if got := ClockSeconds(FormatDuration(input)); got != seconds {
				t.Errorf("ClockSeconds(FormatDuration(%q)) = %d, want %d", input, got, seconds)
			}
		}
	})
}
