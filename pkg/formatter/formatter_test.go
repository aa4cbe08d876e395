package formatter

import (
	"testing"
	"time"
)

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   int
		want string
	}{
		{name: "zero", in: 0, want: "0"},
		{name: "under a thousand", in: 999, want: "999"},
		{name: "thousands", in: 1234, want: "1,234"},
		{name: "millions", in: 1234567, want: "1,234,567"},
		{name: "exact grouping", in: 1000000, want: "1,000,000"},
		{name: "negative", in: -1234567, want: "-1,234,567"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatNumber(tc.in); got != tc.want {
				t.Errorf("FormatNumber(%d) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestTimeAgo(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{name: "seconds", ago: 30 * time.Second, want: "just now"},
		{name: "minutes", ago: 5 * time.Minute, want: "5m"},
		{name: "hours", ago: 3 * time.Hour, want: "3h"},
		{name: "days", ago: 2 * 24 * time.Hour, want: "2d"},
		{name: "weeks", ago: 4 * 7 * 24 * time.Hour, want: "4w"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := TimeAgo(now.Add(-tc.ago), now); got != tc.want {
				t.Errorf("TimeAgo(now-%v) = %q, want %q", tc.ago, got, tc.want)
			}
		})
	}
}
