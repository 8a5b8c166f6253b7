package dates

import (
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	ts := time.Date(2026, 1, 20, 12, 30, 45, 123_000_000, time.UTC)
	if got, want := Format(ts), "2026-01-20T12:30:45.123Z"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}

	est := time.FixedZone("EST", -5*3600)
	if got, want := Format(time.Date(2026, 1, 20, 7, 0, 0, 0, est)), "2026-01-20T12:00:00.000Z"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in     string
		wantOK bool
		want   time.Time
	}{
		{"2026-03-04", true, time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)},
		{"2026-03-04T10:11:12Z", true, time.Date(2026, 3, 4, 10, 11, 12, 0, time.UTC)},
		{"2026-03-04T10:11:12.500Z", true, time.Date(2026, 3, 4, 10, 11, 12, 500_000_000, time.UTC)},
		{"", false, time.Time{}},
		{"next tuesday", false, time.Time{}},
	}

	for _, tt := range tests {
		got, ok := Parse(tt.in)
		if ok != tt.wantOK {
			t.Errorf("Parse(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			continue
		}
		if ok && !got.Equal(tt.want) {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
