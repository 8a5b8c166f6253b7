package cli

import (
	"testing"
	"time"

	"github.com/spf13/cobra"

	corejob "github.com/example/bindery/internal/core/job"
	"github.com/example/bindery/internal/models"
)

func TestParseOption(t *testing.T) {
	tests := []struct {
		in      string
		want    models.QuantityOptionInput
		wantErr bool
	}{
		{"1000@0.35", models.QuantityOptionInput{Quantity: 1000, UnitPrice: 0.35}, false},
		{" 500 @ $0.45 ", models.QuantityOptionInput{Quantity: 500, UnitPrice: 0.45}, false},
		{"1000", models.QuantityOptionInput{}, true},
		{"many@0.35", models.QuantityOptionInput{}, true},
		{"1000@cheap", models.QuantityOptionInput{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseOption(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseOption(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseOption(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseOptions_StopsAtFirstError(t *testing.T) {
	if _, err := parseOptions([]string{"500@0.45", "bad"}); err == nil {
		t.Error("expected error")
	}

	got, err := parseOptions([]string{"500@0.45", "1000@0.35"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[1].Quantity != 1000 {
		t.Errorf("unexpected options: %+v", got)
	}
}

func TestChangedFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "x"}
	cmd.Flags().String("email", "", "")
	cmd.Flags().String("phone", "", "")
	cmd.Flags().Int("samples", 0, "")
	cmd.Flags().Float64("overs", 0, "")
	if err := cmd.Flags().Parse([]string{"--email", "", "--samples", "25"}); err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if got := changedString(cmd, "email"); got == nil || *got != "" {
		t.Errorf("expected explicit empty email, got %v", got)
	}
	if got := changedString(cmd, "phone"); got != nil {
		t.Errorf("expected nil phone, got %q", *got)
	}
	if got := changedInt(cmd, "samples"); got == nil || *got != 25 {
		t.Errorf("expected samples 25, got %v", got)
	}
	if got := changedFloat(cmd, "overs"); got != nil {
		t.Errorf("expected nil overs, got %v", *got)
	}
}

func TestParseDateFlag(t *testing.T) {
	cmd := &cobra.Command{Use: "x"}
	cmd.Flags().String("due-from", "", "")
	cmd.Flags().String("due-to", "", "")
	if err := cmd.Flags().Parse([]string{"--due-from", "2026-03-01", "--due-to", "soon"}); err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	from, err := parseDateFlag(cmd, "due-from")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !from.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected from date %v", from)
	}
	if _, err := parseDateFlag(cmd, "due-to"); err == nil {
		t.Error("expected error for invalid date")
	}
}

func TestParseEndDateFlag(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"", time.Time{}},
		{"2026-03-31", time.Date(2026, 3, 31, 23, 59, 59, 999999999, time.UTC)},
		{"2026-03-31T14:00:00Z", time.Date(2026, 3, 31, 14, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		cmd := &cobra.Command{Use: "x"}
		cmd.Flags().String("due-to", "", "")
		if tt.in != "" {
			if err := cmd.Flags().Parse([]string{"--due-to", tt.in}); err != nil {
				t.Fatalf("parse failed: %v", err)
			}
		}
		got, err := parseEndDateFlag(cmd, "due-to")
		if err != nil {
			t.Fatalf("parseEndDateFlag(%q) error: %v", tt.in, err)
		}
		if !got.Equal(tt.want) {
			t.Errorf("parseEndDateFlag(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	// A job due mid-afternoon on the bound day is still in range.
	end := time.Date(2026, 3, 31, 23, 59, 59, 999999999, time.UTC)
	if !corejob.InDueDateRange("2026-03-31T14:00:00Z", time.Time{}, end) {
		t.Error("expected a job due later on the bound day to match")
	}
}

func TestJoinStatuses(t *testing.T) {
	if got := joinStatuses(models.QuoteStatuses); got != "draft, sent, accepted, declined" {
		t.Errorf("joinStatuses = %q", got)
	}
}

func TestCommandTree(t *testing.T) {
	tests := []struct {
		cmd  *cobra.Command
		subs []string
	}{
		{CustomerCmd(), []string{"create", "list", "show", "update", "delete", "search", "duplicates", "dedupe"}},
		{QuoteCmd(), []string{"create", "list", "show", "update", "status", "revise", "delete"}},
		{JobCmd(), []string{"create", "list", "show", "update", "status", "start", "complete", "hold", "cancel", "delete", "active"}},
		{RunListCmd(), []string{"add", "list", "show", "update", "status", "delete", "export"}},
	}

	for _, tt := range tests {
		t.Run(tt.cmd.Name(), func(t *testing.T) {
			for _, name := range tt.subs {
				found, _, err := tt.cmd.Find([]string{name})
				if err != nil || found.Name() != name {
					t.Errorf("expected subcommand %s %s", tt.cmd.Name(), name)
				}
			}
		})
	}
}
