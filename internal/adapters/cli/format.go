// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// business logic to services.
package cli

import (
	"strings"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
)

const rule = "────────────────────────────────────────────────────────────────"

var statusColors = map[string]color.Attribute{
	// quotes
	"draft":    color.FgWhite,
	"sent":     color.FgCyan,
	"accepted": color.FgGreen,
	"declined": color.FgRed,
	// jobs
	"pending":     color.FgWhite,
	"in_progress": color.FgCyan,
	"complete":    color.FgGreen,
	"on_hold":     color.FgYellow,
	"cancelled":   color.FgRed,
	// run list
	"planned": color.FgWhite,
	"in":      color.FgCyan,
	"hold":    color.FgYellow,
}

// colorStatus pads a status to width and colours it by meaning.
func colorStatus(status string, width int) string {
	padded := status
	if pad := width - len(status); pad > 0 {
		padded += strings.Repeat(" ", pad)
	}
	attr, ok := statusColors[status]
	if !ok {
		return padded
	}
	return color.New(attr).Sprint(padded)
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
