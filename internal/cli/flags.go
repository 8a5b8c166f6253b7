package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/bindery/internal/core/dates"
	"github.com/example/bindery/internal/models"
)

// parseOption parses a QTY@PRICE tier such as "1000@0.35".
func parseOption(s string) (models.QuantityOptionInput, error) {
	qty, price, ok := strings.Cut(s, "@")
	if !ok {
		return models.QuantityOptionInput{}, fmt.Errorf("invalid option %q: want QTY@PRICE", s)
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(qty))
	if err != nil {
		return models.QuantityOptionInput{}, fmt.Errorf("invalid quantity in option %q", s)
	}
	unitPrice, err := strconv.ParseFloat(strings.TrimPrefix(strings.TrimSpace(price), "$"), 64)
	if err != nil {
		return models.QuantityOptionInput{}, fmt.Errorf("invalid unit price in option %q", s)
	}

	return models.QuantityOptionInput{Quantity: quantity, UnitPrice: unitPrice}, nil
}

func parseOptions(values []string) ([]models.QuantityOptionInput, error) {
	options := make([]models.QuantityOptionInput, 0, len(values))
	for _, v := range values {
		o, err := parseOption(v)
		if err != nil {
			return nil, err
		}
		options = append(options, o)
	}
	return options, nil
}

// changedString returns a pointer to the flag value only when the user set it.
func changedString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

func changedInt(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt(name)
	return &v
}

func changedFloat(cmd *cobra.Command, name string) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetFloat64(name)
	return &v
}

// parseDateFlag reads an optional date flag (YYYY-MM-DD or ISO timestamp).
func parseDateFlag(cmd *cobra.Command, name string) (time.Time, error) {
	v, _ := cmd.Flags().GetString(name)
	if v == "" {
		return time.Time{}, nil
	}
	t, ok := dates.Parse(v)
	if !ok {
		return time.Time{}, fmt.Errorf("invalid --%s %q: want YYYY-MM-DD", name, v)
	}
	return t, nil
}

// parseEndDateFlag is parseDateFlag for an inclusive upper bound: a bare
// YYYY-MM-DD covers the whole of that day.
func parseEndDateFlag(cmd *cobra.Command, name string) (time.Time, error) {
	t, err := parseDateFlag(cmd, name)
	if err != nil || t.IsZero() {
		return t, err
	}
	if v, _ := cmd.Flags().GetString(name); len(v) == len("2006-01-02") {
		return t.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
	}
	return t, nil
}

func joinStatuses[S ~string](statuses []S) string {
	parts := make([]string, len(statuses))
	for i, s := range statuses {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
