// Package customer contains the pure duplicate-detection rules for customers.
// This is part of the Functional Core - no I/O, only pure functions.
package customer

import (
	"sort"
	"strings"
	"time"

	"github.com/example/bindery/internal/core/dates"
	"github.com/example/bindery/internal/models"
)

// DuplicateCheckResult reports existing customers that collide with a candidate.
// An email match blocks creation; a name match is only a warning.
type DuplicateCheckResult struct {
	HasDuplicates  bool
	DuplicateEmail *models.Customer
	DuplicateName  *models.Customer
}

// DuplicateGroup is a set of customers sharing one email, case-insensitively.
type DuplicateGroup struct {
	Email     string
	Customers []models.Customer
}

// CheckDuplicates compares a candidate name/email against all customers,
// skipping excludeID (the record being edited).
func CheckDuplicates(all []models.Customer, name, email, excludeID string) DuplicateCheckResult {
	var result DuplicateCheckResult

	if email != "" {
		for i := range all {
			if all[i].ID != excludeID && strings.EqualFold(all[i].Email, email) {
				match := all[i]
				result.DuplicateEmail = &match
				result.HasDuplicates = true
				break
			}
		}
	}

	for i := range all {
		if all[i].ID != excludeID && strings.EqualFold(all[i].Name, name) {
			match := all[i]
			result.DuplicateName = &match
			result.HasDuplicates = true
			break
		}
	}

	return result
}

// NameContains reports whether name contains substring, case-insensitively.
func NameContains(name, substring string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(substring))
}

// GroupByEmail returns every email shared by two or more customers, in order
// of first appearance. Customers without an email are never grouped.
func GroupByEmail(all []models.Customer) []DuplicateGroup {
	var order []string
	groups := make(map[string][]models.Customer)
	for _, c := range all {
		if c.Email == "" {
			continue
		}
		key := strings.ToLower(c.Email)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], c)
	}

	var out []DuplicateGroup
	for _, key := range order {
		if len(groups[key]) > 1 {
			out = append(out, DuplicateGroup{Email: key, Customers: groups[key]})
		}
	}
	return out
}

func createdAtKey(c models.Customer) time.Time {
	t, ok := dates.Parse(c.CreatedAt)
	if !ok {
		return time.Time{}
	}
	return t
}

// SelectSurvivor orders customers by createdAt ascending and splits off the
// earliest as the survivor. Ties keep their given order.
func SelectSurvivor(customers []models.Customer) (survivor models.Customer, others []models.Customer) {
	sorted := append([]models.Customer(nil), customers...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return createdAtKey(sorted[i]).Before(createdAtKey(sorted[j]))
	})
	return sorted[0], sorted[1:]
}
