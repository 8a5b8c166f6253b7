package customer

import (
	"testing"

	"github.com/example/bindery/internal/models"
)

var fixtures = []models.Customer{
	{ID: "1", Name: "Acme Bindery", Email: "orders@acme.com", CreatedAt: "2026-01-03T00:00:00.000Z"},
	{ID: "2", Name: "Globex", Email: "ORDERS@ACME.COM", CreatedAt: "2026-01-01T00:00:00.000Z"},
	{ID: "3", Name: "Initech", CreatedAt: "2026-01-02T00:00:00.000Z"},
	{ID: "4", Name: "Hooli", Email: "hi@hooli.com", CreatedAt: "2026-01-04T00:00:00.000Z"},
	{ID: "5", Name: "hooli", Email: "Hi@Hooli.com", CreatedAt: "2026-01-05T00:00:00.000Z"},
}

func TestCheckDuplicates(t *testing.T) {
	tests := []struct {
		name      string
		cand      string
		email     string
		exclude   string
		wantEmail string
		wantName  string
	}{
		{name: "no collision", cand: "Umbrella", email: "u@umbrella.com"},
		{name: "email differs only by case", cand: "New", email: "Orders@Acme.com", wantEmail: "1"},
		{name: "name differs only by case", cand: "INITECH", wantName: "3"},
		{name: "both", cand: "globex", email: "hi@hooli.com", wantEmail: "4", wantName: "2"},
		{name: "self excluded", cand: "Initech", exclude: "3"},
		{name: "self excluded finds other", cand: "Hooli", email: "hi@hooli.com", exclude: "4", wantEmail: "5", wantName: "5"},
		{name: "empty email never matches", cand: "Nobody", email: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := CheckDuplicates(fixtures, tt.cand, tt.email, tt.exclude)

			gotEmail, gotName := "", ""
			if r.DuplicateEmail != nil {
				gotEmail = r.DuplicateEmail.ID
			}
			if r.DuplicateName != nil {
				gotName = r.DuplicateName.ID
			}
			if gotEmail != tt.wantEmail {
				t.Errorf("DuplicateEmail = %q, want %q", gotEmail, tt.wantEmail)
			}
			if gotName != tt.wantName {
				t.Errorf("DuplicateName = %q, want %q", gotName, tt.wantName)
			}
			if r.HasDuplicates != (tt.wantEmail != "" || tt.wantName != "") {
				t.Errorf("HasDuplicates = %v", r.HasDuplicates)
			}
		})
	}
}

func TestGroupByEmail(t *testing.T) {
	groups := GroupByEmail(fixtures)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Email != "orders@acme.com" || len(groups[0].Customers) != 2 {
		t.Errorf("group[0] = %+v", groups[0])
	}
	if groups[1].Email != "hi@hooli.com" || len(groups[1].Customers) != 2 {
		t.Errorf("group[1] = %+v", groups[1])
	}
}

func TestSelectSurvivor(t *testing.T) {
	survivor, others := SelectSurvivor([]models.Customer{fixtures[0], fixtures[1], fixtures[2]})
	if survivor.ID != "2" {
		t.Errorf("survivor = %s, want 2 (earliest createdAt)", survivor.ID)
	}
	if len(others) != 2 || others[0].ID != "3" || others[1].ID != "1" {
		t.Errorf("others = %+v, want [3 1]", others)
	}
}

func TestNameContains(t *testing.T) {
	if !NameContains("Acme Bindery", "bind") {
		t.Error("expected case-insensitive substring match")
	}
	if NameContains("Acme Bindery", "globex") {
		t.Error("unexpected match")
	}
}
