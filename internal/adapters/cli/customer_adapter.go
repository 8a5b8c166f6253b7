package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/bindery/internal/errs"
	"github.com/example/bindery/internal/models"
	"github.com/example/bindery/internal/ports/primary"
)

// CustomerAdapter translates CLI operations to CustomerService calls.
type CustomerAdapter struct {
	service primary.CustomerService
	out     io.Writer
}

// NewCustomerAdapter creates a new CustomerAdapter with the given service.
func NewCustomerAdapter(service primary.CustomerService, out io.Writer) *CustomerAdapter {
	return &CustomerAdapter{
		service: service,
		out:     out,
	}
}

// Create creates a customer, warning (not failing) on a name collision.
func (a *CustomerAdapter) Create(ctx context.Context, input models.CreateCustomerInput) error {
	check, err := a.service.CheckForDuplicates(ctx, input.Name, input.Email, "")
	if err != nil {
		return err
	}
	if check.DuplicateName != nil && check.DuplicateEmail == nil {
		fmt.Fprintf(a.out, "%s a customer named %q already exists (%s)\n",
			color.New(color.FgYellow).Sprint("!"), check.DuplicateName.Name, check.DuplicateName.ID)
	}

	c, err := a.service.Create(ctx, input)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Created customer %s: %s\n", c.ID, c.Name)
	return nil
}

// List lists all customers.
func (a *CustomerAdapter) List(ctx context.Context) error {
	customers, err := a.service.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list customers: %w", err)
	}
	a.printTable(customers)
	return nil
}

// Search lists customers whose name contains the query.
func (a *CustomerAdapter) Search(ctx context.Context, query string) error {
	customers, err := a.service.FindByName(ctx, query)
	if err != nil {
		return err
	}
	a.printTable(customers)
	return nil
}

func (a *CustomerAdapter) printTable(customers []models.Customer) {
	if len(customers) == 0 {
		fmt.Fprintln(a.out, "No customers found")
		return
	}

	fmt.Fprintf(a.out, "\n%-36s  %-28s %-28s %s\n", "ID", "NAME", "EMAIL", "PHONE")
	fmt.Fprintln(a.out, rule)
	for _, c := range customers {
		fmt.Fprintf(a.out, "%-36s  %-28s %-28s %s\n", c.ID, truncate(c.Name, 28), orDash(c.Email), orDash(c.Phone))
	}
	fmt.Fprintln(a.out)
}

// Show displays details for a single customer.
func (a *CustomerAdapter) Show(ctx context.Context, id string) error {
	c, err := a.service.Get(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nCustomer: %s\n", c.ID)
	fmt.Fprintf(a.out, "Name:     %s\n", c.Name)
	if c.ContactName != "" {
		fmt.Fprintf(a.out, "Contact:  %s\n", c.ContactName)
	}
	if c.Email != "" {
		fmt.Fprintf(a.out, "Email:    %s\n", c.Email)
	}
	if c.Phone != "" {
		fmt.Fprintf(a.out, "Phone:    %s\n", c.Phone)
	}
	if c.Address != "" {
		fmt.Fprintf(a.out, "Address:  %s\n", c.Address)
	}
	if c.Notes != "" {
		fmt.Fprintf(a.out, "Notes:    %s\n", c.Notes)
	}
	fmt.Fprintf(a.out, "Created:  %s\n\n", c.CreatedAt)
	return nil
}

// Update updates a customer.
func (a *CustomerAdapter) Update(ctx context.Context, id string, input models.UpdateCustomerInput) error {
	c, err := a.service.Update(ctx, id, input)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Customer %s updated\n", c.ID)
	return nil
}

// Delete deletes a customer.
func (a *CustomerAdapter) Delete(ctx context.Context, id string) error {
	removed, err := a.service.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return errs.NotFound("Customer %s not found", id)
	}
	fmt.Fprintf(a.out, "✓ Customer %s deleted\n", id)
	return nil
}

// Duplicates lists groups of customers sharing an email.
func (a *CustomerAdapter) Duplicates(ctx context.Context) error {
	groups, err := a.service.FindDuplicates(ctx)
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		fmt.Fprintln(a.out, "No duplicate customers found")
		return nil
	}

	for _, g := range groups {
		fmt.Fprintf(a.out, "\n%s (%d customers)\n", g.Email, len(g.Customers))
		for _, c := range g.Customers {
			fmt.Fprintf(a.out, "  %-36s  %-28s %s\n", c.ID, truncate(c.Name, 28), c.CreatedAt)
		}
	}
	fmt.Fprintln(a.out)
	return nil
}

// Dedupe merges every duplicate group, keeping the oldest customer of each.
// With dryRun set it only reports what would be merged.
func (a *CustomerAdapter) Dedupe(ctx context.Context, dryRun bool) error {
	groups, err := a.service.FindDuplicates(ctx)
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		fmt.Fprintln(a.out, "No duplicate customers found")
		return nil
	}

	total := 0
	for _, g := range groups {
		ids := make([]string, len(g.Customers))
		for i, c := range g.Customers {
			ids[i] = c.ID
		}

		if dryRun {
			fmt.Fprintf(a.out, "Would merge %d customers sharing %s\n", len(ids), g.Email)
			total += len(ids) - 1
			continue
		}

		result, err := a.service.MergeDuplicates(ctx, ids)
		if err != nil {
			return fmt.Errorf("failed to merge %s: %w", g.Email, err)
		}
		total += len(result.DeletedIDs)
		fmt.Fprintf(a.out, "✓ Kept %s (%s), removed %d\n", result.Merged.ID, result.Merged.Name, len(result.DeletedIDs))
	}

	if dryRun {
		fmt.Fprintf(a.out, "\n%d duplicate(s) would be removed (dry run)\n", total)
	} else {
		fmt.Fprintf(a.out, "\n✓ Removed %d duplicate(s)\n", total)
	}
	return nil
}
