// Package app implements the primary ports: the customer, quote, job and
// run list services plus the shop-wide reconcile, summary, backup and seed services.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/example/bindery/internal/core/customer"
	"github.com/example/bindery/internal/core/dates"
	"github.com/example/bindery/internal/core/numbering"
	"github.com/example/bindery/internal/errs"
	"github.com/example/bindery/internal/models"
	"github.com/example/bindery/internal/ports/primary"
	"github.com/example/bindery/internal/ports/secondary"
)

// CustomerServiceImpl implements the CustomerService interface.
type CustomerServiceImpl struct {
	customerRepo secondary.CustomerRepository
	logger       *zap.Logger
	now          func() time.Time
	newID        func() string
}

// NewCustomerService creates a new CustomerService with injected dependencies.
func NewCustomerService(customerRepo secondary.CustomerRepository, logger *zap.Logger) *CustomerServiceImpl {
	return &CustomerServiceImpl{
		customerRepo: customerRepo,
		logger:       logger,
		now:          time.Now,
		newID:        numbering.GenerateID,
	}
}

// Create adds a customer after checking the email is not taken.
func (s *CustomerServiceImpl) Create(ctx context.Context, input models.CreateCustomerInput) (*models.Customer, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errs.InvalidArgument("customer name is required")
	}

	if input.Email != "" {
		check, err := s.CheckForDuplicates(ctx, input.Name, input.Email, "")
		if err != nil {
			return nil, err
		}
		if check.DuplicateEmail != nil {
			return nil, errs.Conflict("A customer with email %q already exists: %s", input.Email, check.DuplicateEmail.Name)
		}
	}

	record := models.Customer{
		ID:          s.newID(),
		Name:        input.Name,
		ContactName: input.ContactName,
		Email:       input.Email,
		Phone:       input.Phone,
		Address:     input.Address,
		Notes:       input.Notes,
		CreatedAt:   dates.Format(s.now()),
	}

	created, err := s.customerRepo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	logFor(ctx, s.logger).Info("customer created", zap.String("customer_id", created.ID), zap.String("name", created.Name))
	return &created, nil
}

// CheckForDuplicates reports email and name collisions with existing customers.
func (s *CustomerServiceImpl) CheckForDuplicates(ctx context.Context, name, email, excludeID string) (*customer.DuplicateCheckResult, error) {
	all, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	result := customer.CheckDuplicates(all, name, email, excludeID)
	return &result, nil
}

// Update merges the provided fields over the stored customer.
func (s *CustomerServiceImpl) Update(ctx context.Context, id string, input models.UpdateCustomerInput) (*models.Customer, error) {
	existing, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, errs.InvalidArgument("customer name is required")
	}

	// Email collisions are only re-checked when the email actually changes.
	if input.Email != nil && *input.Email != "" && *input.Email != existing.Email {
		check, err := s.CheckForDuplicates(ctx, existing.Name, *input.Email, id)
		if err != nil {
			return nil, err
		}
		if check.DuplicateEmail != nil {
			return nil, errs.Conflict("A customer with email %q already exists: %s", *input.Email, check.DuplicateEmail.Name)
		}
	}

	updated := *existing
	applyString(&updated.Name, input.Name)
	applyString(&updated.ContactName, input.ContactName)
	applyString(&updated.Email, input.Email)
	applyString(&updated.Phone, input.Phone)
	applyString(&updated.Address, input.Address)
	applyString(&updated.Notes, input.Notes)

	saved, err := s.customerRepo.Update(ctx, id, updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	logFor(ctx, s.logger).Info("customer updated", zap.String("customer_id", id))
	return &saved, nil
}

// Delete removes a customer. Referencing quotes and jobs keep their snapshot.
func (s *CustomerServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	removed, err := s.customerRepo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete customer: %w", err)
	}
	if removed {
		logFor(ctx, s.logger).Info("customer deleted", zap.String("customer_id", id))
	}
	return removed, nil
}

// Get retrieves a customer by ID.
func (s *CustomerServiceImpl) Get(ctx context.Context, id string) (*models.Customer, error) {
	return s.fetch(ctx, id)
}

// List retrieves all customers.
func (s *CustomerServiceImpl) List(ctx context.Context) ([]models.Customer, error) {
	all, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return all, nil
}

// FindByName returns customers whose name contains substring.
func (s *CustomerServiceImpl) FindByName(ctx context.Context, substring string) ([]models.Customer, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.Customer
	for _, c := range all {
		if customer.NameContains(c.Name, substring) {
			out = append(out, c)
		}
	}
	return out, nil
}

// FindByEmail returns the first customer with the email, or nil.
func (s *CustomerServiceImpl) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].Email != "" && strings.EqualFold(all[i].Email, email) {
			return &all[i], nil
		}
	}
	return nil, nil
}

// FindDuplicates groups customers that share an email.
func (s *CustomerServiceImpl) FindDuplicates(ctx context.Context) ([]customer.DuplicateGroup, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return customer.GroupByEmail(all), nil
}

// MergeDuplicates keeps the oldest of the given customers and deletes the rest.
// Repeated ids count once.
// Quotes and jobs that referenced a deleted customer are not rewritten.
func (s *CustomerServiceImpl) MergeDuplicates(ctx context.Context, ids []string) (*primary.MergeResult, error) {
	if len(ids) < 2 {
		return nil, errs.InvalidArgument("Need at least 2 customers to merge")
	}

	var found []models.Customer
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		c, err := s.customerRepo.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to load customer %s: %w", id, err)
		}
		if c != nil {
			found = append(found, *c)
		}
	}
	if len(found) < 2 {
		return nil, errs.InvalidArgument("Could not find enough customers to merge")
	}

	survivor, others := customer.SelectSurvivor(found)

	result := &primary.MergeResult{Merged: survivor}
	for _, dup := range others {
		if _, err := s.customerRepo.Delete(ctx, dup.ID); err != nil {
			return nil, fmt.Errorf("failed to delete duplicate customer %s: %w", dup.ID, err)
		}
		result.DeletedIDs = append(result.DeletedIDs, dup.ID)
	}

	logFor(ctx, s.logger).Info("customers merged",
		zap.String("survivor_id", survivor.ID),
		zap.Strings("deleted_ids", result.DeletedIDs))
	return result, nil
}

func (s *CustomerServiceImpl) fetch(ctx context.Context, id string) (*models.Customer, error) {
	c, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}
	if c == nil {
		return nil, errs.NotFound("Customer %s not found", id)
	}
	return c, nil
}

// applyString overwrites dst when a replacement was supplied.
func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// Ensure CustomerServiceImpl implements the interface.
var _ primary.CustomerService = (*CustomerServiceImpl)(nil)
