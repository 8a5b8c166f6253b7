package jsonstore_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/bindery/internal/adapters/jsonstore"
	"github.com/example/bindery/internal/errs"
	"github.com/example/bindery/internal/models"
)

func newCustomerStore(t *testing.T) (*jsonstore.Store[models.Customer], string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "data", "customers.json")
	return jsonstore.New[models.Customer](path), path
}

func TestStore_MissingFileIsEmpty(t *testing.T) {
	store, path := newCustomerStore(t)

	all, err := store.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "reading must not create the file")
}

func TestStore_BlankFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "customers.json")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0644))

	all, err := jsonstore.New[models.Customer](path).FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestStore_CreateCreatesDirectoryAndPersists(t *testing.T) {
	store, path := newCustomerStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, models.Customer{ID: "c-1", Name: "Acme", CreatedAt: "2026-01-02T03:04:05Z"})
	require.NoError(t, err)
	assert.Equal(t, "c-1", created.ID)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(string(data)), "["), "file must hold a JSON array")
	assert.Contains(t, string(data), `"name": "Acme"`)
}

func TestStore_RoundTripPreservesFieldsAndOrder(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	store := jsonstore.Open[models.Job](dir, "jobs")

	samples := 25
	input := []models.Job{
		{ID: "j-1", JobNumber: "2601-0001", Quantity: 500, UnitPrice: 0.45, Status: models.JobPending, AllowedSamples: &samples},
		{ID: "j-2", JobNumber: "2601-0002", Quantity: 1000, UnitPrice: 0.35, Status: models.JobComplete, CompletedAt: "2026-01-05T00:00:00Z"},
		{ID: "j-3", JobNumber: "2601-0003", Quantity: 250, UnitPrice: 1.1, Status: models.JobOnHold, PONumber: "PO-77"},
	}
	for _, j := range input {
		_, err := store.Create(ctx, j)
		require.NoError(t, err)
	}

	fresh := jsonstore.Open[models.Job](dir, "jobs")
	all, err := fresh.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(input))
	assert.Equal(t, input, all)

	data, err := os.ReadFile(filepath.Join(dir, "jobs.json"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "undefined")
	assert.NotContains(t, string(data), "null")
	assert.NotContains(t, string(data), `"paperStock"`, "absent optional fields must be omitted")
}

func TestStore_FindByID(t *testing.T) {
	store, _ := newCustomerStore(t)
	ctx := context.Background()
	_, err := store.Create(ctx, models.Customer{ID: "c-1", Name: "Acme"})
	require.NoError(t, err)

	found, err := store.FindByID(ctx, "c-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Acme", found.Name)

	missing, err := store.FindByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStore_UpdateReplacesRecord(t *testing.T) {
	store, path := newCustomerStore(t)
	ctx := context.Background()
	_, err := store.Create(ctx, models.Customer{ID: "c-1", Name: "Acme"})
	require.NoError(t, err)
	_, err = store.Create(ctx, models.Customer{ID: "c-2", Name: "Globex"})
	require.NoError(t, err)

	_, err = store.Update(ctx, "c-1", models.Customer{ID: "c-1", Name: "Acme Bindery"})
	require.NoError(t, err)

	all, err := jsonstore.New[models.Customer](path).FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Acme Bindery", all[0].Name)
	assert.Equal(t, "Globex", all[1].Name)
}

func TestStore_UpdateMissingIsNotFound(t *testing.T) {
	store, _ := newCustomerStore(t)

	_, err := store.Update(context.Background(), "ghost", models.Customer{ID: "ghost"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestStore_Delete(t *testing.T) {
	store, _ := newCustomerStore(t)
	ctx := context.Background()
	_, err := store.Create(ctx, models.Customer{ID: "c-1", Name: "Acme"})
	require.NoError(t, err)

	removed, err := store.Delete(ctx, "c-1")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = store.Delete(ctx, "c-1")
	require.NoError(t, err)
	assert.False(t, removed, "deleting an absent id reports false without error")

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestStore_FindAllReturnsCopy(t *testing.T) {
	store, _ := newCustomerStore(t)
	ctx := context.Background()
	_, err := store.Create(ctx, models.Customer{ID: "c-1", Name: "Acme"})
	require.NoError(t, err)

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	all[0].Name = "mutated"

	again, err := store.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Acme", again[0].Name)
}

func TestStore_ClearCacheRereadsFile(t *testing.T) {
	store, path := newCustomerStore(t)
	ctx := context.Background()
	_, err := store.Create(ctx, models.Customer{ID: "c-1", Name: "Acme"})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"c-9","name":"Edited","createdAt":""}]`), 0644))

	cached, err := store.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "c-1", cached[0].ID, "cache is authoritative until cleared")

	store.ClearCache()
	reread, err := store.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, reread, 1)
	assert.Equal(t, "c-9", reread[0].ID)
}

func TestStore_FindBy(t *testing.T) {
	store, _ := newCustomerStore(t)
	ctx := context.Background()
	for _, c := range []models.Customer{{ID: "1", Name: "Acme"}, {ID: "2", Name: "Globex"}, {ID: "3", Name: "Acme West"}} {
		_, err := store.Create(ctx, c)
		require.NoError(t, err)
	}

	matches, err := store.FindBy(ctx, func(c models.Customer) bool { return strings.HasPrefix(c.Name, "Acme") })
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "1", matches[0].ID)
	assert.Equal(t, "3", matches[1].ID)
}

func TestStore_CorruptFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "customers.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := jsonstore.New[models.Customer](path).FindAll(context.Background())
	assert.Error(t, err)
}
