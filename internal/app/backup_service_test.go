package app

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"go.uber.org/zap"

	"github.com/example/bindery/internal/models"
	"github.com/example/bindery/internal/ports/secondary"
)

// mockBackupSink implements secondary.BackupSink for testing.
type mockBackupSink struct {
	objects map[string][]byte
	putErr  error
}

func newMockBackupSink() *mockBackupSink {
	return &mockBackupSink{objects: make(map[string][]byte)}
}

func (m *mockBackupSink) Put(ctx context.Context, key string, r io.Reader) (string, error) {
	if m.putErr != nil {
		return "", m.putErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.objects[key] = data
	return "mem://" + key, nil
}

func (m *mockBackupSink) Name() string { return "mem" }

var _ secondary.BackupSink = (*mockBackupSink)(nil)

func TestBackupSnapshot(t *testing.T) {
	env := newTestEnv(false)
	env.mustJob()
	sink := newMockBackupSink()
	svc := NewBackupService(env.customerRepo, env.quoteRepo, env.jobRepo, env.runListRepo, sink, zap.NewNop())
	svc.now = testClock()

	result, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Sink != "mem" || len(result.Locations) != 4 {
		t.Errorf("unexpected result %+v", result)
	}
	if result.Records[secondary.JobsCollection] != 1 {
		t.Errorf("expected 1 job backed up, got %d", result.Records[secondary.JobsCollection])
	}

	var jobs []models.Job
	if err := json.Unmarshal(sink.objects["20260314T093000Z/jobs.json"], &jobs); err != nil {
		t.Fatalf("jobs snapshot is not a JSON array: %v", err)
	}
	if len(jobs) != 1 {
		t.Errorf("expected 1 job in snapshot, got %d", len(jobs))
	}
	if string(sink.objects["20260314T093000Z/runList.json"]) != "[]" {
		t.Errorf("expected empty collection written as [], got %q", sink.objects["20260314T093000Z/runList.json"])
	}
}

func TestBackupSnapshot_SinkError(t *testing.T) {
	env := newTestEnv(false)
	sink := newMockBackupSink()
	sink.putErr = errors.New("bucket missing")
	svc := NewBackupService(env.customerRepo, env.quoteRepo, env.jobRepo, env.runListRepo, sink, zap.NewNop())

	if _, err := svc.Snapshot(context.Background()); err == nil {
		t.Error("expected sink error to propagate")
	}
}
