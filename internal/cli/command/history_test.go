package command

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/proofgate/proofgate-go/internal/core/domain"
	"github.com/proofgate/proofgate-go/internal/storage"
)

// seedJournal writes n attempts into a fresh journal at dir and closes it.
func seedJournal(t *testing.T, dir string, n int) []string {
	t.Helper()

	journal, err := storage.NewBadgerJournal(storage.BadgerConfig{Dir: dir})
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	defer journal.Close()

	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id, err := domain.NewAttemptID()
		if err != nil {
			t.Fatalf("NewAttemptID() error = %v", err)
		}
		attempt := &domain.Attempt{
			ID:          id,
			Fingerprint: "0123456789abcdef",
			Window:      1699999980,
			Secret:      strings.Repeat("a", 64),
			Outcome:     domain.OutcomeAccepted,
			CreatedAt:   time.Now().Add(time.Duration(-i) * time.Minute),
		}
		if err := journal.Record(context.Background(), attempt); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
		ids = append(ids, id)
	}
	return ids
}

func TestHistory_Table(t *testing.T) {
	dir := t.TempDir()
	seedJournal(t, dir, 3)

	out, err := captureStdout(t, func() error {
		return App().Run([]string{"proofgate", "--data-dir", dir, "history"})
	})
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}

	if !strings.Contains(out, "ATTEMPT ID") {
		t.Errorf("table header missing: %q", out)
	}
	if !strings.Contains(out, "Total: 3 attempts") {
		t.Errorf("total line missing: %q", out)
	}
}

func TestHistory_JSON(t *testing.T) {
	dir := t.TempDir()
	ids := seedJournal(t, dir, 1)

	out, err := captureStdout(t, func() error {
		return App().Run([]string{"proofgate", "--data-dir", dir, "--output", "json", "history"})
	})
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if !strings.Contains(out, ids[0]) {
		t.Errorf("JSON output missing attempt id %s: %q", ids[0], out)
	}
}

func TestHistory_Limit(t *testing.T) {
	dir := t.TempDir()
	seedJournal(t, dir, 5)

	out, err := captureStdout(t, func() error {
		return App().Run([]string{"proofgate", "--data-dir", dir, "history", "--limit", "2"})
	})
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if !strings.Contains(out, "Total: 2 attempts") {
		t.Errorf("limit not applied: %q", out)
	}
}

func TestHistory_RequiresDataDir(t *testing.T) {
	err := App().Run([]string{"proofgate", "history"})
	if err == nil {
		t.Fatal("history without --data-dir should fail")
	}
	if !strings.Contains(err.Error(), "data-dir") {
		t.Errorf("error should mention data-dir: %v", err)
	}
}
