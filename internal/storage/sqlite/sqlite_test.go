package sqlite

import (
	"context"
	"strings"
	"testing"

	"github.com/michaelbrown/pybox/internal/storage"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestCreateAndGetSession(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	sess := &storage.Session{ID: "abcd1234-session"}
	if err := store.CreateSession(ctx, sess); err != nil {
		t.Fatal(err)
	}
	if sess.Status != storage.StatusActive {
		t.Errorf("status = %q, want active default", sess.Status)
	}
	if sess.CreatedAt.IsZero() || sess.UpdatedAt.IsZero() {
		t.Error("timestamps not set on create")
	}

	got, err := store.GetSession(ctx, "abcd1234-session")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != sess.ID || got.Status != storage.StatusActive || got.Executions != 0 {
		t.Errorf("got %+v", got)
	}
}

func TestGetSessionByPrefix(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	store.CreateSession(ctx, &storage.Session{ID: "aaaa-1111"})
	store.CreateSession(ctx, &storage.Session{ID: "bbbb-2222"})

	got, err := store.GetSession(ctx, "aaaa")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != "aaaa-1111" {
		t.Errorf("prefix lookup got %q", got.ID)
	}

	if _, err := store.GetSession(ctx, "cccc"); err == nil {
		t.Error("expected not-found error")
	} else if !strings.Contains(err.Error(), "not found") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDuplicateCreateFails(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.CreateSession(ctx, &storage.Session{ID: "dup"}); err != nil {
		t.Fatal(err)
	}
	if err := store.CreateSession(ctx, &storage.Session{ID: "dup"}); err == nil {
		t.Error("expected duplicate insert to fail")
	}
}

func TestMarkReleased(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	store.CreateSession(ctx, &storage.Session{ID: "rel-1"})
	if err := store.MarkReleased(ctx, "rel-1"); err != nil {
		t.Fatal(err)
	}

	got, err := store.GetSession(ctx, "rel-1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != storage.StatusReleased {
		t.Errorf("status = %q, want released", got.Status)
	}

	// Unknown ids are a no-op, not an error.
	if err := store.MarkReleased(ctx, "never-created"); err != nil {
		t.Errorf("MarkReleased(unknown) = %v, want nil", err)
	}
}

func TestRecordExecution(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	store.CreateSession(ctx, &storage.Session{ID: "exec-1"})
	for i := 0; i < 3; i++ {
		if err := store.RecordExecution(ctx, "exec-1"); err != nil {
			t.Fatal(err)
		}
	}

	got, err := store.GetSession(ctx, "exec-1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Executions != 3 {
		t.Errorf("executions = %d, want 3", got.Executions)
	}

	if err := store.RecordExecution(ctx, "never-created"); err != nil {
		t.Errorf("RecordExecution(unknown) = %v, want nil", err)
	}
}

func TestListSessionsFilter(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	store.CreateSession(ctx, &storage.Session{ID: "live-1"})
	store.CreateSession(ctx, &storage.Session{ID: "live-2"})
	store.CreateSession(ctx, &storage.Session{ID: "done-1"})
	store.MarkReleased(ctx, "done-1")

	all, err := store.ListSessions(ctx, storage.SessionListOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Errorf("len(all) = %d, want 3", len(all))
	}

	released, err := store.ListSessions(ctx, storage.SessionListOptions{Status: storage.StatusReleased})
	if err != nil {
		t.Fatal(err)
	}
	if len(released) != 1 || released[0].ID != "done-1" {
		t.Errorf("released = %+v", released)
	}

	limited, err := store.ListSessions(ctx, storage.SessionListOptions{Limit: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 2 {
		t.Errorf("len(limited) = %d, want 2", len(limited))
	}
}
