package session

import (
	"sync"
	"testing"
)

func TestOpenGeneratesUniqueIDs(t *testing.T) {
	m := NewManager()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := m.Open("")
		if id == "" {
			t.Fatal("Open returned empty id")
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
	if m.Len() != 100 {
		t.Errorf("Len() = %d, want 100", m.Len())
	}
}

func TestOpenHonorsHint(t *testing.T) {
	m := NewManager()

	id := m.Open("my-session")
	if id != "my-session" {
		t.Errorf("Open hint = %q, want %q", id, "my-session")
	}
	if _, ok := m.Get("my-session"); !ok {
		t.Error("expected hinted session to be live")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	m := NewManager()
	keep := m.Open("")
	id := m.Open("")

	m.Close(id)
	m.Close(id)              // already released
	m.Close("never-existed") // never created

	if _, ok := m.Get(id); ok {
		t.Error("expected session to be closed")
	}
	if _, ok := m.Get(keep); !ok {
		t.Error("closing one session must not affect others")
	}
}

func TestCloseAll(t *testing.T) {
	m := NewManager()
	for i := 0; i < 5; i++ {
		m.Open("")
	}

	m.CloseAll()
	if m.Len() != 0 {
		t.Errorf("Len() after CloseAll = %d, want 0", m.Len())
	}
}

func TestConcurrentLifecycle(t *testing.T) {
	m := NewManager()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := m.Open("")
			if _, ok := m.Get(id); !ok {
				t.Errorf("session %s not live after Open", id)
			}
			m.Close(id)
		}()
	}
	wg.Wait()

	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0", m.Len())
	}
}
