package selection

import (
	"reflect"
	"testing"
	"time"

	"github.com/sadopc/themekit/internal/theme"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore(t *testing.T) {
	store := newTestStore(t)

	if _, ok, err := store.Current(); err != nil || ok {
		t.Fatalf("Current() on empty store = ok %v, err %v", ok, err)
	}

	now := time.Now()
	id1, err := store.add(Entry{Theme: theme.BuiltinID("dark"), Timestamp: now.Add(-time.Hour)})
	if err != nil {
		t.Fatal(err)
	}
	if id1 == 0 {
		t.Error("expected non-zero ID")
	}

	id2, err := store.add(Entry{
		Theme:     theme.UserID("mine"),
		Variants:  []string{"HighContrast", "HiDpi"},
		Timestamp: now,
	})
	if err != nil {
		t.Fatal(err)
	}

	cur, ok, err := store.Current()
	if err != nil || !ok {
		t.Fatalf("Current() = ok %v, err %v", ok, err)
	}
	if cur.ID != id2 {
		t.Errorf("expected most recent selection, got id %d", cur.ID)
	}
	if cur.Theme != theme.UserID("mine") {
		t.Errorf("Theme = %+v, want user theme mine", cur.Theme)
	}
	if !reflect.DeepEqual(cur.Variants, []string{"HighContrast", "HiDpi"}) {
		t.Errorf("Variants = %v", cur.Variants)
	}

	entries, err := store.History(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[1].Theme != theme.BuiltinID("dark") || entries[1].Variants != nil {
		t.Errorf("oldest entry = %+v", entries[1])
	}

	if err := store.Clear(); err != nil {
		t.Fatal(err)
	}
	entries, err = store.History(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected 0 entries after clear, got %d", len(entries))
	}
}

func TestStore_Forget(t *testing.T) {
	store := newTestStore(t)

	store.add(Entry{Theme: theme.UserID("Mine")})
	store.add(Entry{Theme: theme.BuiltinID("mine")})
	store.add(Entry{Theme: theme.UserID("other")})

	if err := store.Forget(theme.UserID("mine")); err != nil {
		t.Fatal(err)
	}

	entries, err := store.History(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries after forget, got %d", len(entries))
	}
	for _, e := range entries {
		if e.Theme == theme.UserID("Mine") {
			t.Errorf("forgotten theme still listed: %+v", e)
		}
	}
}

func TestStore_TimestampRoundTrip(t *testing.T) {
	store := newTestStore(t)

	ts := time.Date(2024, 5, 6, 7, 8, 9, 123456789, time.UTC)
	if _, err := store.add(Entry{Theme: theme.BuiltinID("dark"), Timestamp: ts}); err != nil {
		t.Fatal(err)
	}

	cur, _, err := store.Current()
	if err != nil {
		t.Fatal(err)
	}
	if !cur.Timestamp.Equal(ts) {
		t.Errorf("Timestamp = %v, want %v", cur.Timestamp, ts)
	}
}

func TestStore_Select(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Select(theme.BuiltinID("dark"), nil); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Select(theme.BuiltinID("light"), []string{"HiDpi"}); err != nil {
		t.Fatal(err)
	}

	cur, ok, err := store.Current()
	if err != nil || !ok {
		t.Fatalf("Current() = ok %v, err %v", ok, err)
	}
	if cur.Theme != theme.BuiltinID("light") {
		t.Errorf("Current() = %+v, want light", cur.Theme)
	}
	if cur.Timestamp.IsZero() {
		t.Error("expected Select to stamp the entry")
	}
}
