package pfc

import (
	"context"
	"errors"
	"testing"

	"github.com/discochess/pfc/internal/store"
	"github.com/discochess/pfc/internal/store/memstore"
)

func TestClient_Lookup(t *testing.T) {
	mem := memstore.New()
	mem.Put("words.pfc", []byte("!apple\n%ication\n%y\n!banana\n"))
	client := newTestClient(t, mem)
	ctx := context.Background()

	tests := []struct {
		word string
		want int
	}{
		{"apple", 1},
		{"application", 2},
		{"apply", 3},
		{"banana", 4},
		{" apply ", 3},
	}
	for _, tt := range tests {
		got, err := client.Lookup(ctx, "words.pfc", tt.word)
		if err != nil {
			t.Fatalf("Lookup(%q) error = %v", tt.word, err)
		}
		if got != tt.want {
			t.Errorf("Lookup(%q) = %d, want %d", tt.word, got, tt.want)
		}
	}

	for _, word := range []string{"aardvark", "apricot", "cherry"} {
		if _, err := client.Lookup(ctx, "words.pfc", word); !errors.Is(err, ErrNotFound) {
			t.Errorf("Lookup(%q) error = %v, want ErrNotFound", word, err)
		}
	}
}

func TestClient_Lookup_MissingObject(t *testing.T) {
	client := newTestClient(t, memstore.New())

	_, err := client.Lookup(context.Background(), "missing.pfc", "apple")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Lookup() error = %v, want store.ErrNotFound", err)
	}
}

func TestClient_Lookup_Cache(t *testing.T) {
	mem := memstore.New()
	mem.Put("words.pfc", []byte("!apple\n%y\n"))
	mem.Put("words.txt", []byte("cherry\n"))
	client := newTestClient(t, mem, WithCacheSize(4))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := client.Lookup(ctx, "words.pfc", "apply"); err != nil {
			t.Fatalf("Lookup() error = %v", err)
		}
	}
	if mem.Opens() != 1 {
		t.Errorf("store Opens() = %d, want 1", mem.Opens())
	}
	st, ok := client.CacheStats()
	if !ok || st.Hits != 2 || st.Misses != 1 {
		t.Errorf("CacheStats() = %+v, %v, want 2 hits and 1 miss", st, ok)
	}

	// Rewriting the list drops the cached copy.
	if _, err := client.Compress(ctx, "words.txt", "words.pfc"); err != nil {
		t.Fatalf("Compress() error = %v", err)
	}
	if _, err := client.Lookup(ctx, "words.pfc", "cherry"); err != nil {
		t.Errorf("Lookup() after rewrite error = %v", err)
	}
}
