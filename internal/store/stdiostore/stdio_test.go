package stdiostore

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/discochess/pfc/internal/store"
)

func TestStore_OpenCreate(t *testing.T) {
	var out bytes.Buffer
	s := &Store{In: strings.NewReader("apple\n"), Out: &out}
	ctx := context.Background()

	r, err := s.Open(ctx, Key)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	got, _ := io.ReadAll(r)
	if string(got) != "apple\n" {
		t.Errorf("Open() content = %q", got)
	}

	w, err := s.Create(ctx, Key)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	w.Write([]byte("!apple\n"))
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if out.String() != "!apple\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestStore_OtherKeys(t *testing.T) {
	s := &Store{In: strings.NewReader(""), Out: io.Discard}
	if _, err := s.Open(context.Background(), "words.txt"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Open() error = %v, want ErrNotFound", err)
	}
	if _, err := s.Create(context.Background(), "words.txt"); err == nil {
		t.Error("Create() with a file key should fail")
	}
}
