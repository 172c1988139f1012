package httpstore

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/discochess/pfc/internal/store"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/words.txt":
			io.WriteString(w, "apple\napply\n")
		case "/broken":
			http.Error(w, "boom", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestStore_Open(t *testing.T) {
	srv := newServer(t)
	s := New(WithHTTPClient(srv.Client()))
	defer s.Close()

	r, err := s.Open(context.Background(), srv.URL+"/words.txt")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(got) != "apple\napply\n" {
		t.Errorf("Open() content = %q", got)
	}
}

func TestStore_OpenStatuses(t *testing.T) {
	srv := newServer(t)
	s := New(WithHTTPClient(srv.Client()))

	if _, err := s.Open(context.Background(), srv.URL+"/missing"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Open(missing) error = %v, want ErrNotFound", err)
	}
	if _, err := s.Open(context.Background(), srv.URL+"/broken"); err == nil || errors.Is(err, store.ErrNotFound) {
		t.Errorf("Open(broken) error = %v, want a status error", err)
	}
}

func TestStore_CreateReadOnly(t *testing.T) {
	if _, err := New().Create(context.Background(), "https://example.com/x"); !errors.Is(err, store.ErrReadOnly) {
		t.Errorf("Create() error = %v, want ErrReadOnly", err)
	}
}
