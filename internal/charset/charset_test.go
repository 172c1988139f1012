package charset

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"", "utf-8"},
		{"utf8", "utf-8"},
		{"UTF-8", "utf-8"},
		{"latin1", "windows-1252"},
		{"iso-8859-15", "iso-8859-15"},
		{"koi8-r", "koi8-r"},
	}

	for _, tt := range tests {
		c, err := Lookup(tt.label)
		if err != nil {
			t.Fatalf("Lookup(%q) error = %v", tt.label, err)
		}
		if got := c.Name(); got != tt.want {
			t.Errorf("Lookup(%q).Name() = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestLookup_Unknown(t *testing.T) {
	if _, err := Lookup("klingon"); !errors.Is(err, ErrUnknownCharset) {
		t.Errorf("Lookup(klingon) error = %v, want ErrUnknownCharset", err)
	}
}

func TestUTF8_PassThrough(t *testing.T) {
	in := []byte("über\n\xff\n")
	got, err := io.ReadAll(UTF8.Reader(bytes.NewReader(in)))
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if !bytes.Equal(got, in) {
		t.Errorf("UTF8.Reader() = %q, want %q", got, in)
	}
}

func TestLatin1_RoundTrip(t *testing.T) {
	c, err := Lookup("latin1")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}

	latin1 := []byte("caf\xe9\n\xfcber\n")
	decoded, err := io.ReadAll(c.Reader(bytes.NewReader(latin1)))
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if got, want := string(decoded), "café\nüber\n"; got != want {
		t.Errorf("decoded = %q, want %q", got, want)
	}

	var out bytes.Buffer
	w := c.Writer(&out)
	if _, err := w.Write(decoded); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !bytes.Equal(out.Bytes(), latin1) {
		t.Errorf("encoded = %q, want %q", out.Bytes(), latin1)
	}
}
