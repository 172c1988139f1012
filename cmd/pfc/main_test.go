package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	return string(data)
}

func TestCompressExpand(t *testing.T) {
	dir := t.TempDir()
	plain := writeFile(t, dir, "words.txt", "apple\napplication\napply\n")
	compressed := filepath.Join(dir, "words.pfc")
	expanded := filepath.Join(dir, "words.out")

	if _, err := execute(t, "compress", plain, compressed); err != nil {
		t.Fatalf("compress error = %v", err)
	}
	if got := readFile(t, compressed); got != "!apple\n%ication\n%y\n" {
		t.Errorf("compressed = %q", got)
	}

	if _, err := execute(t, "expand", compressed, expanded); err != nil {
		t.Fatalf("expand error = %v", err)
	}
	if got := readFile(t, expanded); got != "apple\napplication\napply\n" {
		t.Errorf("expanded = %q", got)
	}
}

func TestCompress_ContainerFlag(t *testing.T) {
	dir := t.TempDir()
	plain := writeFile(t, dir, "words.txt", "car\ncart\ncarton\ncat\n")
	compressed := filepath.Join(dir, "words.pfc")

	if _, err := execute(t, "--format", "brotli", "compress", plain, compressed); err != nil {
		t.Fatalf("compress error = %v", err)
	}
	if strings.Contains(readFile(t, compressed), "car") {
		t.Error("output should be brotli compressed")
	}

	out, err := execute(t, "--format", "brotli", "lookup", compressed, "carton")
	if err != nil {
		t.Fatalf("lookup error = %v", err)
	}
	if out != "3\n" {
		t.Errorf("lookup output = %q, want %q", out, "3\n")
	}
}

func TestExpand_MalformedRecord(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.pfc", "!abc\n*xyz\n")

	_, err := execute(t, "expand", bad, filepath.Join(dir, "out.txt"))
	if err == nil {
		t.Fatal("expand should fail on a malformed record")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error = %v, want line number", err)
	}
}

func TestVerify(t *testing.T) {
	dir := t.TempDir()
	plain := writeFile(t, dir, "words.txt", "apple\napplication\napply\n")
	compressed := writeFile(t, dir, "words.pfc", "!apple\n%ication\n%y\n")
	unsorted := writeFile(t, dir, "unsorted.txt", "pear\napple\n")

	out, err := execute(t, "verify", plain, compressed)
	if err != nil {
		t.Fatalf("verify error = %v\n%s", err, out)
	}
	if !strings.Contains(out, "Matches:    yes") {
		t.Errorf("verify output missing match:\n%s", out)
	}

	out, err = execute(t, "verify", unsorted)
	if err == nil {
		t.Fatal("verify should fail on an unsorted list")
	}
	if !strings.Contains(out, `line 2 "apple" sorts before line 1 "pear"`) {
		t.Errorf("verify output missing inversion:\n%s", out)
	}
}

func TestStats(t *testing.T) {
	dir := t.TempDir()
	plain := writeFile(t, dir, "words.txt", "apple\napplication\napply\n")

	out, err := execute(t, "stats", plain)
	if err != nil {
		t.Fatalf("stats error = %v", err)
	}
	for _, want := range []string{"Words:        3", "Shared:       2 words", "Saved chars:  8", "Prefix max:   4"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats output missing %q:\n%s", want, out)
		}
	}
}

func TestLookup_NotFound(t *testing.T) {
	dir := t.TempDir()
	compressed := writeFile(t, dir, "words.pfc", "!apple\n%y\n")

	_, err := execute(t, "lookup", compressed, "banana")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("lookup error = %v, want not found", err)
	}
}

func TestMetricsFile(t *testing.T) {
	dir := t.TempDir()
	plain := writeFile(t, dir, "words.txt", "a\nab\nabc\n")
	metrics := filepath.Join(dir, "pfc.prom")

	if _, err := execute(t, "--metrics-file", metrics, "compress", plain, filepath.Join(dir, "words.pfc")); err != nil {
		t.Fatalf("compress error = %v", err)
	}
	if got := readFile(t, metrics); !strings.Contains(got, "pfc_records_encoded_total 3") {
		t.Errorf("metrics file:\n%s", got)
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	plain := writeFile(t, dir, "words.txt", "car\ncart\n")
	cfg := writeFile(t, dir, "pfc.yaml", "format: gzip\n")
	compressed := filepath.Join(dir, "words.pfc")

	if _, err := execute(t, "--config", cfg, "compress", plain, compressed); err != nil {
		t.Fatalf("compress error = %v", err)
	}
	if data := readFile(t, compressed); !strings.HasPrefix(data, "\x1f\x8b") {
		t.Errorf("output should be gzip, got %q", data)
	}
}

func TestUnknownFormat(t *testing.T) {
	if _, err := execute(t, "--format", "rar", "compress", "-", "-"); err == nil {
		t.Error("unknown format should fail")
	}
}
