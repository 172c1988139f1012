package micro

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"testing"

	"github.com/discochess/pfc"
	"github.com/discochess/pfc/internal/store/diskstore"
	"github.com/discochess/pfc/internal/store/memstore"
)

// wordList returns n sorted words with realistic shared stems.
func wordList(n int) []byte {
	var buf bytes.Buffer
	for i := 0; i < n; i++ {
		fmt.Fprintf(&buf, "stem%04d-suffix%03d\n", i/100, i%100)
	}
	return buf.Bytes()
}

func newClient(b *testing.B, opts ...pfc.Option) (*pfc.Client, *memstore.Store) {
	b.Helper()
	mem := memstore.New()
	client, err := pfc.New(append([]pfc.Option{pfc.WithStore(mem)}, opts...)...)
	if err != nil {
		b.Fatalf("creating client: %v", err)
	}
	b.Cleanup(func() { client.Close() })
	return client, mem
}

// BenchmarkCompressStream measures throughput of front coding in memory.
func BenchmarkCompressStream(b *testing.B) {
	client, _ := newClient(b)
	words := wordList(100000)
	ctx := context.Background()

	b.SetBytes(int64(len(words)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := client.CompressStream(ctx, bytes.NewReader(words), io.Discard); err != nil {
			b.Fatalf("compress error: %v", err)
		}
	}
}

// BenchmarkExpandStream measures throughput of expansion in memory.
func BenchmarkExpandStream(b *testing.B) {
	client, _ := newClient(b)
	ctx := context.Background()

	var records bytes.Buffer
	if _, err := client.CompressStream(ctx, bytes.NewReader(wordList(100000)), &records); err != nil {
		b.Fatalf("compress error: %v", err)
	}

	b.SetBytes(int64(records.Len()))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := client.ExpandStream(ctx, bytes.NewReader(records.Bytes()), io.Discard); err != nil {
			b.Fatalf("expand error: %v", err)
		}
	}
}

// BenchmarkLookup_ColdCache measures a lookup that reads the list every time.
func BenchmarkLookup_ColdCache(b *testing.B) {
	benchmarkLookup(b, 0)
}

// BenchmarkLookup_WarmCache measures a lookup served from the LRU cache.
func BenchmarkLookup_WarmCache(b *testing.B) {
	benchmarkLookup(b, 4)
}

func benchmarkLookup(b *testing.B, cacheSize int) {
	client, mem := newClient(b, pfc.WithCacheSize(cacheSize))
	ctx := context.Background()

	mem.Put("words.txt", wordList(10000))
	if _, err := client.Compress(ctx, "words.txt", "words.pfc.zst"); err != nil {
		b.Fatalf("compress error: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := client.Lookup(ctx, "words.pfc.zst", "stem0050-suffix050"); err != nil {
			b.Fatalf("lookup error: %v", err)
		}
	}
}

// BenchmarkCompress_File compresses a real word list.
// Requires WORDS_FILE environment variable pointing to a sorted list.
func BenchmarkCompress_File(b *testing.B) {
	path := os.Getenv("WORDS_FILE")
	if path == "" {
		b.Skip("WORDS_FILE not set; skipping benchmark")
	}

	st, err := diskstore.New(b.TempDir())
	if err != nil {
		b.Fatalf("creating store: %v", err)
	}
	client, err := pfc.New(pfc.WithStore(st))
	if err != nil {
		b.Fatalf("creating client: %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		report, err := client.Analyze(ctx, path)
		if err != nil {
			b.Fatalf("analyze error: %v", err)
		}
		b.SetBytes(report.BytesIn)
	}
}
