package hashindex_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/airlink/hashindex"
)

// BenchmarkInsert measures inserts from a one-slot table, growth included.
func BenchmarkInsert(b *testing.B) {
	keys := make([]string, 1024)
	for i := range keys {
		keys[i] = "K" + strconv.Itoa(i)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t, _ := hashindex.New[int](1)
		for j, k := range keys {
			t.Insert(k, j)
		}
	}
}

// BenchmarkSearch measures hits on a warm table.
func BenchmarkSearch(b *testing.B) {
	t, _ := hashindex.New[int](1)
	keys := make([]string, 1024)
	for i := range keys {
		keys[i] = "K" + strconv.Itoa(i)
		t.Insert(keys[i], i)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = t.Search(keys[i%len(keys)])
	}
}
