package minidb

import (
	"fmt"
	"math/rand"
	"testing"
)

func BenchmarkInsert(b *testing.B) {
	for _, deg := range []int{2, 8, 64} {
		b.Run(fmt.Sprintf("t%d", deg), func(b *testing.B) {
			benchmarkInsert(b, deg)
		})
	}
}

func BenchmarkSearch(b *testing.B) {
	for _, deg := range []int{2, 8, 64} {
		b.Run(fmt.Sprintf("t%d", deg), func(b *testing.B) {
			benchmarkSearch(b, deg)
		})
	}
}

func BenchmarkInsertDelete(b *testing.B) {
	for _, deg := range []int{2, 8, 64} {
		b.Run(fmt.Sprintf("t%d", deg), func(b *testing.B) {
			benchmarkInsertDelete(b, deg)
		})
	}
}

func benchmarkInsert(b *testing.B, deg int) {
	b.ReportAllocs()

	defer func(v bool) { checkTree = v }(checkTree)
	checkTree = false

	keys := rand.New(rand.NewSource(1)).Perm(b.N)
	tr := newTestTree(b, deg)

	b.ResetTimer()

	for _, k := range keys {
		_ = tr.Insert(k, k)
	}
}

func benchmarkSearch(b *testing.B, deg int) {
	b.ReportAllocs()

	defer func(v bool) { checkTree = v }(checkTree)
	checkTree = false

	const N = 100000

	tr := newTestTree(b, deg)
	for _, k := range rand.New(rand.NewSource(1)).Perm(N) {
		_ = tr.Insert(k, k)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = tr.Search(i % N)
	}
}

func benchmarkInsertDelete(b *testing.B, deg int) {
	b.ReportAllocs()

	defer func(v bool) { checkTree = v }(checkTree)
	checkTree = false

	const N = 1024

	tr := newTestTree(b, deg)
	for k := 0; k < N; k++ {
		_ = tr.Insert(k, k)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		k := i % N

		_ = tr.Delete(k)
		_ = tr.Insert(k, k)
	}
}
