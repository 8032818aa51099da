package comparisons

import (
	"math/rand"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/go-rbtree/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// compares with https://github.com/emirpasic/gods, https://github.com/google/btree
// and https://github.com/petar/GoLLRB on the same permutation.
// Point lookups are also run against https://github.com/alphadose/haxmap and
// https://github.com/cornelk/hashmap as an unordered baseline.

const benchmarkItemCount = 1 << 14

var perm = rand.New(rand.NewSource(0)).Perm(benchmarkItemCount)

func setupRBTree(b *testing.B) *Trees.RBTree[int] {
	b.Helper()
	t := Trees.MakeRBTree[int]()
	for _, v := range perm {
		t.Insert(v)
	}
	return t
}

func setupGods(b *testing.B) *redblacktree.Tree {
	b.Helper()
	t := redblacktree.NewWithIntComparator()
	for _, v := range perm {
		t.Put(v, struct{}{})
	}
	return t
}

func setupBTree(b *testing.B) *btree.BTreeG[int] {
	b.Helper()
	t := btree.NewOrderedG[int](32)
	for _, v := range perm {
		t.ReplaceOrInsert(v)
	}
	return t
}

func setupLLRB(b *testing.B) *llrb.LLRB {
	b.Helper()
	t := llrb.New()
	for _, v := range perm {
		t.ReplaceOrInsert(llrb.Int(v))
	}
	return t
}

func setupHaxMap(b *testing.B) *haxmap.Map[int, struct{}] {
	b.Helper()
	m := haxmap.New[int, struct{}]()
	for _, v := range perm {
		m.Set(v, struct{}{})
	}
	return m
}

func setupHashMap(b *testing.B) *hashmap.Map[int, struct{}] {
	b.Helper()
	m := hashmap.New[int, struct{}]()
	for _, v := range perm {
		m.Set(v, struct{}{})
	}
	return m
}

func BenchmarkInsertRBTree(b *testing.B) {
	for i := 0; i < b.N; i++ {
		setupRBTree(b)
	}
}

func BenchmarkInsertGods(b *testing.B) {
	for i := 0; i < b.N; i++ {
		setupGods(b)
	}
}

func BenchmarkInsertBTree(b *testing.B) {
	for i := 0; i < b.N; i++ {
		setupBTree(b)
	}
}

func BenchmarkInsertLLRB(b *testing.B) {
	for i := 0; i < b.N; i++ {
		setupLLRB(b)
	}
}

func BenchmarkSearchRBTree(b *testing.B) {
	t := setupRBTree(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, v := range perm {
			if !t.Has(v) {
				b.Fail()
			}
		}
	}
}

func BenchmarkSearchGods(b *testing.B) {
	t := setupGods(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, v := range perm {
			if _, ok := t.Get(v); !ok {
				b.Fail()
			}
		}
	}
}

func BenchmarkSearchBTree(b *testing.B) {
	t := setupBTree(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, v := range perm {
			if !t.Has(v) {
				b.Fail()
			}
		}
	}
}

func BenchmarkSearchLLRB(b *testing.B) {
	t := setupLLRB(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, v := range perm {
			if !t.Has(llrb.Int(v)) {
				b.Fail()
			}
		}
	}
}

func BenchmarkSearchHaxMap(b *testing.B) {
	m := setupHaxMap(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, v := range perm {
			if _, ok := m.Get(v); !ok {
				b.Fail()
			}
		}
	}
}

func BenchmarkSearchHashMap(b *testing.B) {
	m := setupHashMap(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, v := range perm {
			if _, ok := m.Get(v); !ok {
				b.Fail()
			}
		}
	}
}

func BenchmarkDeleteRBTree(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		t := setupRBTree(b)
		b.StartTimer()
		for _, v := range perm {
			t.Delete(v)
		}
	}
}

func BenchmarkDeleteGods(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		t := setupGods(b)
		b.StartTimer()
		for _, v := range perm {
			t.Remove(v)
		}
	}
}

func BenchmarkDeleteBTree(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		t := setupBTree(b)
		b.StartTimer()
		for _, v := range perm {
			t.Delete(v)
		}
	}
}

func BenchmarkDeleteLLRB(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		t := setupLLRB(b)
		b.StartTimer()
		for _, v := range perm {
			t.Delete(llrb.Int(v))
		}
	}
}

func BenchmarkAscendRBTree(b *testing.B) {
	t := setupRBTree(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range t.All() {
		}
	}
}

func BenchmarkAscendBTree(b *testing.B) {
	t := setupBTree(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t.Ascend(func(int) bool { return true })
	}
}

func BenchmarkAscendLLRB(b *testing.B) {
	t := setupLLRB(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t.AscendGreaterOrEqual(llrb.Int(0), func(llrb.Item) bool { return true })
	}
}
