package comparisons

import (
	"math/rand"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/go-dicts/Dicts"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// compares with https://github.com/emirpasic/gods,
// https://github.com/google/btree and https://github.com/petar/GoLLRB as
// ordered baselines, and with https://github.com/cornelk/hashmap and
// https://github.com/alphadose/haxmap as unordered membership baselines
// (those two don't keep order, so they only appear in the read benchmarks).

const benchmarkItemCount = 1 << 14

var rg = rand.New(rand.NewSource(0))

func setupDict(b *testing.B) *Dicts.RBTree[int, uint32] {
	b.Helper()
	d := Dicts.New[int, uint32](benchmarkItemCount)
	for _, v := range rg.Perm(benchmarkItemCount) {
		d.Insert(v)
	}
	return d
}

func setupGods(b *testing.B) *redblacktree.Tree {
	b.Helper()
	g := redblacktree.NewWithIntComparator()
	for _, v := range rg.Perm(benchmarkItemCount) {
		g.Put(v, nil)
	}
	return g
}

func setupBTree(b *testing.B) *btree.BTreeG[int] {
	b.Helper()
	tr := btree.NewOrderedG[int](32)
	for _, v := range rg.Perm(benchmarkItemCount) {
		tr.ReplaceOrInsert(v)
	}
	return tr
}

func setupLLRB(b *testing.B) *llrb.LLRB {
	b.Helper()
	l := llrb.New()
	for _, v := range rg.Perm(benchmarkItemCount) {
		l.ReplaceOrInsert(llrb.Int(v))
	}
	return l
}

func setupHaxMap(b *testing.B) *haxmap.Map[uintptr, uintptr] {
	b.Helper()
	m := haxmap.New[uintptr, uintptr]()
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		m.Set(i, i)
	}
	return m
}

func setupHashMap(b *testing.B) *hashmap.Map[uintptr, uintptr] {
	b.Helper()
	m := hashmap.New[uintptr, uintptr]()
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		m.Set(i, i)
	}
	return m
}

func BenchmarkInsertDict(b *testing.B) {
	for i_ := 0; i_ < b.N; i_++ {
		d := Dicts.New[int, uint32](benchmarkItemCount)
		for _, v := range rg.Perm(benchmarkItemCount) {
			d.Insert(v)
		}
	}
}

func BenchmarkInsertGods(b *testing.B) {
	for i_ := 0; i_ < b.N; i_++ {
		g := redblacktree.NewWithIntComparator()
		for _, v := range rg.Perm(benchmarkItemCount) {
			g.Put(v, nil)
		}
	}
}

func BenchmarkInsertBTree(b *testing.B) {
	for i_ := 0; i_ < b.N; i_++ {
		tr := btree.NewOrderedG[int](32)
		for _, v := range rg.Perm(benchmarkItemCount) {
			tr.ReplaceOrInsert(v)
		}
	}
}

func BenchmarkInsertLLRB(b *testing.B) {
	for i_ := 0; i_ < b.N; i_++ {
		l := llrb.New()
		for _, v := range rg.Perm(benchmarkItemCount) {
			l.ReplaceOrInsert(llrb.Int(v))
		}
	}
}

var sideEff bool

func BenchmarkReadDict(b *testing.B) {
	d := setupDict(b)
	b.ResetTimer()
	for i_ := 0; i_ < b.N; i_++ {
		for i := 0; i < benchmarkItemCount; i++ {
			sideEff = d.Has(i)
		}
	}
}

func BenchmarkReadGods(b *testing.B) {
	g := setupGods(b)
	b.ResetTimer()
	for i_ := 0; i_ < b.N; i_++ {
		for i := 0; i < benchmarkItemCount; i++ {
			_, sideEff = g.Get(i)
		}
	}
}

func BenchmarkReadBTree(b *testing.B) {
	tr := setupBTree(b)
	b.ResetTimer()
	for i_ := 0; i_ < b.N; i_++ {
		for i := 0; i < benchmarkItemCount; i++ {
			sideEff = tr.Has(i)
		}
	}
}

func BenchmarkReadLLRB(b *testing.B) {
	l := setupLLRB(b)
	b.ResetTimer()
	for i_ := 0; i_ < b.N; i_++ {
		for i := 0; i < benchmarkItemCount; i++ {
			sideEff = l.Has(llrb.Int(i))
		}
	}
}

func BenchmarkReadHaxMap(b *testing.B) {
	m := setupHaxMap(b)
	b.ResetTimer()
	for i_ := 0; i_ < b.N; i_++ {
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			_, sideEff = m.Get(i)
		}
	}
}

func BenchmarkReadHashMap(b *testing.B) {
	m := setupHashMap(b)
	b.ResetTimer()
	for i_ := 0; i_ < b.N; i_++ {
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			_, sideEff = m.Get(i)
		}
	}
}

var sideEffInt int

func BenchmarkAscendDict(b *testing.B) {
	d := setupDict(b)
	b.ResetTimer()
	for i_ := 0; i_ < b.N; i_++ {
		for f := d.InOrder(); ; {
			v, ok := f()
			if !ok {
				break
			}
			sideEffInt = v
		}
	}
}

func BenchmarkAscendGods(b *testing.B) {
	g := setupGods(b)
	b.ResetTimer()
	for i_ := 0; i_ < b.N; i_++ {
		for it := g.Iterator(); it.Next(); {
			sideEffInt = it.Key().(int)
		}
	}
}

func BenchmarkAscendBTree(b *testing.B) {
	tr := setupBTree(b)
	b.ResetTimer()
	for i_ := 0; i_ < b.N; i_++ {
		tr.Ascend(func(v int) bool {
			sideEffInt = v
			return true
		})
	}
}

func BenchmarkAscendLLRB(b *testing.B) {
	l := setupLLRB(b)
	b.ResetTimer()
	for i_ := 0; i_ < b.N; i_++ {
		l.AscendGreaterOrEqual(llrb.Int(-1), func(i llrb.Item) bool {
			sideEffInt = int(i.(llrb.Int))
			return true
		})
	}
}
