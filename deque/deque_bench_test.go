package deque

import (
	"testing"

	efds "github.com/ef-ds/deque"

	"github.com/napalu/hybrid"
)

// Baseline comparisons against ef-ds/deque, the slice-of-blocks deque this
// package's hybrid buffer trades against.

func BenchmarkInsertBackRemoveFront(b *testing.B) {
	d, err := New[int, uint32]()
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := d.InsertBack(i); err != nil {
			b.Fatal(err)
		}
		d.RemoveFront()
	}
}

func BenchmarkInsertBackRemoveFrontEfDs(b *testing.B) {
	d := efds.New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.PushBack(i)
		d.PopFront()
	}
}

func BenchmarkFillDrain(b *testing.B) {
	const n = 1024
	d, err := New[int, uint32](hybrid.WithInitCapacity[int](64))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for v := 0; v < n; v++ {
			if err := d.InsertBack(v); err != nil {
				b.Fatal(err)
			}
		}
		for !d.Empty() {
			d.RemoveFront()
		}
	}
}

func BenchmarkFillDrainEfDs(b *testing.B) {
	const n = 1024
	d := efds.New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for v := 0; v < n; v++ {
			d.PushBack(v)
		}
		for d.Len() > 0 {
			d.PopFront()
		}
	}
}

func BenchmarkMixedEnds(b *testing.B) {
	d, err := New[int, uint32]()
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i&1 == 0 {
			_ = d.InsertFront(i)
		} else {
			_ = d.InsertBack(i)
		}
		if d.Len() > 256 {
			d.RemoveBack()
			d.RemoveFront()
		}
	}
}

func BenchmarkMixedEndsEfDs(b *testing.B) {
	d := efds.New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i&1 == 0 {
			d.PushFront(i)
		} else {
			d.PushBack(i)
		}
		if d.Len() > 256 {
			d.PopBack()
			d.PopFront()
		}
	}
}
