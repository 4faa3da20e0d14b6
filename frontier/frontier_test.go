package frontier_test

import (
	"testing"

	"github.com/katalvlaran/gridwave/frontier"
)

func TestFrontier_PopOrder(t *testing.T) {
	f := frontier.New()
	f.Push(3, 9.0)
	f.Push(1, 1.0)
	f.Push(2, 4.0)

	var order []int
	for f.Len() > 0 {
		order = append(order, f.Pop().Index)
	}
	want := []int{1, 2, 3}
	if len(order) != len(want) {
		t.Fatalf("got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("got %v, want %v", order, want)
		}
	}
}

func TestFrontier_LazyDecreaseKey(t *testing.T) {
	f := frontier.New()
	f.Push(5, 10.0)
	f.Push(5, 2.0) // improved cost for the same index, stale entry left behind

	first := f.Pop()
	if first.Index != 5 || first.Cost != 2.0 {
		t.Fatalf("expected cheapest entry first, got %+v", first)
	}
	if f.Len() != 1 {
		t.Fatalf("expected stale duplicate still queued, Len()=%d", f.Len())
	}
	second := f.Pop()
	if second.Index != 5 || second.Cost != 10.0 {
		t.Fatalf("expected stale duplicate second, got %+v", second)
	}
}

func TestFrontier_PeekDoesNotRemove(t *testing.T) {
	f := frontier.New()
	f.Push(1, 5.0)
	e, ok := f.Peek()
	if !ok || e.Index != 1 {
		t.Fatalf("peek failed: %+v ok=%v", e, ok)
	}
	if f.Len() != 1 {
		t.Fatal("peek must not remove the entry")
	}
}

func TestFrontier_Reset(t *testing.T) {
	f := frontier.New()
	f.Push(1, 1.0)
	f.Push(2, 2.0)
	f.Reset()
	if f.Len() != 0 {
		t.Fatalf("expected empty frontier after Reset, Len()=%d", f.Len())
	}
}
