package ring

import "testing"

func TestRangeIsFull(t *testing.T) {
	r := Range{Left: minimumToken, Right: minimumToken}
	if !r.IsFull() {
		t.Errorf("Range{min, min}.IsFull() = false, want true")
	}
	r2 := Range{Left: Token(1), Right: Token(1)}
	if r2.IsFull() {
		t.Errorf("Range{1, 1}.IsFull() = true, want false")
	}
}

func TestRangeWraps(t *testing.T) {
	nonWrapping := Range{Left: Token(-10), Right: Token(10)}
	if nonWrapping.Wraps() {
		t.Errorf("non-wrapping range reported as wrapping")
	}
	wrapping := Range{Left: Token(10), Right: Token(-10)}
	if !wrapping.Wraps() {
		t.Errorf("wrapping range reported as non-wrapping")
	}
	full := Range{Left: minimumToken, Right: minimumToken}
	if full.Wraps() {
		t.Errorf("full ring incorrectly reported as wrapping")
	}
}

func TestRangeArcsNonWrapping(t *testing.T) {
	r := Range{Left: Token(-10), Right: Token(10)}
	arcs := r.arcs()
	if len(arcs) != 1 || arcs[0] != r {
		t.Errorf("arcs() of non-wrapping range = %v, want [%v]", arcs, r)
	}
}

func TestRangeArcsWrapping(t *testing.T) {
	r := Range{Left: Token(10), Right: Token(-10)}
	arcs := r.arcs()
	if len(arcs) != 2 {
		t.Fatalf("arcs() of wrapping range has %d pieces, want 2", len(arcs))
	}
	if arcs[0].Left != Token(10) || arcs[0].Right != minimumToken {
		t.Errorf("first arc = %v, want {10, min}", arcs[0])
	}
	if arcs[1].Left != minimumToken || arcs[1].Right != Token(-10) {
		t.Errorf("second arc = %v, want {min, -10}", arcs[1])
	}
}

func TestIntersectionSizeDisjoint(t *testing.T) {
	a := Range{Left: Token(0), Right: Token(10)}
	b := Range{Left: Token(20), Right: Token(30)}
	if got := IntersectionSize(a, b); got != 0 {
		t.Errorf("IntersectionSize(disjoint) = %v, want 0", got)
	}
}

func TestIntersectionSizeFullOverlap(t *testing.T) {
	a := Range{Left: Token(0), Right: Token(10)}
	if got := IntersectionSize(a, a); got != a.Size() {
		t.Errorf("IntersectionSize(a, a) = %v, want %v", got, a.Size())
	}
}

func TestIntersectionSizePartialOverlap(t *testing.T) {
	a := Range{Left: Token(0), Right: Token(20)}
	b := Range{Left: Token(10), Right: Token(30)}
	got := IntersectionSize(a, b)
	want := Range{Left: Token(10), Right: Token(20)}.Size()
	if got != want {
		t.Errorf("IntersectionSize(partial) = %v, want %v", got, want)
	}
}

func TestIntersectionSizeAgainstFullRing(t *testing.T) {
	a := Range{Left: Token(0), Right: Token(20)}
	full := Range{Left: minimumToken, Right: minimumToken}
	if got := IntersectionSize(a, full); got != a.Size() {
		t.Errorf("IntersectionSize(a, full) = %v, want %v", got, a.Size())
	}
}

func TestWeightedSize(t *testing.T) {
	w := WeightedRange{Range: Range{Left: Token(0), Right: Token(10)}, Weight: 2.0}
	if got := w.WeightedSize(); got != 2.0*w.Range.Size() {
		t.Errorf("WeightedSize() = %v, want %v", got, 2.0*w.Range.Size())
	}
}
