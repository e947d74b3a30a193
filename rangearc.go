/*
Copyright (C) 2026  Carl-Philip Hänsch

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package ring

// Range denotes the half-open arc (left, right] traversed forward on the
// ring. A Range wraps when right <= left in raw ring order and either
// token is not Minimum(); the full ring is encoded as (Minimum, Minimum).
type Range struct {
	Left, Right Token
}

// IsFull reports whether r encodes the entire ring.
func (r Range) IsFull() bool {
	return r.Left == minimumToken && r.Right == minimumToken
}

// Wraps reports whether the arc crosses the ring origin.
func (r Range) Wraps() bool {
	if r.IsFull() {
		return false // full ring is its own case, not a "wrap"
	}
	return raw(r.Right) <= raw(r.Left)
}

// Size returns the fraction of the ring this arc occupies.
func (r Range) Size() float64 {
	return Size(r.Left, r.Right)
}

// arcs splits r into at most two non-wrapping sub-arcs, in forward order.
// A non-wrapping range (or the full ring) returns itself as a single arc,
// as does a range ending at Minimum(), which runs up to the top of the ring.
func (r Range) arcs() []Range {
	if r.IsFull() || r.Right == minimumToken {
		return []Range{r}
	}
	if !r.Wraps() {
		return []Range{r}
	}
	// wrap: (left, max] then (min, right]
	return []Range{
		{Left: r.Left, Right: minimumToken},
		{Left: minimumToken, Right: r.Right},
	}
}

// intersectSingle returns the forward-arc intersection of two non-wrapping
// ranges, or (false) if they don't overlap. Both a and b must already be
// single arcs returned by arcs().
func intersectSingle(a, b Range) (Range, bool) {
	if a.IsFull() {
		return b, true
	}
	if b.IsFull() {
		return a, true
	}

	// Work in raw coordinates with each arc (left, right] held as its
	// exclusive left and its last included position, raw(right)-1. For an
	// arc ending at Minimum() that subtraction wraps to the top of the ring.
	al, ar := raw(a.Left), raw(a.Right)-1
	bl, br := raw(b.Left), raw(b.Right)-1

	lo := al
	if bl > lo {
		lo = bl
	}
	hi := ar
	if br < hi {
		hi = br
	}
	if lo > hi {
		return Range{}, false
	}
	return Range{Left: fromRaw(lo), Right: fromRaw(hi + 1)}, true
}

// IntersectionSize returns the sum of Size(entry ∩ q) for the given entry
// range against query range q, handling wrap-around on either side by
// normalizing both to at most two non-wrapping arcs first.
func IntersectionSize(entry, q Range) float64 {
	var total float64
	for _, ea := range entry.arcs() {
		for _, qa := range q.arcs() {
			if iv, ok := intersectSingle(ea, qa); ok {
				total += iv.Size()
			}
		}
	}
	return total
}

// WeightedRange is a Range plus a positive replication weight.
type WeightedRange struct {
	Range  Range
	Weight float64
}

// WeightedSize returns weight * Size(left, right).
func (w WeightedRange) WeightedSize() float64 {
	return w.Weight * w.Range.Size()
}
