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

import "github.com/google/btree"

// tolerance is the absolute numeric tolerance used throughout this
// package for boundary snapping and equality comparisons, per spec.
const tolerance = 1e-15

// OwnedRangeSet is a finite, ordered, pairwise-disjoint sequence of
// WeightedRanges. Entries are kept in a btree.BTreeG ordered by Left
// token, the same ordered-index role google/btree plays for the
// teacher's delta index (storage/index.go's deltaBtree).
//
// An OwnedRangeSet is immutable after construction and safe for
// concurrent reads.
type OwnedRangeSet struct {
	tree            *btree.BTreeG[WeightedRange]
	totalUnweighted float64
	totalWeighted   float64
}

func lessByLeft(a, b WeightedRange) bool {
	return raw(a.Range.Left) < raw(b.Range.Left)
}

// NewOwnedRangeSet builds an OwnedRangeSet from a caller-supplied list of
// WeightedRanges. The caller is responsible for the disjointness
// invariant (spec §3); this constructor only orders the entries and
// totals their (un)weighted sizes.
func NewOwnedRangeSet(ranges []WeightedRange) *OwnedRangeSet {
	o := &OwnedRangeSet{tree: btree.NewG(32, lessByLeft)}
	for _, r := range ranges {
		o.tree.ReplaceOrInsert(r)
		o.totalUnweighted += r.Range.Size()
		o.totalWeighted += r.WeightedSize()
	}
	return o
}

// Fraction returns the total owned fraction of the ring, in [0, 1].
func (o *OwnedRangeSet) Fraction() float64 {
	return o.totalUnweighted
}

// Weight returns the total weighted size across owned entries.
func (o *OwnedRangeSet) Weight() float64 {
	return o.totalWeighted
}

// Len returns the number of disjoint entries.
func (o *OwnedRangeSet) Len() int {
	return o.tree.Len()
}

// Entries returns the owned ranges in ring order, starting at the
// smallest left endpoint.
func (o *OwnedRangeSet) Entries() []WeightedRange {
	out := make([]WeightedRange, 0, o.tree.Len())
	o.tree.Ascend(func(w WeightedRange) bool {
		out = append(out, w)
		return true
	})
	return out
}

// IntersectionSize returns the sum over owned entries of
// Size(entry ∩ q), using the unweighted Size metric. A query whose
// Left == Right and both equal Minimum() is treated as the whole ring.
func (o *OwnedRangeSet) IntersectionSize(q Range) float64 {
	var total float64
	o.tree.Ascend(func(w WeightedRange) bool {
		total += IntersectionSize(w.Range, q)
		return true
	})
	return total
}

// EqualWeightSplit returns k-1 interior tokens such that, between
// consecutive boundaries (including the ring ends), the accumulated
// weighted size is equal to within tolerance of Weight()/k.
//
// The sweep walks entries in ring order maintaining a running weighted
// accumulator; at each of the k-1 target thresholds the boundary token is
// produced by Split(entry.Left, entry.Right, fractionWithinEntry), where
// fractionWithinEntry converts the local weighted remainder back to an
// unweighted position inside the current entry. A threshold landing
// exactly on an entry boundary resolves to that shared endpoint.
func (o *OwnedRangeSet) EqualWeightSplit(k int) []Token {
	if k <= 1 {
		return nil
	}
	if o.totalWeighted <= 0 {
		return nil
	}

	thresholds := make([]float64, k-1)
	for i := range thresholds {
		thresholds[i] = o.totalWeighted * float64(i+1) / float64(k)
	}

	boundaries := make([]Token, 0, k-1)
	var running float64
	next := 0

	o.tree.Ascend(func(w WeightedRange) bool {
		entryWeighted := w.WeightedSize()
		for next < len(thresholds) && thresholds[next] <= running+entryWeighted+tolerance {
			localRemainder := thresholds[next] - running
			if localRemainder < 0 {
				localRemainder = 0
			}
			var frac float64
			if w.Weight > 0 && w.Range.Size() > 0 {
				frac = (localRemainder / w.Weight) / w.Range.Size()
			}
			if frac < 0 {
				frac = 0
			}
			if frac > 1 {
				frac = 1
			}
			boundaries = append(boundaries, Split(w.Range.Left, w.Range.Right, frac))
			next++
		}
		running += entryWeighted
		return next < len(thresholds)
	})

	// degenerate trailing case: all remaining weight is zero past the
	// last nonzero entry, so any leftover thresholds snap to the ring end
	for next < len(thresholds) {
		boundaries = append(boundaries, minimumToken)
		next++
	}

	return dedupAdjacent(boundaries)
}

// dedupAdjacent collapses consecutive boundary tokens that are identical,
// per the planner's coalescing policy (spec §4.4). Tokens that differ only
// within tolerance are left as they are; snapBoundary handles those.
func dedupAdjacent(tokens []Token) []Token {
	if len(tokens) == 0 {
		return tokens
	}
	out := tokens[:1]
	for _, t := range tokens[1:] {
		if t == out[len(out)-1] {
			continue
		}
		out = append(out, t)
	}
	return out
}
