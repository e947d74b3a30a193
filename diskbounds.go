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

// DiskBoundarySnapshot is an OwnedRangeSet plus an ordered list of D disk
// boundary tokens partitioning the owned space into D contiguous disk
// slices of equal weighted size.
//
// Convention (spec §6, §9 Open Question, resolved here as directed by
// the spec: the test suite uses the "ending positions" form): Endings is
// a list of D *ending* positions, one per disk slice, in ring order. Each
// entry is the exclusive end of its slice. For a full-ring owned set the
// last entry is Minimum() (the ring wraps back to its own start).
type DiskBoundarySnapshot struct {
	Owned   *OwnedRangeSet
	Endings []Token
}

// diskSlices derives the D contiguous (start, end] slices implied by
// Endings, walking in ring order starting at the lowest owned left
// endpoint (or Minimum() for full-ring ownership).
func (d *DiskBoundarySnapshot) diskSlices() []Range {
	if len(d.Endings) == 0 {
		return []Range{{Left: firstOwnedLeft(d.Owned), Right: firstOwnedLeft(d.Owned)}}
	}
	slices := make([]Range, len(d.Endings))
	start := firstOwnedLeft(d.Owned)
	for i, end := range d.Endings {
		slices[i] = Range{Left: start, Right: end}
		start = end
	}
	return slices
}

// firstOwnedLeft returns the smallest left endpoint in the owned set's
// ring order, or Minimum() for an empty or full-ring ownership.
func firstOwnedLeft(o *OwnedRangeSet) Token {
	if o == nil || o.Len() == 0 {
		return minimumToken
	}
	entries := o.Entries()
	return entries[0].Range.Left
}
