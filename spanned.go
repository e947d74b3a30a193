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

import "math"

// DataFileDescriptor describes an immutable on-disk data file for the
// purpose of the range-spanned calculation: its first and last token, and
// optionally its own reported coverage estimate.
type DataFileDescriptor struct {
	First, Last      Token
	ReportedCoverage float64 // use HasCoverage to tell "absent" from 0
	HasCoverage      bool
}

// RangeSpanned returns the fraction of owned token space d occupies,
// applying the correction rules in order (first match wins):
//
//  1. Same-token single-partition: d.First == d.Last -> 1.0, overriding
//     any reported coverage.
//  2. Reported coverage, when present, strictly positive, and not NaN,
//     is honored.
//  3. Otherwise the raw intersection against owned is used; if that is
//     zero (the file lies entirely outside owned space) the file is
//     treated as a standalone unit and 1.0 is returned.
//
// d.First must not sort after d.Last; a descriptor violating that
// precondition yields ErrInvalidDescriptor rather than a silently wrong
// fraction.
func RangeSpanned(owned *OwnedRangeSet, d DataFileDescriptor) (float64, error) {
	if d.First > d.Last {
		return 0, ErrInvalidDescriptor
	}

	if d.First == d.Last {
		return 1.0, nil
	}

	if d.HasCoverage && d.ReportedCoverage > 0 && !math.IsNaN(d.ReportedCoverage) {
		return d.ReportedCoverage, nil
	}

	intersection := owned.IntersectionSize(Range{Left: d.First, Right: d.Last})
	if intersection > 0 {
		return intersection, nil
	}
	return 1.0, nil // out-of-local-range correction
}
