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

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"github.com/jtolds/gls"
)

// ShardBounds is one computed shard's (start, end] window. End is nil for
// the terminal shard of the whole plan, meaning "unbounded forward" (the
// canonical ring end).
type ShardBounds struct {
	Start Token
	End   *Token
}

// Plan is the computed, immutable set of D*S shard boundaries for one
// (snapshot, shardCount) pair, paired with per-shard metadata the tracker
// walks.
type Plan struct {
	ID            uuid.UUID
	ShardCount    int     // S, shards per disk slice
	DiskCount     int     // D, number of disk slices
	OwnedFraction float64 // total_unweighted of the owned set this plan was built from
	Shards        []ShardBounds
}

// String renders a short diagnostic summary of the plan.
func (p *Plan) String() string {
	return fmt.Sprintf("plan %s: %d disks x %d shards = %d boundaries (owned %s)",
		p.ID, p.DiskCount, p.ShardCount, len(p.Shards), formatFraction(p.OwnedFraction))
}

// buildPlan computes a Plan from an owned set, its disk slices, and a
// requested shard count S >= 1.
func buildPlan(owned *OwnedRangeSet, slices []Range, shardCount int) *Plan {
	diskCount := len(slices)
	perSlice := make([][]ShardBounds, diskCount)

	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	if diskCount <= workers {
		// one goroutine per disk slice, same as storage/partition.go's
		// iterateShardIndex when fan-out doesn't exceed available cores
		var wg sync.WaitGroup
		wg.Add(diskCount)
		for i, slice := range slices {
			i, slice := i, slice
			gls.Go(func() {
				defer wg.Done()
				perSlice[i] = buildSliceShards(slice, owned, shardCount)
			})
		}
		wg.Wait()
	} else {
		// worker pool over a channel of disk indices, throttling fan-out
		// to NumCPU, the same shape iterateShardIndex falls back to once
		// the shard count exceeds available cores
		jobs := make(chan int, workers)
		var wg sync.WaitGroup
		wg.Add(diskCount)
		for w := 0; w < workers; w++ {
			gls.Go(func() {
				for i := range jobs {
					perSlice[i] = buildSliceShards(slices[i], owned, shardCount)
					wg.Done()
				}
			})
		}
		for i := range slices {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
	}

	shards := make([]ShardBounds, 0, diskCount*shardCount)
	for _, s := range perSlice {
		shards = append(shards, s...)
	}
	// the last shard's end is unbounded forward, per the plan shape rule
	if len(shards) > 0 {
		shards[len(shards)-1].End = nil
	}

	return &Plan{
		ID:            uuid.New(),
		ShardCount:    shardCount,
		DiskCount:     diskCount,
		OwnedFraction: owned.Fraction(),
		Shards:        shards,
	}
}

// buildPlanSingleDisk computes a Plan for the no-disks path (spec §4.4's
// D == 1 case), splitting the whole owned set into shardCount equal-
// weighted shards directly, without the slice/restrictToRange machinery
// buildPlan uses for disk-aware planning.
func buildPlanSingleDisk(owned *OwnedRangeSet, shardCount int) *Plan {
	start := firstOwnedLeft(owned)

	if owned.Len() == 0 {
		// nothing owned: a plan with no shards, whose trackers start Terminated
		return &Plan{ID: uuid.New(), ShardCount: shardCount, DiskCount: 1}
	}

	if shardCount == 1 || owned.Weight() <= 0 {
		return &Plan{
			ID:            uuid.New(),
			ShardCount:    shardCount,
			DiskCount:     1,
			OwnedFraction: owned.Fraction(),
			Shards:        singleShardRun(start, shardCount),
		}
	}

	interior := owned.EqualWeightSplit(shardCount)
	snapped := make([]Token, len(interior))
	for i, b := range interior {
		snapped[i] = snapBoundary(b, owned, Range{Left: start, Right: start})
	}
	snapped = dedupAdjacent(snapped)

	shards := make([]ShardBounds, 0, shardCount)
	cursor := start
	for _, b := range snapped {
		end := b
		shards = append(shards, ShardBounds{Start: cursor, End: &end})
		cursor = b
	}
	shards = append(shards, ShardBounds{Start: cursor, End: nil})

	// pad with zero-width shards if snapping/dedup collapsed boundaries,
	// keeping the terminal shard's End nil
	for len(shards) < shardCount {
		last := len(shards) - 1
		lastStart := shards[last].Start
		shards[last].End = &lastStart
		shards = append(shards, ShardBounds{Start: lastStart, End: nil})
	}

	return &Plan{
		ID:            uuid.New(),
		ShardCount:    shardCount,
		DiskCount:     1,
		OwnedFraction: owned.Fraction(),
		Shards:        shards,
	}
}

// singleShardRun builds a shardCount-long run of shards all collapsed to
// start, the degenerate case: every shard but the last is zero-width at
// start, and the last is left open-ended.
func singleShardRun(start Token, shardCount int) []ShardBounds {
	out := make([]ShardBounds, 0, shardCount)
	for i := 0; i < shardCount-1; i++ {
		end := start
		out = append(out, ShardBounds{Start: start, End: &end})
	}
	out = append(out, ShardBounds{Start: start, End: nil})
	return out
}

// buildSliceShards computes the S shard descriptors for a single disk
// slice, given the owned ranges restricted to that slice.
func buildSliceShards(slice Range, owned *OwnedRangeSet, shardCount int) []ShardBounds {
	sliceOwned := restrictToRange(owned, slice)

	if shardCount == 1 {
		end := slice.Right
		return []ShardBounds{{Start: slice.Left, End: &end}}
	}

	if sliceOwned.Weight() <= 0 {
		// degenerate slice: no interior shard boundaries: all S shards
		// collapse to the slice's right end, except the first, which
		// carries the whole (empty-of-owned-weight) span.
		out := make([]ShardBounds, 0, shardCount)
		end := slice.Right
		out = append(out, ShardBounds{Start: slice.Left, End: &end})
		for i := 1; i < shardCount; i++ {
			endCopy := slice.Right
			out = append(out, ShardBounds{Start: slice.Right, End: &endCopy})
		}
		return out
	}

	interior := sliceOwned.EqualWeightSplit(shardCount)
	snapped := make([]Token, len(interior))
	for i, b := range interior {
		snapped[i] = snapBoundary(b, sliceOwned, slice)
	}
	snapped = dedupAdjacent(snapped)

	out := make([]ShardBounds, 0, shardCount)
	start := slice.Left
	for _, b := range snapped {
		end := b
		out = append(out, ShardBounds{Start: start, End: &end})
		start = b
	}
	end := slice.Right
	out = append(out, ShardBounds{Start: start, End: &end})

	// if snapping/dedup produced fewer than shardCount pieces (boundaries
	// collapsed into existing endpoints), pad with zero-width shards at
	// the slice's right end so the disk still contributes exactly
	// shardCount descriptors.
	for len(out) < shardCount {
		endCopy := slice.Right
		out = append(out, ShardBounds{Start: slice.Right, End: &endCopy})
	}
	return out
}

// snapBoundary snaps a computed interior boundary to an existing disk
// boundary or owned range endpoint within tolerance, per the planner's
// deduplication/coalescing policy (spec §4.4).
func snapBoundary(b Token, owned *OwnedRangeSet, slice Range) Token {
	candidates := []Token{slice.Left, slice.Right}
	for _, e := range owned.Entries() {
		candidates = append(candidates, e.Range.Left, e.Range.Right)
	}
	best, bestDist := b, tolerance
	for _, c := range candidates {
		if c == b {
			return c
		}
		// the forward distance is small in exactly one direction for two
		// nearby but distinct tokens; take whichever direction is shorter,
		// and keep the nearest candidate within tolerance
		d := Size(b, c)
		if back := Size(c, b); back < d {
			d = back
		}
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// restrictToRange clips owned's entries to the given slice, preserving
// per-entry weight, and returns the result as a fresh OwnedRangeSet. Used
// to compute the weighted size a disk slice owns before splitting it into
// S equal-weighted shards.
func restrictToRange(owned *OwnedRangeSet, slice Range) *OwnedRangeSet {
	var clipped []WeightedRange
	for _, e := range owned.Entries() {
		for _, ea := range e.Range.arcs() {
			for _, sa := range slice.arcs() {
				if iv, ok := intersectSingle(ea, sa); ok {
					clipped = append(clipped, WeightedRange{Range: iv, Weight: e.Weight})
				}
			}
		}
	}
	return NewOwnedRangeSet(clipped)
}
