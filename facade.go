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

import "sync"

// Facade is the planner entry point an engine snapshot is handed to. It
// selects between the no-disks variant (a single slice spanning the
// entire owned space) and the disk-aware variant, and memoizes one Plan
// per requested shard count.
//
// A Facade's inputs and its Plans are immutable once built, and the plan
// memo is guarded by the Facade's own mutex, so a Facade may be shared
// concurrently without caller-side synchronization, provided construction
// happens-before sharing (the calling compaction job supplies that
// ordering).
type Facade struct {
	owned    *OwnedRangeSet
	slices   []Range // unused when noDisks is true
	noDisks  bool

	mu    sync.Mutex
	plans map[int]*Plan // one per shard count; entries removed only by InvalidatePlan
}

// Create builds a Facade from a materialized DiskBoundarySnapshot. If the
// snapshot's Endings list is empty (or a single entry equal to the ring
// end under the full-ring convention), the no-disks path is used.
func Create(snapshot *DiskBoundarySnapshot) *Facade {
	if snapshot == nil || len(snapshot.Endings) == 0 {
		return CreateNoDisks(ownedOrEmpty(snapshot))
	}
	if len(snapshot.Endings) == 1 && snapshot.Endings[0] == minimumToken {
		return CreateNoDisks(snapshot.Owned)
	}
	return &Facade{
		owned:  snapshot.Owned,
		slices: snapshot.diskSlices(),
		plans:  make(map[int]*Plan),
	}
}

func ownedOrEmpty(snapshot *DiskBoundarySnapshot) *OwnedRangeSet {
	if snapshot == nil {
		return NewOwnedRangeSet(nil)
	}
	return snapshot.Owned
}

// CreateNoDisks builds a Facade that splits the entire owned space into S
// equal-weighted shards with no disk boundaries in play (the D == 1 path
// of spec §4.4).
func CreateNoDisks(owned *OwnedRangeSet) *Facade {
	if owned == nil {
		owned = NewOwnedRangeSet(nil)
	}
	return &Facade{
		owned:   owned,
		noDisks: true,
		plans:   make(map[int]*Plan),
	}
}

// RangeSpanned is the stateless query answering "what fraction of owned
// token space does this data file span?" It is pure and safe to call
// concurrently.
func (f *Facade) RangeSpanned(d DataFileDescriptor) (float64, error) {
	return RangeSpanned(f.owned, d)
}

// Boundaries returns a fresh ShardTracker for shardCount shards per disk
// slice. The underlying Plan is computed once per distinct shardCount,
// under the Facade's mutex, and memoized until InvalidatePlan drops it;
// concurrent first callers for the same shardCount wait for that one
// build and share its result.
func (f *Facade) Boundaries(shardCount int) (*ShardTracker, error) {
	if shardCount < 1 {
		return nil, ErrInvalidShardCount
	}
	plan, err := f.planFor(shardCount)
	if err != nil {
		return nil, err
	}
	tracef("minted tracker over %s", plan)
	return newShardTracker(plan), nil
}

func (f *Facade) planFor(shardCount int) (*Plan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.plans[shardCount]; ok {
		return p, nil
	}
	var p *Plan
	if f.noDisks {
		p = buildPlanSingleDisk(f.owned, shardCount)
	} else {
		p = buildPlan(f.owned, f.slices, shardCount)
	}
	f.plans[shardCount] = p
	tracef("built %s", p)
	return p, nil
}

// InvalidatePlan drops a single memoized plan so a caller that requested
// a one-off shard count can retry without discarding every other cached
// plan.
func (f *Facade) InvalidatePlan(shardCount int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.plans[shardCount]; !ok {
		return ErrNoSuchPlan
	}
	delete(f.plans, shardCount)
	return nil
}

// Description is an operational snapshot of a Facade's static inputs,
// returned by Describe.
type Description struct {
	DiskCount       int
	OwnedFraction   float64
	TotalWeighted   float64
	PerDiskWeighted []float64
}

// Describe returns a snapshot of the facade's disk count, owned fraction,
// and total/per-disk weighted size, for operational visibility before a
// caller commits to a compaction job.
func (f *Facade) Describe() Description {
	if f.noDisks {
		return Description{
			DiskCount:       1,
			OwnedFraction:   f.owned.Fraction(),
			TotalWeighted:   f.owned.Weight(),
			PerDiskWeighted: []float64{f.owned.Weight()},
		}
	}
	perDisk := make([]float64, len(f.slices))
	for i, slice := range f.slices {
		perDisk[i] = restrictToRange(f.owned, slice).Weight()
	}
	return Description{
		DiskCount:       len(f.slices),
		OwnedFraction:   f.owned.Fraction(),
		TotalWeighted:   f.owned.Weight(),
		PerDiskWeighted: perDisk,
	}
}
