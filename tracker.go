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

	"github.com/google/uuid"
)

// trackerState is the tracker's position relative to its Plan.
type trackerState int

const (
	stateBeforeFirst trackerState = iota
	stateInShard
	stateTerminated
)

// ShardTracker is a single-owner, single-threaded cursor that streams
// through a Plan's shards in order as a compaction writer advances
// through a monotonically non-decreasing token stream.
//
// ShardTrackers are not safe for concurrent use; the Plan they walk is
// immutable and may be shared across independently-advancing trackers.
type ShardTracker struct {
	id    uuid.UUID
	plan  *Plan
	state trackerState
	index int // current shard index once InShard
}

// newShardTracker mints a fresh tracker over plan, starting BeforeFirst.
// A plan with zero shards (the no-disks plan of an empty owned set) starts
// already Terminated.
func newShardTracker(plan *Plan) *ShardTracker {
	t := &ShardTracker{id: uuid.New(), plan: plan, state: stateBeforeFirst}
	if len(plan.Shards) == 0 {
		t.state = stateTerminated
	}
	return t
}

// Reset rewinds the tracker to BeforeFirst without reconstructing it,
// useful for compaction retries that replay the same sorted key stream
// after a transient write failure.
func (t *ShardTracker) Reset() {
	t.index = 0
	if len(t.plan.Shards) == 0 {
		t.state = stateTerminated
	} else {
		t.state = stateBeforeFirst
	}
}

// AdvanceTo reports whether advancing to token tok crossed into a new
// shard. tok must be >= the last token passed to AdvanceTo (a caller
// contract; violating it is undefined behavior, not something the
// tracker detects). A call whose tok equals the current shard's end
// returns false: the end boundary is exclusive on entry, inclusive on
// exit, so callers step past it with NextValid(end). A tok past the
// current end advances as many shards as needed, returning true if at
// least one step occurred.
func (t *ShardTracker) AdvanceTo(tok Token) bool {
	moved := false
	if t.state == stateTerminated {
		return false
	}
	if t.state == stateBeforeFirst {
		t.state = stateInShard
		t.index = 0
		moved = true // entering shard 0 from no-shard is itself a crossing
	}

	for {
		end := t.plan.Shards[t.index].End
		if end == nil {
			// terminal shard: nothing past it to cross into
			return moved
		}
		if raw(tok) <= raw(*end) {
			return moved
		}
		// tok is strictly past this shard's end: step forward
		t.index++
		moved = true
		if t.index >= len(t.plan.Shards) {
			t.state = stateTerminated
			return moved
		}
	}
}

// ShardStart returns the current shard's start token. Valid only while
// InShard (i.e. not before the first AdvanceTo call and not terminated).
func (t *ShardTracker) ShardStart() Token {
	return t.plan.Shards[t.index].Start
}

// ShardEnd returns the current shard's end token, or (_, false) for the
// terminal shard.
func (t *ShardTracker) ShardEnd() (Token, bool) {
	end := t.plan.Shards[t.index].End
	if end == nil {
		return 0, false
	}
	return *end, true
}

// ShardIndex returns the current shard's position in the plan.
func (t *ShardTracker) ShardIndex() int {
	return t.index
}

// Terminated reports whether the tracker has advanced past the plan's
// last shard.
func (t *ShardTracker) Terminated() bool {
	return t.state == stateTerminated
}

// String renders a short diagnostic summary of the tracker's position.
func (t *ShardTracker) String() string {
	total := len(t.plan.Shards)
	progress := float64(t.index) / float64(max(total, 1))
	return fmt.Sprintf("tracker %s: shard %d/%d (%s through plan %s)",
		t.id, t.index, total, formatFraction(progress), t.plan.ID)
}
