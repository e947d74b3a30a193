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

// Package ring plans compaction shard boundaries for a node's owned slice
// of a token-ring key space, given the weighted ranges it owns and the
// disk boundaries that already stripe that ownership across storage
// devices.
//
//  1. Boundaries(): splits each disk slice into S equal-weighted shards
//     and hands back a ShardTracker that a compaction writer advances
//     token-by-token to learn when it has crossed into the next shard.
//  2. RangeSpanned(): given a data file's first/last token and optional
//     self-reported coverage, returns the fraction of owned token space
//     the file occupies.
//
// Construction (Create, CreateNoDisks) derives the disk slices; each Plan
// is built on the first Boundaries call for its shard count and memoized.
// Plans are immutable, and a Facade guards its plan memo with a mutex, so
// both may be shared across goroutines. A ShardTracker is not: it is
// single-owner and lives for the duration of one compaction write.
package ring
