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

import "errors"

// ErrInvalidShardCount is returned when a caller requests fewer than one
// shard per disk slice.
var ErrInvalidShardCount = errors.New("ring: shard count must be >= 1")

// ErrInvalidDescriptor is returned when a DataFileDescriptor's First token
// sorts after its Last token in ring order.
var ErrInvalidDescriptor = errors.New("ring: data file descriptor has first after last")

// ErrNoSuchPlan is returned by InvalidatePlan when no plan is memoized
// for the given shard count.
var ErrNoSuchPlan = errors.New("ring: no memoized plan for that shard count")
