// Copyright 2025 Contriboss
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package semverpubgrub

import (
	"fmt"
	"slices"
	"strings"
)

// intervalSet is a canonical set of values represented as sorted, disjoint,
// maximal intervals. It is the shared core behind NormalizedRange (over
// release triples) and PrereleaseSubRange (over pre-release tags).
//
// Intervals are stored in normalized form: sorted, non-empty,
// non-overlapping, and with no adjacent intervals that could be merged. Every
// operation returns a new normalized set; values are never mutated.
type intervalSet[T element[T]] struct {
	intervals []interval[T]
}

// newIntervalSet creates a set from intervals, normalizing them.
func newIntervalSet[T element[T]](intervals []interval[T]) intervalSet[T] {
	return intervalSet[T]{intervals: normalizeIntervals(intervals)}
}

// setBetween creates a set from a single pair of bounds.
func setBetween[T element[T]](lower, upper bound[T]) intervalSet[T] {
	if iv, ok := newInterval(lower, upper); ok {
		return intervalSet[T]{intervals: []interval[T]{iv}}
	}
	return intervalSet[T]{}
}

// emptySet returns a set containing no values.
func emptySet[T element[T]]() intervalSet[T] {
	return intervalSet[T]{}
}

// fullSet returns a set containing all values.
func fullSet[T element[T]]() intervalSet[T] {
	return intervalSet[T]{
		intervals: []interval[T]{
			{
				lower: negativeInfinity[T](),
				upper: positiveInfinity[T](),
			},
		},
	}
}

// cloneIntervals creates a copy of the intervals slice for safe mutation.
func (s intervalSet[T]) cloneIntervals() []interval[T] {
	if len(s.intervals) == 0 {
		return nil
	}
	cloned := make([]interval[T], len(s.intervals))
	copy(cloned, s.intervals)
	return cloned
}

// union returns the set of values in either this set or the other.
func (s intervalSet[T]) union(other intervalSet[T]) intervalSet[T] {
	intervals := s.cloneIntervals()
	intervals = append(intervals, other.intervals...)
	return newIntervalSet(intervals)
}

// intersection returns the set of values in both this set and the other,
// using a two-pointer sweep that keeps the tighter bound at each overlap.
func (s intervalSet[T]) intersection(other intervalSet[T]) intervalSet[T] {
	if len(s.intervals) == 0 || len(other.intervals) == 0 {
		return intervalSet[T]{}
	}

	result := make([]interval[T], 0, len(s.intervals))
	i, j := 0, 0
	for i < len(s.intervals) && j < len(other.intervals) {
		if iv, ok := newInterval(
			maxBound(s.intervals[i].lower, other.intervals[j].lower, compareLower),
			minBound(s.intervals[i].upper, other.intervals[j].upper, compareUpper),
		); ok {
			result = append(result, iv)
		}

		if compareUpper(s.intervals[i].upper, other.intervals[j].upper) < 0 {
			i++
		} else {
			j++
		}
	}

	return newIntervalSet(result)
}

// complement returns the set of values NOT in this set, negating every
// bound's inclusivity and flipping to/from the two open ends.
func (s intervalSet[T]) complement() intervalSet[T] {
	if len(s.intervals) == 0 {
		return fullSet[T]()
	}

	gaps := make([]interval[T], 0, len(s.intervals)+1)
	currentLower := negativeInfinity[T]()

	for _, iv := range s.intervals {
		gapUpper := iv.complementUpperBound()
		if gap, ok := newInterval(currentLower, gapUpper); ok {
			gaps = append(gaps, gap)
		}
		currentLower = iv.complementLowerBound()
	}

	if tail, ok := newInterval(currentLower, positiveInfinity[T]()); ok {
		gaps = append(gaps, tail)
	}

	return newIntervalSet(gaps)
}

// contains tests if a specific value is in the set using binary search over
// the sorted intervals.
func (s intervalSet[T]) contains(v T) bool {
	_, ok := slices.BinarySearchFunc(s.intervals, v, func(iv interval[T], v T) int {
		return iv.position(v)
	})
	return ok
}

// isEmpty returns true if the set contains no values.
func (s intervalSet[T]) isEmpty() bool {
	return len(s.intervals) == 0
}

// isFull returns true if the set contains every value.
func (s intervalSet[T]) isFull() bool {
	return len(s.intervals) == 1 &&
		s.intervals[0].lower.isNegInfinity() &&
		s.intervals[0].upper.isPosInfinity()
}

// isSubset returns true if all values in this set are also in the other set.
func (s intervalSet[T]) isSubset(other intervalSet[T]) bool {
	if len(s.intervals) == 0 {
		return true
	}
	if len(other.intervals) == 0 {
		return false
	}

	i, j := 0, 0
	for i < len(s.intervals) {
		if j >= len(other.intervals) {
			return false
		}

		if other.intervals[j].covers(s.intervals[i]) {
			i++
			continue
		}

		if upperLessThanLower(other.intervals[j].upper, s.intervals[i].lower) {
			j++
			continue
		}

		return false
	}

	return true
}

// isDisjoint returns true if this set and the other have no values in common.
func (s intervalSet[T]) isDisjoint(other intervalSet[T]) bool {
	if len(s.intervals) == 0 || len(other.intervals) == 0 {
		return true
	}

	i, j := 0, 0
	for i < len(s.intervals) && j < len(other.intervals) {
		if s.intervals[i].overlaps(other.intervals[j]) {
			return false
		}

		if compareUpper(s.intervals[i].upper, other.intervals[j].upper) < 0 {
			i++
		} else {
			j++
		}
	}

	return true
}

// equal reports whether two normalized sets are structurally identical.
// Because both operands are canonical, structural equality is semantic
// equality.
func (s intervalSet[T]) equal(other intervalSet[T]) bool {
	return slices.EqualFunc(s.intervals, other.intervals, func(a, b interval[T]) bool {
		return a.equal(b)
	})
}

// String returns a human-readable representation of the set.
// Empty sets display as "∅", full sets as "*", and intervals use standard
// comparison operators.
func (s intervalSet[T]) String() string {
	if len(s.intervals) == 0 {
		return "∅"
	}

	parts := make([]string, len(s.intervals))
	for i, iv := range s.intervals {
		parts[i] = intervalString(iv)
	}
	return strings.Join(parts, " || ")
}

// intervalString converts a single interval to its string representation.
func intervalString[T element[T]](iv interval[T]) string {
	if iv.lower.isNegInfinity() && iv.upper.isPosInfinity() {
		return "*"
	}

	if iv.lower.isFinite() && iv.upper.isFinite() &&
		iv.lower.value.Compare(iv.upper.value) == 0 &&
		iv.lower.inclusive && iv.upper.inclusive {
		return fmt.Sprintf("==%s", iv.lower.value)
	}

	var parts []string

	if iv.lower.isFinite() {
		if iv.lower.inclusive {
			parts = append(parts, fmt.Sprintf(">=%s", iv.lower.value))
		} else {
			parts = append(parts, fmt.Sprintf(">%s", iv.lower.value))
		}
	}

	if iv.upper.isFinite() {
		if iv.upper.inclusive {
			parts = append(parts, fmt.Sprintf("<=%s", iv.upper.value))
		} else {
			parts = append(parts, fmt.Sprintf("<%s", iv.upper.value))
		}
	}

	if len(parts) == 0 {
		return "*"
	}

	return strings.Join(parts, ", ")
}
