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

import "slices"

// interval represents a contiguous run of values between lower and upper
// bounds. Intervals are half-open or closed depending on the inclusivity of
// their bounds.
//
// Examples over release triples:
//   - [1.0.0, 2.0.0) represents >=1.0.0, <2.0.0
//   - (1.0.0, 2.0.0] represents >1.0.0, <=2.0.0
//   - [1.0.0, ∞) represents >=1.0.0
//
// Intervals form the building blocks of intervalSet.
type interval[T element[T]] struct {
	lower bound[T]
	upper bound[T]
}

// newInterval creates an interval from bounds, returning false if the
// interval is empty.
func newInterval[T element[T]](lower, upper bound[T]) (interval[T], bool) {
	iv := interval[T]{lower: lower, upper: upper}
	if iv.isEmpty() {
		return interval[T]{}, false
	}
	return iv, true
}

// isEmpty returns true if the interval contains no values.
// This happens when the upper bound is less than the lower bound,
// or when both bounds are the same value but at least one is exclusive.
func (iv interval[T]) isEmpty() bool {
	if iv.lower.isPosInfinity() || iv.upper.isNegInfinity() {
		return true
	}

	if iv.lower.isNegInfinity() || iv.upper.isPosInfinity() {
		return false
	}

	cmp := iv.lower.value.Compare(iv.upper.value)
	switch {
	case cmp < 0:
		return false
	case cmp > 0:
		return true
	default:
		return !iv.lower.inclusive || !iv.upper.inclusive
	}
}

// contains returns true if the given value falls within this interval.
func (iv interval[T]) contains(v T) bool {
	if !iv.lower.isNegInfinity() {
		if cmp := v.Compare(iv.lower.value); cmp < 0 {
			return false
		} else if cmp == 0 && !iv.lower.inclusive {
			return false
		}
	}

	if !iv.upper.isPosInfinity() {
		if cmp := v.Compare(iv.upper.value); cmp > 0 {
			return false
		} else if cmp == 0 && !iv.upper.inclusive {
			return false
		}
	}

	return true
}

// position locates a value relative to this interval for binary search:
// negative if the interval lies entirely below the value, zero if the
// interval contains it, positive if the interval lies entirely above.
func (iv interval[T]) position(v T) int {
	if !iv.upper.isPosInfinity() {
		if cmp := v.Compare(iv.upper.value); cmp > 0 || (cmp == 0 && !iv.upper.inclusive) {
			return -1
		}
	}
	if !iv.lower.isNegInfinity() {
		if cmp := v.Compare(iv.lower.value); cmp < 0 || (cmp == 0 && !iv.lower.inclusive) {
			return 1
		}
	}
	return 0
}

// upperLessThanLower returns true if upper bound is strictly less than lower
// bound. Used to detect gaps between intervals.
func upperLessThanLower[T element[T]](upper, lower bound[T]) bool {
	switch {
	case upper.isNegInfinity():
		return !lower.isNegInfinity()
	case lower.isPosInfinity():
		return !upper.isPosInfinity()
	case upper.isPosInfinity():
		return false
	case lower.isNegInfinity():
		return false
	}

	cmp := upper.value.Compare(lower.value)
	if cmp < 0 {
		return true
	}
	if cmp > 0 {
		return false
	}
	return !upper.inclusive || !lower.inclusive
}

// overlaps returns true if this interval has any values in common with other.
func (iv interval[T]) overlaps(other interval[T]) bool {
	if upperLessThanLower(iv.upper, other.lower) {
		return false
	}
	if upperLessThanLower(other.upper, iv.lower) {
		return false
	}
	return true
}

// gapBetween returns true if at least one value separates the upper bound
// from the lower bound. Unlike upperLessThanLower, meeting bounds of which
// one side is inclusive leave no gap: [1,2) followed by [2,3) merges.
func gapBetween[T element[T]](upper, lower bound[T]) bool {
	switch {
	case upper.isNegInfinity():
		return !lower.isNegInfinity()
	case lower.isPosInfinity():
		return !upper.isPosInfinity()
	case upper.isPosInfinity():
		return false
	case lower.isNegInfinity():
		return false
	}

	cmp := upper.value.Compare(lower.value)
	if cmp < 0 {
		return true
	}
	if cmp > 0 {
		return false
	}
	return !upper.inclusive && !lower.inclusive
}

// touches returns true if this interval overlaps or is adjacent to other.
// Adjacent intervals can be merged without creating a gap.
func (iv interval[T]) touches(other interval[T]) bool {
	return !gapBetween(iv.upper, other.lower) &&
		!gapBetween(other.upper, iv.lower)
}

// merge combines two intervals into a single interval spanning both.
func (iv interval[T]) merge(other interval[T]) interval[T] {
	return interval[T]{
		lower: minBound(iv.lower, other.lower, compareLower),
		upper: maxBound(iv.upper, other.upper, compareUpper),
	}
}

// minBound returns the minimum of two bounds using a comparison function.
func minBound[T element[T]](a, b bound[T], compare func(bound[T], bound[T]) int) bound[T] {
	if compare(a, b) <= 0 {
		return a
	}
	return b
}

// maxBound returns the maximum of two bounds using a comparison function.
func maxBound[T element[T]](a, b bound[T], compare func(bound[T], bound[T]) int) bound[T] {
	if compare(a, b) >= 0 {
		return a
	}
	return b
}

// covers returns true if this interval completely contains other.
func (iv interval[T]) covers(other interval[T]) bool {
	if compareLower(iv.lower, other.lower) > 0 {
		return false
	}
	if compareUpper(iv.upper, other.upper) < 0 {
		return false
	}
	return true
}

// complementLowerBound returns the lower bound for the complement interval
// above this interval.
func (iv interval[T]) complementLowerBound() bound[T] {
	switch iv.upper.infinite {
	case boundPositiveInfinity:
		return positiveInfinity[T]()
	case boundNegativeInfinity:
		return negativeInfinity[T]()
	default:
		return bound[T]{
			value:     iv.upper.value,
			inclusive: !iv.upper.inclusive,
			infinite:  boundFinite,
		}
	}
}

// complementUpperBound returns the upper bound for the complement interval
// below this interval.
func (iv interval[T]) complementUpperBound() bound[T] {
	switch iv.lower.infinite {
	case boundNegativeInfinity:
		return negativeInfinity[T]()
	case boundPositiveInfinity:
		return positiveInfinity[T]()
	default:
		return bound[T]{
			value:     iv.lower.value,
			inclusive: !iv.lower.inclusive,
			infinite:  boundFinite,
		}
	}
}

// equal reports whether two intervals have identical bounds.
func (iv interval[T]) equal(other interval[T]) bool {
	return iv.lower.equal(other.lower) && iv.upper.equal(other.upper)
}

// normalizeIntervals canonicalizes a slice of intervals by:
//  1. Removing empty intervals
//  2. Sorting by lower bound
//  3. Merging overlapping or adjacent intervals
//
// This ensures intervals are disjoint and sorted, enabling efficient set
// operations and structural equality of semantically equal sets.
func normalizeIntervals[T element[T]](intervals []interval[T]) []interval[T] {
	filtered := intervals[:0]
	for _, iv := range intervals {
		if !iv.isEmpty() {
			filtered = append(filtered, iv)
		}
	}

	if len(filtered) == 0 {
		return nil
	}

	// Sort by lower bound.
	slices.SortFunc(filtered, func(a, b interval[T]) int {
		return compareLower(a.lower, b.lower)
	})

	merged := filtered[:1]
	for i := 1; i < len(filtered); i++ {
		last := &merged[len(merged)-1]
		current := filtered[i]
		if last.touches(current) {
			*last = last.merge(current)
		} else {
			merged = append(merged, current)
		}
	}

	out := make([]interval[T], len(merged))
	copy(out, merged)
	return out
}
