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

// NormalizedRange is a canonical set of release triples: sorted, disjoint,
// maximal intervals. It carries no pre-release information; that lives in
// SemverPubgrub's policy and overrides.
type NormalizedRange struct {
	set intervalSet[ReleaseTriple]
}

// EmptyRange returns the range containing no triples.
func EmptyRange() NormalizedRange {
	return NormalizedRange{set: emptySet[ReleaseTriple]()}
}

// FullRange returns the range containing every triple.
func FullRange() NormalizedRange {
	return NormalizedRange{set: fullSet[ReleaseTriple]()}
}

// RangeFromInterval builds a range from one interval. A nil endpoint means
// unbounded on that side, following the convention that an absent bound is
// an open end.
func RangeFromInterval(lower *ReleaseTriple, lowerInclusive bool, upper *ReleaseTriple, upperInclusive bool) NormalizedRange {
	lo := negativeInfinity[ReleaseTriple]()
	if lower != nil {
		lo = lowerBound(*lower, lowerInclusive)
	}
	hi := positiveInfinity[ReleaseTriple]()
	if upper != nil {
		hi = upperBound(*upper, upperInclusive)
	}
	return triplesBetween(lo, hi)
}

// singleTriple returns the range holding exactly one triple.
func singleTriple(t ReleaseTriple) NormalizedRange {
	return triplesBetween(lowerBound(t, true), upperBound(t, true))
}

// triplesBetween builds a range from raw bounds, used by the translator.
func triplesBetween(lower, upper bound[ReleaseTriple]) NormalizedRange {
	return NormalizedRange{set: canonicalTriples(setBetween(lower, upper))}
}

// canonicalTriples rewrites a triple set into half-open normal form: every
// finite lower bound inclusive, every finite upper bound exclusive, the least
// triple folded into -∞. Triples are discrete, so (t, u) and [next t, u)
// denote the same set; fixing one form makes structural equality track
// semantic equality across construction paths. Set operations preserve the
// normal form, so only construction passes through here.
func canonicalTriples(s intervalSet[ReleaseTriple]) intervalSet[ReleaseTriple] {
	zero := ReleaseTriple{}
	out := make([]interval[ReleaseTriple], 0, len(s.intervals))
	for _, iv := range s.intervals {
		lo, hi := iv.lower, iv.upper
		if lo.isFinite() && !lo.inclusive {
			next, ok := nextTriple(lo.value)
			if !ok {
				continue
			}
			lo = lowerBound(next, true)
		}
		if lo.isFinite() && lo.value == zero {
			lo = negativeInfinity[ReleaseTriple]()
		}
		if hi.isFinite() && hi.inclusive {
			if next, ok := nextTriple(hi.value); ok {
				hi = upperBound(next, false)
			} else {
				hi = positiveInfinity[ReleaseTriple]()
			}
		}
		if hi.isFinite() && hi.value == zero {
			continue
		}
		out = append(out, interval[ReleaseTriple]{lower: lo, upper: hi})
	}
	return newIntervalSet(out)
}

// Complement returns the triples NOT in this range.
func (r NormalizedRange) Complement() NormalizedRange {
	return NormalizedRange{set: r.set.complement()}
}

// Intersect returns the triples in both ranges.
func (r NormalizedRange) Intersect(other NormalizedRange) NormalizedRange {
	return NormalizedRange{set: r.set.intersection(other.set)}
}

// Union returns the triples in either range.
func (r NormalizedRange) Union(other NormalizedRange) NormalizedRange {
	return NormalizedRange{set: r.set.union(other.set)}
}

// Contains tests whether the triple is in the range.
func (r NormalizedRange) Contains(t ReleaseTriple) bool {
	return r.set.contains(t)
}

// IsEmpty returns true if the range holds no triples.
func (r NormalizedRange) IsEmpty() bool {
	return r.set.isEmpty()
}

// IsFull returns true if the range holds every triple.
func (r NormalizedRange) IsFull() bool {
	return r.set.isFull()
}

// IsSubset reports whether every triple in this range is in the other.
func (r NormalizedRange) IsSubset(other NormalizedRange) bool {
	return r.set.isSubset(other.set)
}

// IsDisjoint reports whether the two ranges share no triple.
func (r NormalizedRange) IsDisjoint(other NormalizedRange) bool {
	return r.set.isDisjoint(other.set)
}

// Equal reports structural equality; both operands are canonical, so this is
// semantic equality.
func (r NormalizedRange) Equal(other NormalizedRange) bool {
	return r.set.equal(other.set)
}

// String renders the range with comparison operators, "∅" when empty and
// "*" when full.
func (r NormalizedRange) String() string {
	return r.set.String()
}
