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

import "fmt"

// PrereleaseSubRange is a canonical set of pre-release tags, scoped to one
// release triple. Its domain is the non-empty tags only: the empty tag means
// "release" and never appears here. The full sub-range is every pre-release
// of the triple, not the release itself.
type PrereleaseSubRange struct {
	set intervalSet[Prerelease]
}

// EmptyTags returns the sub-range holding no tags.
func EmptyTags() PrereleaseSubRange {
	return PrereleaseSubRange{set: emptySet[Prerelease]()}
}

// FullTags returns the sub-range holding every tag.
func FullTags() PrereleaseSubRange {
	return PrereleaseSubRange{set: fullSet[Prerelease]()}
}

// ExactTag returns the sub-range holding exactly one tag.
func ExactTag(p Prerelease) PrereleaseSubRange {
	assertTag(p)
	return tagsBetween(lowerBound(p, true), upperBound(p, true))
}

// TagsAtLeast returns the tags ordered at or above p.
func TagsAtLeast(p Prerelease) PrereleaseSubRange {
	assertTag(p)
	return tagsBetween(lowerBound(p, true), positiveInfinity[Prerelease]())
}

// TagsAbove returns the tags strictly above p.
func TagsAbove(p Prerelease) PrereleaseSubRange {
	assertTag(p)
	return tagsBetween(lowerBound(p, false), positiveInfinity[Prerelease]())
}

// TagsBelow returns the tags strictly below p.
func TagsBelow(p Prerelease) PrereleaseSubRange {
	assertTag(p)
	return tagsBetween(negativeInfinity[Prerelease](), upperBound(p, false))
}

// TagsAtMost returns the tags ordered at or below p.
func TagsAtMost(p Prerelease) PrereleaseSubRange {
	assertTag(p)
	return tagsBetween(negativeInfinity[Prerelease](), upperBound(p, true))
}

// tagsBetween builds a sub-range from raw bounds in canonical form.
func tagsBetween(lower, upper bound[Prerelease]) PrereleaseSubRange {
	return PrereleaseSubRange{set: canonicalTags(setBetween(lower, upper))}
}

// canonicalTags rewrites a tag set into half-open normal form: every finite
// lower bound inclusive, every finite upper bound exclusive, the least tag
// "0" folded into -∞. Tags have successors too, p.0 ordering directly after
// p, so (p, q) and [p.0, q) denote the same set and one form must win for
// structural equality to track semantic equality. Set operations preserve the
// normal form, so only construction passes through here.
func canonicalTags(s intervalSet[Prerelease]) intervalSet[Prerelease] {
	out := make([]interval[Prerelease], 0, len(s.intervals))
	for _, iv := range s.intervals {
		lo, hi := iv.lower, iv.upper
		if lo.isFinite() && !lo.inclusive {
			lo = lowerBound(nextTag(lo.value), true)
		}
		if lo.isFinite() && lo.value == leastTag {
			lo = negativeInfinity[Prerelease]()
		}
		if hi.isFinite() && hi.inclusive {
			hi = upperBound(nextTag(hi.value), false)
		}
		if hi.isFinite() && hi.value == leastTag {
			continue
		}
		out = append(out, interval[Prerelease]{lower: lo, upper: hi})
	}
	return newIntervalSet(out)
}

// assertTag guards the sub-range domain: the empty tag is a release marker
// and must never enter a tag set.
func assertTag(p Prerelease) {
	if p.IsEmpty() {
		panic("empty pre-release tag in sub-range operation")
	}
}

// Complement returns the tags NOT in this sub-range.
func (r PrereleaseSubRange) Complement() PrereleaseSubRange {
	return PrereleaseSubRange{set: r.set.complement()}
}

// Intersect returns the tags in both sub-ranges.
func (r PrereleaseSubRange) Intersect(other PrereleaseSubRange) PrereleaseSubRange {
	return PrereleaseSubRange{set: r.set.intersection(other.set)}
}

// Union returns the tags in either sub-range.
func (r PrereleaseSubRange) Union(other PrereleaseSubRange) PrereleaseSubRange {
	return PrereleaseSubRange{set: r.set.union(other.set)}
}

// Contains tests whether the tag is in the sub-range.
func (r PrereleaseSubRange) Contains(p Prerelease) bool {
	assertTag(p)
	return r.set.contains(p)
}

// IsEmpty returns true if the sub-range holds no tags.
func (r PrereleaseSubRange) IsEmpty() bool {
	return r.set.isEmpty()
}

// IsFull returns true if the sub-range holds every tag.
func (r PrereleaseSubRange) IsFull() bool {
	return r.set.isFull()
}

// IsSubset reports whether every tag in this sub-range is in the other.
func (r PrereleaseSubRange) IsSubset(other PrereleaseSubRange) bool {
	return r.set.isSubset(other.set)
}

// IsDisjoint reports whether the two sub-ranges share no tag.
func (r PrereleaseSubRange) IsDisjoint(other PrereleaseSubRange) bool {
	return r.set.isDisjoint(other.set)
}

// Equal reports structural equality of canonical sub-ranges.
func (r PrereleaseSubRange) Equal(other PrereleaseSubRange) bool {
	return r.set.equal(other.set)
}

// String renders the sub-range, "∅" when empty and "*" when full.
func (r PrereleaseSubRange) String() string {
	return r.set.String()
}

var _ fmt.Stringer = PrereleaseSubRange{}
