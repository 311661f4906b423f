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

// Requirement-to-set translation. The contract is exact agreement with the
// matching predicates in eval.go:
//
//	FromRequirement(r).Contains(v) == r.Matches(v)
//
// for every requirement and version. Releases are easy: each comparator
// denotes a triple range and the conjunction intersects them. Pre-releases
// need the two-stage rule. A pre-release can only belong at a triple some
// comparator names with a tag, so those triples become overrides; the tags
// admitted there are the ones every comparator accepts, which is why the
// window intersects preTagsAt over the whole conjunction rather than using
// the gating comparator alone.

// FromRequirement translates a requirement into the set of versions it
// matches.
func FromRequirement(r Requirement) SemverPubgrub {
	releases := FullRange()
	for _, c := range r.Comparators {
		releases = releases.Intersect(releaseRange(c))
	}

	var overrides []prereleaseOverride
	for _, c := range r.Comparators {
		if c.Pre.IsEmpty() {
			continue
		}
		t := c.triple()
		window := FullTags()
		for _, d := range r.Comparators {
			window = window.Intersect(preTagsAt(d, t))
		}
		overrides = append(overrides, prereleaseOverride{triple: t, tags: window})
	}

	return newSemverPubgrub(releases, ExcludeAllPrereleases, overrides)
}

// TranslateComparator translates a single comparator, treated as a
// one-comparator requirement.
func TranslateComparator(c Comparator) SemverPubgrub {
	return FromRequirement(Requirement{Comparators: []Comparator{c}})
}

// releaseRange returns the triples whose release version matches the
// comparator, before the pre-release visibility rule. The empty tag orders
// above every real tag, which is why a ">" comparator with a tag keeps its
// own triple and a "<=" comparator with a tag loses it.
func releaseRange(c Comparator) NormalizedRange {
	switch c.Op {
	case OpExact, OpWildcard:
		if !c.Pre.IsEmpty() {
			return EmptyRange()
		}
		switch {
		case c.Minor == nil:
			return majorSeries(c.Major)
		case c.Patch == nil:
			return minorSeries(c.Major, *c.Minor)
		default:
			return singleTriple(c.triple())
		}

	case OpGreater:
		switch {
		case c.Minor == nil:
			return afterSeries(bumpMajor(ReleaseTriple{Major: c.Major}))
		case c.Patch == nil:
			return afterSeries(bumpMinor(ReleaseTriple{Major: c.Major, Minor: *c.Minor}))
		case !c.Pre.IsEmpty():
			return fromTriple(c.triple())
		default:
			return afterSeries(bumpPatch(c.triple()))
		}

	case OpGreaterEq:
		switch {
		case c.Minor == nil:
			return fromTriple(ReleaseTriple{Major: c.Major})
		case c.Patch == nil:
			return fromTriple(ReleaseTriple{Major: c.Major, Minor: *c.Minor})
		default:
			return fromTriple(c.triple())
		}

	case OpLess:
		switch {
		case c.Minor == nil:
			return belowTriple(ReleaseTriple{Major: c.Major})
		case c.Patch == nil:
			return belowTriple(ReleaseTriple{Major: c.Major, Minor: *c.Minor})
		default:
			return belowTriple(c.triple())
		}

	case OpLessEq:
		switch {
		case c.Minor == nil:
			return triplesBetween(negativeInfinity[ReleaseTriple](), bumpMajor(ReleaseTriple{Major: c.Major}))
		case c.Patch == nil:
			return triplesBetween(negativeInfinity[ReleaseTriple](), bumpMinor(ReleaseTriple{Major: c.Major, Minor: *c.Minor}))
		case !c.Pre.IsEmpty():
			return belowTriple(c.triple())
		default:
			return triplesBetween(negativeInfinity[ReleaseTriple](), upperBound(c.triple(), true))
		}

	case OpTilde:
		switch {
		case c.Minor == nil:
			return majorSeries(c.Major)
		case c.Patch == nil:
			return minorSeries(c.Major, *c.Minor)
		default:
			t := c.triple()
			return triplesBetween(lowerBound(t, true), bumpMinor(t))
		}

	case OpCaret:
		if c.Minor == nil {
			return majorSeries(c.Major)
		}
		t := ReleaseTriple{Major: c.Major, Minor: *c.Minor, Patch: c.patchOr(0)}
		if c.Patch == nil {
			if c.Major > 0 {
				return triplesBetween(lowerBound(t, true), bumpMajor(t))
			}
			return minorSeries(c.Major, *c.Minor)
		}
		switch {
		case c.Major > 0:
			return triplesBetween(lowerBound(t, true), bumpMajor(t))
		case *c.Minor > 0:
			return triplesBetween(lowerBound(t, true), bumpMinor(t))
		default:
			return singleTriple(t)
		}

	default:
		panic("unknown comparator operator")
	}
}

// preTagsAt returns the tags g for which the pre-release (t, g) matches the
// comparator, again before the visibility rule. This is the pointwise
// counterpart of releaseRange: at triples strictly inside an ordering
// comparator every tag passes, at the comparator's own triple its tag decides,
// and pinning operators with a partial version or no tag admit nothing.
func preTagsAt(c Comparator, t ReleaseTriple) PrereleaseSubRange {
	switch c.Op {
	case OpExact, OpWildcard:
		if !c.Pre.IsEmpty() && t == c.triple() {
			return ExactTag(c.Pre)
		}
		return EmptyTags()

	case OpGreater, OpGreaterEq:
		switch {
		case c.Minor == nil:
			if t.Major > c.Major {
				return FullTags()
			}
			return EmptyTags()
		case c.Patch == nil:
			if t.Major > c.Major || (t.Major == c.Major && t.Minor > *c.Minor) {
				return FullTags()
			}
			return EmptyTags()
		default:
			switch cmp := t.Compare(c.triple()); {
			case cmp > 0:
				return FullTags()
			case cmp == 0 && !c.Pre.IsEmpty():
				if c.Op == OpGreater {
					return TagsAbove(c.Pre)
				}
				return TagsAtLeast(c.Pre)
			default:
				return EmptyTags()
			}
		}

	case OpLess, OpLessEq:
		switch {
		case c.Minor == nil:
			if t.Major < c.Major {
				return FullTags()
			}
			return EmptyTags()
		case c.Patch == nil:
			if t.Major < c.Major || (t.Major == c.Major && t.Minor < *c.Minor) {
				return FullTags()
			}
			return EmptyTags()
		default:
			switch cmp := t.Compare(c.triple()); {
			case cmp < 0:
				return FullTags()
			case cmp == 0:
				if c.Pre.IsEmpty() {
					// Every tag sorts before the release itself.
					return FullTags()
				}
				if c.Op == OpLess {
					return TagsBelow(c.Pre)
				}
				return TagsAtMost(c.Pre)
			default:
				return EmptyTags()
			}
		}

	case OpTilde:
		if c.Minor == nil || c.Patch == nil {
			return EmptyTags()
		}
		if t.Major != c.Major || t.Minor != *c.Minor {
			return EmptyTags()
		}
		switch {
		case t.Patch > *c.Patch:
			return FullTags()
		case t.Patch == *c.Patch && !c.Pre.IsEmpty():
			return TagsAtLeast(c.Pre)
		default:
			return EmptyTags()
		}

	case OpCaret:
		if c.Minor == nil {
			// A bare-major caret accepts every version of the major,
			// pre-releases included.
			if t.Major == c.Major {
				return FullTags()
			}
			return EmptyTags()
		}
		minor := *c.Minor
		if c.Patch == nil {
			if c.Major > 0 {
				if t.Major == c.Major && t.Minor >= minor {
					return FullTags()
				}
			} else if t.Major == 0 && t.Minor == minor {
				return FullTags()
			}
			return EmptyTags()
		}
		patch := *c.Patch
		if t.Major != c.Major {
			return EmptyTags()
		}
		atPin := EmptyTags()
		if !c.Pre.IsEmpty() {
			atPin = TagsAtLeast(c.Pre)
		}
		switch {
		case c.Major > 0:
			if t.Minor > minor || (t.Minor == minor && t.Patch > patch) {
				return FullTags()
			}
			if t.Minor == minor && t.Patch == patch {
				return atPin
			}
			return EmptyTags()
		case minor > 0:
			if t.Minor != minor {
				return EmptyTags()
			}
			if t.Patch > patch {
				return FullTags()
			}
			if t.Patch == patch {
				return atPin
			}
			return EmptyTags()
		default:
			if t.Minor == 0 && t.Patch == patch {
				return atPin
			}
			return EmptyTags()
		}

	default:
		panic("unknown comparator operator")
	}
}

// majorSeries returns every triple in one major series.
func majorSeries(major uint64) NormalizedRange {
	t := ReleaseTriple{Major: major}
	return triplesBetween(lowerBound(t, true), bumpMajor(t))
}

// minorSeries returns every triple in one minor series.
func minorSeries(major, minor uint64) NormalizedRange {
	t := ReleaseTriple{Major: major, Minor: minor}
	return triplesBetween(lowerBound(t, true), bumpMinor(t))
}

// fromTriple returns [t, ∞).
func fromTriple(t ReleaseTriple) NormalizedRange {
	return triplesBetween(lowerBound(t, true), positiveInfinity[ReleaseTriple]())
}

// belowTriple returns (-∞, t).
func belowTriple(t ReleaseTriple) NormalizedRange {
	return triplesBetween(negativeInfinity[ReleaseTriple](), upperBound(t, false))
}

// afterSeries turns a series' exclusive end into the range of everything
// past it. An infinite end means the series runs to the top: nothing is
// after it.
func afterSeries(end bound[ReleaseTriple]) NormalizedRange {
	if !end.isFinite() {
		return EmptyRange()
	}
	return triplesBetween(lowerBound(end.value, true), positiveInfinity[ReleaseTriple]())
}
