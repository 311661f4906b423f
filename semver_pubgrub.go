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

// PrereleasePolicy is the default pre-release membership for triples without
// an explicit override.
type PrereleasePolicy int

const (
	// ExcludeAllPrereleases means pre-releases are out unless an override
	// lets them in. Sets built from requirements start here: a requirement
	// only admits pre-releases at triples it names.
	ExcludeAllPrereleases PrereleasePolicy = iota
	// IncludeAllPrereleases means pre-releases are in unless an override
	// shuts them out. Complementing a set flips the policy.
	IncludeAllPrereleases
)

// String returns "exclude-pre" or "include-pre".
func (p PrereleasePolicy) String() string {
	if p == IncludeAllPrereleases {
		return "include-pre"
	}
	return "exclude-pre"
}

// prereleaseOverride pins the pre-release membership of one triple,
// overriding the set's default policy there.
type prereleaseOverride struct {
	triple ReleaseTriple
	tags   PrereleaseSubRange
}

// SemverPubgrub is a set of versions closed under complement, intersection
// and union. Releases and pre-releases are tracked independently: a release
// belongs iff its triple is in the release range, and a pre-release belongs
// iff its tag is in the sub-range its triple maps to, which is an explicit
// override or else the default policy. The release range is never consulted
// for a pre-release.
//
// The representation is canonical: the release range is normalized, overrides
// are sorted by triple, and no override equals the default. Two construction
// paths reaching the same set of versions produce structurally equal values.
//
// The zero value is the empty set.
type SemverPubgrub struct {
	releases  NormalizedRange
	policy    PrereleasePolicy
	overrides []prereleaseOverride
}

// Empty returns the set containing no versions.
func Empty() SemverPubgrub {
	return SemverPubgrub{}
}

// Full returns the set containing every version, pre-releases included.
func Full() SemverPubgrub {
	return SemverPubgrub{releases: FullRange(), policy: IncludeAllPrereleases}
}

// Singleton returns the set containing exactly one version. Build metadata is
// ignored, so the singleton of "1.2.3+linux" also holds "1.2.3+mac".
func Singleton(v Version) SemverPubgrub {
	if v.IsPrerelease() {
		return newSemverPubgrub(EmptyRange(), ExcludeAllPrereleases, []prereleaseOverride{
			{triple: v.Triple(), tags: ExactTag(v.Pre)},
		})
	}
	return SemverPubgrub{releases: singleTriple(v.Triple())}
}

// newSemverPubgrub assembles a canonical set: overrides sorted by triple,
// duplicates merged by union, entries equal to the default dropped.
func newSemverPubgrub(releases NormalizedRange, policy PrereleasePolicy, overrides []prereleaseOverride) SemverPubgrub {
	slices.SortFunc(overrides, func(a, b prereleaseOverride) int {
		return a.triple.Compare(b.triple)
	})

	def := defaultTags(policy)
	kept := overrides[:0]
	for _, o := range overrides {
		if n := len(kept); n > 0 && kept[n-1].triple == o.triple {
			kept[n-1].tags = kept[n-1].tags.Union(o.tags)
			continue
		}
		kept = append(kept, o)
	}
	pruned := make([]prereleaseOverride, 0, len(kept))
	for _, o := range kept {
		if !o.tags.Equal(def) {
			pruned = append(pruned, o)
		}
	}
	if len(pruned) == 0 {
		pruned = nil
	}

	return SemverPubgrub{releases: releases, policy: policy, overrides: pruned}
}

// defaultTags returns the sub-range a policy assigns to unlisted triples.
func defaultTags(policy PrereleasePolicy) PrereleaseSubRange {
	if policy == IncludeAllPrereleases {
		return FullTags()
	}
	return EmptyTags()
}

// tagsAt returns the effective pre-release sub-range at a triple.
func (s SemverPubgrub) tagsAt(t ReleaseTriple) PrereleaseSubRange {
	if i, ok := slices.BinarySearchFunc(s.overrides, t, func(o prereleaseOverride, t ReleaseTriple) int {
		return o.triple.Compare(t)
	}); ok {
		return s.overrides[i].tags
	}
	return defaultTags(s.policy)
}

// Contains reports whether the version is in the set. Build metadata plays no
// part in membership.
func (s SemverPubgrub) Contains(v Version) bool {
	if v.IsPrerelease() {
		return s.tagsAt(v.Triple()).Contains(v.Pre)
	}
	return s.releases.Contains(v.Triple())
}

// Complement returns the set of versions NOT in this set.
func (s SemverPubgrub) Complement() SemverPubgrub {
	policy := IncludeAllPrereleases
	if s.policy == IncludeAllPrereleases {
		policy = ExcludeAllPrereleases
	}
	overrides := make([]prereleaseOverride, 0, len(s.overrides))
	for _, o := range s.overrides {
		overrides = append(overrides, prereleaseOverride{
			triple: o.triple,
			tags:   o.tags.Complement(),
		})
	}
	return newSemverPubgrub(s.releases.Complement(), policy, overrides)
}

// Intersection returns the set of versions in both sets. Releases intersect
// as ranges; pre-releases intersect triple by triple, consulting each side's
// override or default.
func (s SemverPubgrub) Intersection(other SemverPubgrub) SemverPubgrub {
	policy := ExcludeAllPrereleases
	if s.policy == IncludeAllPrereleases && other.policy == IncludeAllPrereleases {
		policy = IncludeAllPrereleases
	}

	// Only triples listed on either side can differ from the combined
	// default; walk the merged key lists.
	overrides := make([]prereleaseOverride, 0, len(s.overrides)+len(other.overrides))
	i, j := 0, 0
	for i < len(s.overrides) || j < len(other.overrides) {
		var t ReleaseTriple
		switch {
		case j >= len(other.overrides):
			t = s.overrides[i].triple
		case i >= len(s.overrides):
			t = other.overrides[j].triple
		case s.overrides[i].triple.Compare(other.overrides[j].triple) <= 0:
			t = s.overrides[i].triple
		default:
			t = other.overrides[j].triple
		}
		for i < len(s.overrides) && s.overrides[i].triple == t {
			i++
		}
		for j < len(other.overrides) && other.overrides[j].triple == t {
			j++
		}
		overrides = append(overrides, prereleaseOverride{
			triple: t,
			tags:   s.tagsAt(t).Intersect(other.tagsAt(t)),
		})
	}

	return newSemverPubgrub(s.releases.Intersect(other.releases), policy, overrides)
}

// Union returns the set of versions in either set, by De Morgan over
// Complement and Intersection.
func (s SemverPubgrub) Union(other SemverPubgrub) SemverPubgrub {
	return s.Complement().Intersection(other.Complement()).Complement()
}

// IsEmpty reports whether the set has no versions. Canonical form makes this
// a shape check: any retained override differs from an empty default and so
// witnesses a member.
func (s SemverPubgrub) IsEmpty() bool {
	return s.releases.IsEmpty() &&
		s.policy == ExcludeAllPrereleases &&
		len(s.overrides) == 0
}

// IsFull reports whether the set holds every version.
func (s SemverPubgrub) IsFull() bool {
	return s.releases.IsFull() &&
		s.policy == IncludeAllPrereleases &&
		len(s.overrides) == 0
}

// IsSubset reports whether every version in this set is in the other.
func (s SemverPubgrub) IsSubset(other SemverPubgrub) bool {
	return s.Intersection(other.Complement()).IsEmpty()
}

// IsDisjoint reports whether the two sets share no version.
func (s SemverPubgrub) IsDisjoint(other SemverPubgrub) bool {
	return s.Intersection(other).IsEmpty()
}

// Equal reports structural equality, which canonical form makes coincide
// with semantic equality.
func (s SemverPubgrub) Equal(other SemverPubgrub) bool {
	return s.releases.Equal(other.releases) &&
		s.policy == other.policy &&
		slices.EqualFunc(s.overrides, other.overrides, func(a, b prereleaseOverride) bool {
			return a.triple == b.triple && a.tags.Equal(b.tags)
		})
}

// ReleaseRange returns the set's release membership as a range over triples.
func (s SemverPubgrub) ReleaseRange() NormalizedRange {
	return s.releases
}

// String renders the release range, then the pre-release default when it is
// include, then each override.
func (s SemverPubgrub) String() string {
	if s.IsEmpty() {
		return "∅"
	}
	if s.IsFull() {
		return "*"
	}

	var b strings.Builder
	b.WriteString(s.releases.String())
	if s.policy == IncludeAllPrereleases {
		b.WriteString(" (+pre)")
	}
	for _, o := range s.overrides {
		fmt.Fprintf(&b, " (pre %s: %s)", o.triple, o.tags)
	}
	return b.String()
}
