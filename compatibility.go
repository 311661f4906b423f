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
	"math"
)

// CompatKind names the left-most nonzero component of a compatibility
// bucket. The ordering follows the versions the buckets hold: every patch
// bucket sorts below every minor bucket, which sorts below every major one.
type CompatKind int

const (
	// CompatPatch is a 0.0.p bucket, holding a single triple.
	CompatPatch CompatKind = iota
	// CompatMinor is a 0.m.x bucket with m > 0.
	CompatMinor
	// CompatMajor is an M.x.y bucket with M > 0.
	CompatMajor
)

// Compatibility identifies a caret-compatibility bucket: two versions are
// compatible when their left-most nonzero component is the same. Every triple
// belongs to exactly one bucket, so buckets partition the release space.
type Compatibility struct {
	kind  CompatKind
	value uint64
}

// CompatibilityOf returns the bucket a version belongs to. The pre-release
// tag plays no part: 1.0.0-alpha sits in the same bucket as 1.0.0.
func CompatibilityOf(v Version) Compatibility {
	switch {
	case v.Major > 0:
		return Compatibility{kind: CompatMajor, value: v.Major}
	case v.Minor > 0:
		return Compatibility{kind: CompatMinor, value: v.Minor}
	default:
		return Compatibility{kind: CompatPatch, value: v.Patch}
	}
}

// Kind returns which component anchors the bucket.
func (c Compatibility) Kind() CompatKind {
	return c.kind
}

// Value returns the anchoring component's value.
func (c Compatibility) Value() uint64 {
	return c.value
}

// Canonical returns the smallest release in the bucket, e.g. 1.0.0 for the
// major-1 bucket.
func (c Compatibility) Canonical() Version {
	return Version{
		Major: c.triple().Major,
		Minor: c.triple().Minor,
		Patch: c.triple().Patch,
	}
}

// Minimum returns the smallest version in the bucket: the canonical triple
// with the least pre-release tag "0".
func (c Compatibility) Minimum() Version {
	v := c.Canonical()
	v.Pre = leastTag
	return v
}

// triple returns the bucket's canonical release triple.
func (c Compatibility) triple() ReleaseTriple {
	switch c.kind {
	case CompatMajor:
		return ReleaseTriple{Major: c.value}
	case CompatMinor:
		return ReleaseTriple{Minor: c.value}
	default:
		return ReleaseTriple{Patch: c.value}
	}
}

// Next returns the bucket directly above this one, or false when no bucket
// is above. Exhausting the patch buckets rolls over to minor, and minor to
// major.
func (c Compatibility) Next() (Compatibility, bool) {
	switch c.kind {
	case CompatPatch:
		if c.value == math.MaxUint64 {
			return Compatibility{kind: CompatMinor, value: 1}, true
		}
		return Compatibility{kind: CompatPatch, value: c.value + 1}, true
	case CompatMinor:
		if c.value == math.MaxUint64 {
			return Compatibility{kind: CompatMajor, value: 1}, true
		}
		return Compatibility{kind: CompatMinor, value: c.value + 1}, true
	default:
		if c.value == math.MaxUint64 {
			return Compatibility{}, false
		}
		return Compatibility{kind: CompatMajor, value: c.value + 1}, true
	}
}

// Compare orders buckets by the versions they hold.
func (c Compatibility) Compare(other Compatibility) int {
	if c.kind != other.kind {
		if c.kind < other.kind {
			return -1
		}
		return 1
	}
	if c.value != other.value {
		if c.value < other.value {
			return -1
		}
		return 1
	}
	return 0
}

// Releases returns the bucket's triples as a range: from the canonical
// triple up to the next bucket.
func (c Compatibility) Releases() NormalizedRange {
	t := c.triple()
	switch c.kind {
	case CompatMajor:
		return triplesBetween(lowerBound(t, true), bumpMajor(t))
	case CompatMinor:
		return triplesBetween(lowerBound(t, true), bumpMinor(t))
	default:
		return singleTriple(t)
	}
}

// FromCompatibility returns the set of releases in the bucket. Pre-releases
// are excluded, consistent with sets built from requirements.
func FromCompatibility(c Compatibility) SemverPubgrub {
	return SemverPubgrub{releases: c.Releases()}
}

// String renders the bucket as the caret requirement that selects it.
func (c Compatibility) String() string {
	switch c.kind {
	case CompatMajor:
		return fmt.Sprintf("^%d", c.value)
	case CompatMinor:
		return fmt.Sprintf("^0.%d", c.value)
	default:
		return fmt.Sprintf("^0.0.%d", c.value)
	}
}
