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

// ReleaseTriple identifies a version's (major, minor, patch) components,
// ignoring any pre-release tag or build metadata. Triples are ordered
// lexicographically.
type ReleaseTriple struct {
	Major uint64
	Minor uint64
	Patch uint64
}

// Compare returns a negative number, zero, or a positive number when t is
// less than, equal to, or greater than other.
func (t ReleaseTriple) Compare(other ReleaseTriple) int {
	if t.Major != other.Major {
		if t.Major < other.Major {
			return -1
		}
		return 1
	}
	if t.Minor != other.Minor {
		if t.Minor < other.Minor {
			return -1
		}
		return 1
	}
	if t.Patch != other.Patch {
		if t.Patch < other.Patch {
			return -1
		}
		return 1
	}
	return 0
}

// String returns the dotted form, e.g. "1.2.3".
func (t ReleaseTriple) String() string {
	return fmt.Sprintf("%d.%d.%d", t.Major, t.Minor, t.Patch)
}

// nextTriple returns the successor triple in version order, or false when t
// is the greatest representable triple.
func nextTriple(t ReleaseTriple) (ReleaseTriple, bool) {
	switch {
	case t.Patch < math.MaxUint64:
		return ReleaseTriple{Major: t.Major, Minor: t.Minor, Patch: t.Patch + 1}, true
	case t.Minor < math.MaxUint64:
		return ReleaseTriple{Major: t.Major, Minor: t.Minor + 1}, true
	case t.Major < math.MaxUint64:
		return ReleaseTriple{Major: t.Major + 1}, true
	default:
		return ReleaseTriple{}, false
	}
}

// bumpMajor returns the exclusive upper bound just past this triple's major
// series: the first triple of the next major, or +∞ when the major component
// cannot be incremented.
func bumpMajor(t ReleaseTriple) bound[ReleaseTriple] {
	if t.Major == math.MaxUint64 {
		return positiveInfinity[ReleaseTriple]()
	}
	return upperBound(ReleaseTriple{Major: t.Major + 1}, false)
}

// bumpMinor returns the exclusive upper bound just past this triple's minor
// series, falling back to bumpMajor on overflow.
func bumpMinor(t ReleaseTriple) bound[ReleaseTriple] {
	if t.Minor == math.MaxUint64 {
		return bumpMajor(t)
	}
	return upperBound(ReleaseTriple{Major: t.Major, Minor: t.Minor + 1}, false)
}

// bumpPatch returns the exclusive upper bound just past this exact triple,
// falling back to bumpMinor on overflow.
func bumpPatch(t ReleaseTriple) bound[ReleaseTriple] {
	if t.Patch == math.MaxUint64 {
		return bumpMinor(t)
	}
	return upperBound(ReleaseTriple{Major: t.Major, Minor: t.Minor, Patch: t.Patch + 1}, false)
}
