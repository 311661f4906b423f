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

// Reference matching predicates. The translation in translate.go must agree
// with these for every version; the equivalence tests hold it to that. Note
// the two-stage rule for pre-release versions: every comparator must match
// the version, and additionally at least one comparator must name a
// pre-release at exactly the version's triple.

// Matches reports whether the version satisfies the requirement. An
// unconstrained requirement matches every release but no pre-release.
func (r Requirement) Matches(v Version) bool {
	for _, c := range r.Comparators {
		if !c.matchesImpl(v) {
			return false
		}
	}
	if !v.IsPrerelease() {
		return true
	}
	for _, c := range r.Comparators {
		if c.preCompatible(v) {
			return true
		}
	}
	return false
}

// Matches reports whether the version satisfies this comparator standing
// alone, i.e. as a one-comparator requirement, including the pre-release
// visibility rule.
func (c Comparator) Matches(v Version) bool {
	if !c.matchesImpl(v) {
		return false
	}
	if !v.IsPrerelease() {
		return true
	}
	return c.preCompatible(v)
}

// preCompatible reports whether this comparator unlocks pre-releases at the
// version's triple: it carries a pre-release tag on exactly that triple.
func (c Comparator) preCompatible(v Version) bool {
	return !c.Pre.IsEmpty() &&
		c.Major == v.Major &&
		c.Minor != nil && *c.Minor == v.Minor &&
		c.Patch != nil && *c.Patch == v.Patch
}

// matchesImpl is the per-operator match check, without the pre-release
// visibility rule.
func (c Comparator) matchesImpl(v Version) bool {
	switch c.Op {
	case OpExact, OpWildcard:
		return c.matchesExact(v)
	case OpGreater:
		return c.matchesGreater(v)
	case OpGreaterEq:
		return c.matchesExact(v) || c.matchesGreater(v)
	case OpLess:
		return c.matchesLess(v)
	case OpLessEq:
		return c.matchesExact(v) || c.matchesLess(v)
	case OpTilde:
		return c.matchesTilde(v)
	case OpCaret:
		return c.matchesCaret(v)
	default:
		panic("unknown comparator operator")
	}
}

// matchesExact requires equality on every named component and on the
// pre-release tag.
func (c Comparator) matchesExact(v Version) bool {
	if v.Major != c.Major {
		return false
	}
	if c.Minor != nil && v.Minor != *c.Minor {
		return false
	}
	if c.Patch != nil && v.Patch != *c.Patch {
		return false
	}
	return v.Pre.Compare(c.Pre) == 0
}

// matchesGreater orders by the named components; an omitted component means
// no version sharing the prefix qualifies.
func (c Comparator) matchesGreater(v Version) bool {
	if v.Major != c.Major {
		return v.Major > c.Major
	}
	if c.Minor == nil {
		return false
	}
	if v.Minor != *c.Minor {
		return v.Minor > *c.Minor
	}
	if c.Patch == nil {
		return false
	}
	if v.Patch != *c.Patch {
		return v.Patch > *c.Patch
	}
	return v.Pre.Compare(c.Pre) > 0
}

// matchesLess mirrors matchesGreater in the other direction.
func (c Comparator) matchesLess(v Version) bool {
	if v.Major != c.Major {
		return v.Major < c.Major
	}
	if c.Minor == nil {
		return false
	}
	if v.Minor != *c.Minor {
		return v.Minor < *c.Minor
	}
	if c.Patch == nil {
		return false
	}
	if v.Patch != *c.Patch {
		return v.Patch < *c.Patch
	}
	return v.Pre.Compare(c.Pre) < 0
}

// matchesTilde pins the named components except that a named patch may grow.
func (c Comparator) matchesTilde(v Version) bool {
	if v.Major != c.Major {
		return false
	}
	if c.Minor != nil && v.Minor != *c.Minor {
		return false
	}
	if c.Patch != nil && v.Patch != *c.Patch {
		return v.Patch > *c.Patch
	}
	return v.Pre.Compare(c.Pre) >= 0
}

// matchesCaret allows growth up to the left-most nonzero named component.
func (c Comparator) matchesCaret(v Version) bool {
	if v.Major != c.Major {
		return false
	}

	if c.Minor == nil {
		return true
	}
	minor := *c.Minor

	if c.Patch == nil {
		if c.Major > 0 {
			return v.Minor >= minor
		}
		return v.Minor == minor
	}
	patch := *c.Patch

	if c.Major > 0 {
		if v.Minor != minor {
			return v.Minor > minor
		}
		if v.Patch != patch {
			return v.Patch > patch
		}
	} else if minor > 0 {
		if v.Minor != minor {
			return false
		}
		if v.Patch != patch {
			return v.Patch > patch
		}
	} else if v.Minor != minor || v.Patch != patch {
		return false
	}

	return v.Pre.Compare(c.Pre) >= 0
}
