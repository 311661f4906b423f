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
	"strconv"
	"strings"
)

// Version is a semantic version: a full major.minor.patch triple, an
// optional pre-release tag, and optional build metadata. Build metadata is
// carried for display but ignored by every comparison in this package.
type Version struct {
	Major uint64
	Minor uint64
	Patch uint64
	Pre   Prerelease
	Build string
}

// NewVersion creates a release version with the given triple.
func NewVersion(major, minor, patch uint64) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

// ParseVersion parses a semantic version string such as "1.2.3",
// "1.2.3-alpha.1", or "1.2.3-rc.1+build.5". The triple must be complete;
// partial versions belong to requirements, not version values.
func ParseVersion(s string) (Version, error) {
	var v Version

	rest := s
	if i := strings.IndexByte(rest, '+'); i >= 0 {
		v.Build = rest[i+1:]
		rest = rest[:i]
		if err := validateBuild(v.Build); err != nil {
			return Version{}, fmt.Errorf("invalid version %q: %w", s, err)
		}
	}

	if i := strings.IndexByte(rest, '-'); i >= 0 {
		pre, err := ParsePrerelease(rest[i+1:])
		if err != nil {
			return Version{}, fmt.Errorf("invalid version %q: %w", s, err)
		}
		if pre.IsEmpty() {
			return Version{}, fmt.Errorf("invalid version %q: empty pre-release", s)
		}
		v.Pre = pre
		rest = rest[:i]
	}

	parts := strings.Split(rest, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("invalid version %q: expected major.minor.patch", s)
	}

	var err error
	if v.Major, err = parseComponent(parts[0]); err != nil {
		return Version{}, fmt.Errorf("invalid major in %q: %w", s, err)
	}
	if v.Minor, err = parseComponent(parts[1]); err != nil {
		return Version{}, fmt.Errorf("invalid minor in %q: %w", s, err)
	}
	if v.Patch, err = parseComponent(parts[2]); err != nil {
		return Version{}, fmt.Errorf("invalid patch in %q: %w", s, err)
	}

	return v, nil
}

// parseComponent parses one numeric version component.
func parseComponent(s string) (uint64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty component")
	}
	if len(s) > 1 && s[0] == '0' {
		return 0, fmt.Errorf("leading zero in component %q", s)
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// validateBuild checks build metadata identifiers: non-empty, [0-9A-Za-z-].
func validateBuild(s string) error {
	for _, ident := range strings.Split(s, ".") {
		if ident == "" {
			return fmt.Errorf("empty identifier in build metadata %q", s)
		}
		for _, r := range ident {
			if !isIdentifierRune(r) {
				return fmt.Errorf("invalid character %q in build metadata %q", r, s)
			}
		}
	}
	return nil
}

// Triple returns the version's release triple.
func (v Version) Triple() ReleaseTriple {
	return ReleaseTriple{Major: v.Major, Minor: v.Minor, Patch: v.Patch}
}

// IsPrerelease returns true when the version carries a pre-release tag.
func (v Version) IsPrerelease() bool {
	return !v.Pre.IsEmpty()
}

// Compare orders versions by release triple, then pre-release tag. A
// pre-release sorts below the release it precedes. Build metadata is
// ignored.
func (v Version) Compare(other Version) int {
	if cmp := v.Triple().Compare(other.Triple()); cmp != 0 {
		return cmp
	}
	return v.Pre.Compare(other.Pre)
}

// String returns the canonical string form.
func (v Version) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d.%d.%d", v.Major, v.Minor, v.Patch)
	if !v.Pre.IsEmpty() {
		b.WriteByte('-')
		b.WriteString(string(v.Pre))
	}
	if v.Build != "" {
		b.WriteByte('+')
		b.WriteString(v.Build)
	}
	return b.String()
}
