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
	"strings"
)

// Prerelease is a version's pre-release tag: the dot-separated identifier
// sequence after the hyphen, e.g. "alpha.1" in "1.2.3-alpha.1". The empty
// tag means the version is a release, not a pre-release.
//
// Ordering follows semantic versioning: identifiers compare pairwise, numeric
// identifiers compare by value and sort below alphanumeric ones, alphanumeric
// identifiers compare by code point, and a shorter sequence that is a prefix
// of a longer one is smaller. The empty tag sorts above every non-empty tag,
// because a release is greater than all of its pre-releases.
type Prerelease string

// ParsePrerelease validates a pre-release tag. Identifiers must be non-empty,
// drawn from [0-9A-Za-z-], and numeric identifiers must not have leading
// zeros. The empty string is valid and means "not a pre-release".
func ParsePrerelease(s string) (Prerelease, error) {
	if s == "" {
		return "", nil
	}
	for _, ident := range strings.Split(s, ".") {
		if ident == "" {
			return "", fmt.Errorf("empty identifier in pre-release %q", s)
		}
		for _, r := range ident {
			if !isIdentifierRune(r) {
				return "", fmt.Errorf("invalid character %q in pre-release %q", r, s)
			}
		}
		if len(ident) > 1 && ident[0] == '0' && isNumericIdentifier(ident) {
			return "", fmt.Errorf("leading zero in numeric identifier %q of pre-release %q", ident, s)
		}
	}
	return Prerelease(s), nil
}

// IsEmpty returns true when the tag marks a release rather than a
// pre-release.
func (p Prerelease) IsEmpty() bool {
	return p == ""
}

// String returns the raw tag text.
func (p Prerelease) String() string {
	return string(p)
}

// nextTag returns the least tag ordered above p. Appending a ".0" identifier
// slots directly after p: any tag above p either diverges at an identifier,
// placing it at or above p.0's divergence point, or extends p with an
// identifier no smaller than "0".
func nextTag(p Prerelease) Prerelease {
	return p + ".0"
}

// leastTag is the smallest pre-release tag: the single identifier "0".
const leastTag = Prerelease("0")

// Compare orders two tags. The empty tag is greater than every non-empty tag.
func (p Prerelease) Compare(other Prerelease) int {
	if p == other {
		return 0
	}
	if p.IsEmpty() {
		return 1
	}
	if other.IsEmpty() {
		return -1
	}

	aParts := strings.Split(string(p), ".")
	bParts := strings.Split(string(other), ".")

	for i := 0; i < len(aParts) && i < len(bParts); i++ {
		if cmp := compareIdentifiers(aParts[i], bParts[i]); cmp != 0 {
			return cmp
		}
	}

	// All compared identifiers equal: the shorter sequence is smaller.
	switch {
	case len(aParts) < len(bParts):
		return -1
	case len(aParts) > len(bParts):
		return 1
	default:
		return 0
	}
}

// compareIdentifiers compares single pre-release identifiers. Numeric
// identifiers compare by value and sort below alphanumeric ones. Comparing
// digit strings by length and then lexically is numeric comparison, since
// valid numeric identifiers carry no leading zeros.
func compareIdentifiers(a, b string) int {
	aNum := isNumericIdentifier(a)
	bNum := isNumericIdentifier(b)

	switch {
	case aNum && bNum:
		if len(a) != len(b) {
			if len(a) < len(b) {
				return -1
			}
			return 1
		}
		return strings.Compare(a, b)
	case aNum:
		return -1
	case bNum:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// isNumericIdentifier reports whether the identifier consists solely of
// ASCII digits.
func isNumericIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isIdentifierRune reports whether r may appear in a pre-release or build
// identifier.
func isIdentifierRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r == '-':
		return true
	default:
		return false
	}
}
