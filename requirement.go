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

// Op identifies a comparator's operator.
type Op int

const (
	// OpWildcard matches any version with the given leading components,
	// e.g. "1.*" or "1.2.*".
	OpWildcard Op = iota
	// OpExact is "=".
	OpExact
	// OpGreater is ">".
	OpGreater
	// OpGreaterEq is ">=".
	OpGreaterEq
	// OpLess is "<".
	OpLess
	// OpLessEq is "<=".
	OpLessEq
	// OpTilde is "~": patch-level flexibility.
	OpTilde
	// OpCaret is "^": compatibility up to the left-most nonzero component.
	// A bare version with no operator defaults to caret.
	OpCaret
)

// String returns the operator's textual prefix. OpWildcard has none: the
// wildcard lives in the version components.
func (op Op) String() string {
	switch op {
	case OpWildcard:
		return ""
	case OpExact:
		return "="
	case OpGreater:
		return ">"
	case OpGreaterEq:
		return ">="
	case OpLess:
		return "<"
	case OpLessEq:
		return "<="
	case OpTilde:
		return "~"
	case OpCaret:
		return "^"
	default:
		panic(fmt.Sprintf("unknown operator %d", int(op)))
	}
}

// Comparator is one operator applied to a possibly partial version: the unit
// combined by AND into a Requirement. Minor and Patch are nil when omitted.
// A pre-release tag requires a complete triple.
type Comparator struct {
	Op    Op
	Major uint64
	Minor *uint64
	Patch *uint64
	Pre   Prerelease
}

// triple returns the comparator's full release triple. It must only be
// called when minor and patch are present; a comparator carrying a
// pre-release tag always has them.
func (c Comparator) triple() ReleaseTriple {
	if c.Minor == nil || c.Patch == nil {
		panic(fmt.Sprintf("comparator %s has no complete triple", c))
	}
	return ReleaseTriple{Major: c.Major, Minor: *c.Minor, Patch: *c.Patch}
}

// patchOr returns the patch component, or def when omitted.
func (c Comparator) patchOr(def uint64) uint64 {
	if c.Patch == nil {
		return def
	}
	return *c.Patch
}

// String returns the comparator's textual form, e.g. ">=1.2.3-alpha" or
// "1.2.*".
func (c Comparator) String() string {
	var b strings.Builder
	b.WriteString(c.Op.String())
	fmt.Fprintf(&b, "%d", c.Major)
	switch {
	case c.Minor != nil:
		fmt.Fprintf(&b, ".%d", *c.Minor)
		switch {
		case c.Patch != nil:
			fmt.Fprintf(&b, ".%d", *c.Patch)
		case c.Op == OpWildcard:
			b.WriteString(".*")
		}
	case c.Op == OpWildcard:
		b.WriteString(".*")
	}
	if !c.Pre.IsEmpty() {
		b.WriteByte('-')
		b.WriteString(string(c.Pre))
	}
	return b.String()
}

// Requirement is an ordered list of comparators combined by logical AND.
// An empty list is the unconstrained requirement "*".
type Requirement struct {
	Comparators []Comparator
}

// String renders the requirement, "*" when unconstrained.
func (r Requirement) String() string {
	if len(r.Comparators) == 0 {
		return "*"
	}
	parts := make([]string, len(r.Comparators))
	for i, c := range r.Comparators {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}

// ParseRequirement parses a comma-separated conjunction of comparators:
//
//	"*"                    any release
//	"1.2.3"                caret by default, same as "^1.2.3"
//	"~1.2"                 patch and minor flexibility
//	">=1.2.3, <1.5.0"      half-open window
//	"=1.2.3-alpha"         exactly one pre-release
//	"1.2.*"                wildcard patch
//
// A pre-release tag is only valid on a complete triple. Wildcard components
// take no operator.
func ParseRequirement(s string) (Requirement, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "*" {
		return Requirement{}, nil
	}

	tokens := strings.Split(s, ",")
	comparators := make([]Comparator, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			return Requirement{}, fmt.Errorf("empty comparator in requirement %q", s)
		}
		c, err := parseComparator(token)
		if err != nil {
			return Requirement{}, fmt.Errorf("invalid requirement %q: %w", s, err)
		}
		comparators = append(comparators, c)
	}

	return Requirement{Comparators: comparators}, nil
}

// comparatorOps maps operator prefixes to operators, longest first so ">="
// wins over ">".
var comparatorOps = []struct {
	prefix string
	op     Op
}{
	{">=", OpGreaterEq},
	{"<=", OpLessEq},
	{">", OpGreater},
	{"<", OpLess},
	{"=", OpExact},
	{"~", OpTilde},
	{"^", OpCaret},
}

// parseComparator parses a single comparator token.
func parseComparator(token string) (Comparator, error) {
	op := OpCaret
	explicit := false
	rest := token
	for _, entry := range comparatorOps {
		if strings.HasPrefix(rest, entry.prefix) {
			op = entry.op
			explicit = true
			rest = strings.TrimSpace(rest[len(entry.prefix):])
			break
		}
	}
	if rest == "" {
		return Comparator{}, fmt.Errorf("missing version in comparator %q", token)
	}
	if rest == "*" {
		return Comparator{}, fmt.Errorf("wildcard %q must stand alone as the whole requirement", token)
	}

	// Build metadata is accepted and ignored, like the reference grammar.
	if i := strings.IndexByte(rest, '+'); i >= 0 {
		if err := validateBuild(rest[i+1:]); err != nil {
			return Comparator{}, err
		}
		rest = rest[:i]
	}

	var pre Prerelease
	if i := strings.IndexByte(rest, '-'); i >= 0 {
		parsed, err := ParsePrerelease(rest[i+1:])
		if err != nil {
			return Comparator{}, err
		}
		if parsed.IsEmpty() {
			return Comparator{}, fmt.Errorf("empty pre-release in comparator %q", token)
		}
		pre = parsed
		rest = rest[:i]
	}

	parts := strings.Split(rest, ".")
	if len(parts) < 1 || len(parts) > 3 {
		return Comparator{}, fmt.Errorf("expected major[.minor[.patch]] in comparator %q", token)
	}
	if isWildcardComponent(parts[0]) {
		return Comparator{}, fmt.Errorf("wildcard major in comparator %q", token)
	}

	c := Comparator{Op: op}
	var err error
	if c.Major, err = parseComponent(parts[0]); err != nil {
		return Comparator{}, fmt.Errorf("invalid major in comparator %q: %w", token, err)
	}

	wildcard := false
	if len(parts) > 1 {
		if isWildcardComponent(parts[1]) {
			wildcard = true
		} else {
			minor, err := parseComponent(parts[1])
			if err != nil {
				return Comparator{}, fmt.Errorf("invalid minor in comparator %q: %w", token, err)
			}
			c.Minor = &minor
		}
	}
	if len(parts) > 2 {
		switch {
		case isWildcardComponent(parts[2]):
			wildcard = true
		case wildcard:
			return Comparator{}, fmt.Errorf("component after wildcard in comparator %q", token)
		default:
			patch, err := parseComponent(parts[2])
			if err != nil {
				return Comparator{}, fmt.Errorf("invalid patch in comparator %q: %w", token, err)
			}
			c.Patch = &patch
		}
	}

	if wildcard {
		if explicit && op != OpExact {
			return Comparator{}, fmt.Errorf("operator %s not allowed with wildcard in comparator %q", op, token)
		}
		if !pre.IsEmpty() {
			return Comparator{}, fmt.Errorf("pre-release after wildcard in comparator %q", token)
		}
		c.Op = OpWildcard
	}

	if !pre.IsEmpty() {
		if c.Minor == nil || c.Patch == nil {
			return Comparator{}, fmt.Errorf("pre-release requires a full triple in comparator %q", token)
		}
		c.Pre = pre
	}

	return c, nil
}

// isWildcardComponent reports whether a component spells "any": *, x or X.
func isWildcardComponent(s string) bool {
	return s == "*" || s == "x" || s == "X"
}
