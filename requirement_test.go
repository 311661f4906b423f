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

import "testing"

func mustRequirement(t *testing.T, s string) Requirement {
	t.Helper()
	r, err := ParseRequirement(s)
	if err != nil {
		t.Fatalf("ParseRequirement(%q): %v", s, err)
	}
	return r
}

func u64(n uint64) *uint64 { return &n }

func TestParseRequirement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Requirement
	}{
		{"", Requirement{}},
		{"*", Requirement{}},
		{"  *  ", Requirement{}},
		{"1.2.3", Requirement{Comparators: []Comparator{
			{Op: OpCaret, Major: 1, Minor: u64(2), Patch: u64(3)},
		}}},
		{"^1.2.3", Requirement{Comparators: []Comparator{
			{Op: OpCaret, Major: 1, Minor: u64(2), Patch: u64(3)},
		}}},
		{"~1.2", Requirement{Comparators: []Comparator{
			{Op: OpTilde, Major: 1, Minor: u64(2)},
		}}},
		{"=1", Requirement{Comparators: []Comparator{
			{Op: OpExact, Major: 1},
		}}},
		{"1.*", Requirement{Comparators: []Comparator{
			{Op: OpWildcard, Major: 1},
		}}},
		{"1.2.*", Requirement{Comparators: []Comparator{
			{Op: OpWildcard, Major: 1, Minor: u64(2)},
		}}},
		{"=1.x", Requirement{Comparators: []Comparator{
			{Op: OpWildcard, Major: 1},
		}}},
		{"1.X", Requirement{Comparators: []Comparator{
			{Op: OpWildcard, Major: 1},
		}}},
		{">= 1.2.3, < 1.5.0", Requirement{Comparators: []Comparator{
			{Op: OpGreaterEq, Major: 1, Minor: u64(2), Patch: u64(3)},
			{Op: OpLess, Major: 1, Minor: u64(5), Patch: u64(0)},
		}}},
		{"=1.2.3-alpha.1", Requirement{Comparators: []Comparator{
			{Op: OpExact, Major: 1, Minor: u64(2), Patch: u64(3), Pre: "alpha.1"},
		}}},
		{">1.2.3-beta+build.7", Requirement{Comparators: []Comparator{
			{Op: OpGreater, Major: 1, Minor: u64(2), Patch: u64(3), Pre: "beta"},
		}}},
		{"<=2", Requirement{Comparators: []Comparator{
			{Op: OpLessEq, Major: 2},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got := mustRequirement(t, tt.input)
			if len(got.Comparators) != len(tt.want.Comparators) {
				t.Fatalf("got %d comparators, want %d", len(got.Comparators), len(tt.want.Comparators))
			}
			for i, c := range got.Comparators {
				w := tt.want.Comparators[i]
				if c.Op != w.Op || c.Major != w.Major || c.Pre != w.Pre ||
					!eqPtr(c.Minor, w.Minor) || !eqPtr(c.Patch, w.Patch) {
					t.Errorf("comparator %d = %+v, want %+v", i, c, w)
				}
			}
		})
	}
}

func eqPtr(a, b *uint64) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || *a == *b
}

func TestParseRequirementErrors(t *testing.T) {
	t.Parallel()

	inputs := []string{
		",",
		"1.2.3,",
		">",
		">=",
		"> , <2",
		"*.1",
		"x.2.3",
		"1.*.3",
		">1.*",  // ordering operator with wildcard
		"~1.x",  // tilde with wildcard
		"^1.2.x",
		"1.2-alpha",   // pre-release needs a full triple
		"~1-beta",
		"1.2.*-alpha", // pre-release after wildcard
		"1.2.3-alpha..1",
		"1.02.3",
		">=1.2.3 <2.0.0", // missing comma
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			if r, err := ParseRequirement(input); err == nil {
				t.Errorf("ParseRequirement(%q) = %v, want error", input, r)
			}
		})
	}
}

func TestRequirementString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input, want string
	}{
		{"*", "*"},
		{"", "*"},
		{"1.2.3", "^1.2.3"},
		{"^0.1", "^0.1"},
		{"~1.2.3", "~1.2.3"},
		{"1.*", "1.*"},
		{"1.2.*", "1.2.*"},
		{">= 1.2.3 , < 1.5.0", ">=1.2.3, <1.5.0"},
		{"=1.2.3-alpha.1", "=1.2.3-alpha.1"},
	}

	for _, tt := range tests {
		if got := mustRequirement(t, tt.input).String(); got != tt.want {
			t.Errorf("String(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// TestRequirementMatches exercises the reference predicate, including the
// pre-release visibility rule: a pre-release only matches when some
// comparator names a pre-release at exactly its triple.
func TestRequirementMatches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		req     string
		version string
		want    bool
	}{
		{"*", "1.2.3", true},
		{"*", "0.0.0", true},
		{"*", "1.2.3-alpha", false},

		{"^1.2.3", "1.2.3", true},
		{"^1.2.3", "1.9.0", true},
		{"^1.2.3", "2.0.0", false},
		{"^1.2.3", "1.2.2", false},
		{"^0.2.3", "0.2.9", true},
		{"^0.2.3", "0.3.0", false},
		{"^0.0.3", "0.0.3", true},
		{"^0.0.3", "0.0.4", false},
		{"^1.2", "1.2.0", true},
		{"^1.2", "1.9.9", true},
		{"^0.2", "0.2.9", true},
		{"^0.2", "0.3.0", false},
		{"^1", "1.0.0", true},
		{"^1", "1.9.9", true},
		{"^1", "2.0.0", false},
		{"^0", "0.9.9", true},
		{"^0", "1.0.0", false},

		{"~1.2.3", "1.2.3", true},
		{"~1.2.3", "1.2.9", true},
		{"~1.2.3", "1.3.0", false},
		{"~1.2", "1.2.9", true},
		{"~1.2", "1.3.0", false},
		{"~1", "1.9.9", true},
		{"~1", "2.0.0", false},

		{"=1.2.3", "1.2.3", true},
		{"=1.2.3", "1.2.4", false},
		{"=1.2", "1.2.9", true},
		{"=1.2", "1.3.0", false},
		{"=1", "1.9.9", true},

		{"1.*", "1.5.0", true},
		{"1.*", "2.0.0", false},
		{"1.2.*", "1.2.9", true},
		{"1.2.*", "1.3.0", false},

		{">1.2.3", "1.2.4", true},
		{">1.2.3", "1.2.3", false},
		{">1.2", "1.3.0", true},
		{">1.2", "1.2.9", false},
		{">1", "2.0.0", true},
		{">1", "1.9.9", false},
		{">=1.2.3", "1.2.3", true},
		{">=1.2", "1.2.0", true},
		{">=1.2", "1.1.9", false},
		{"<1.2.3", "1.2.2", true},
		{"<1.2.3", "1.2.3", false},
		{"<1.2", "1.1.9", true},
		{"<1.2", "1.2.0", false},
		{"<=1.2", "1.2.9", true},
		{"<=1.2", "1.3.0", false},

		{">=1.2.3, <1.5.0", "1.3.0", true},
		{">=1.2.3, <1.5.0", "1.5.0", false},
		{">=1.2.3, <1.5.0", "1.2.2", false},

		// Pre-release visibility.
		{"^1.2.3-alpha", "1.2.3-alpha", true},
		{"^1.2.3-alpha", "1.2.3-beta", true},
		{"^1.2.3-beta", "1.2.3-alpha", false},
		{"^1.2.3-alpha", "1.2.4-alpha", false}, // no tag named at 1.2.4
		{"^1.2.3-alpha", "1.2.4", true},
		{"^1.2.3", "1.2.4-alpha", false},
		{"~1.2.3-beta.2", "1.2.3-beta.11", true},
		{"~1.2.3-beta.2", "1.2.3-alpha", false},
		{"=1.2.3-alpha", "1.2.3-alpha", true},
		{"=1.2.3-alpha", "1.2.3-alpha.1", false},
		{"=1.2.3-alpha", "1.2.3", false},
		{">1.2.3-alpha", "1.2.3-beta", true},
		{">1.2.3-alpha", "1.2.3-alpha", false},
		{">1.2.3-alpha", "1.2.3", true}, // the release outranks its tags
		{">=1.2.3-alpha", "1.2.3", true},
		{"<=1.2.3-beta", "1.2.3-alpha", true},
		{"<=1.2.3-beta", "1.2.3", false},
		{"<1.2.3-beta", "1.2.3-beta", false},
		{">=1.2.3-alpha, <2.0.0", "1.2.3-beta", true},
		{">=1.2.3-alpha, <2.0.0", "1.5.0-alpha", false},
		{">=1.2.3-alpha, <1.2.3-beta", "1.2.3-alpha.1", true},
		{"<2.0.0", "1.5.0-alpha", false},
		{">=0.0.0", "1.0.0-alpha", false},
	}

	for _, tt := range tests {
		req := mustRequirement(t, tt.req)
		v := mustVersion(t, tt.version)
		if got := req.Matches(v); got != tt.want {
			t.Errorf("(%q).Matches(%s) = %v, want %v", tt.req, v, got, tt.want)
		}
	}
}

func TestComparatorMatchesBuildIgnored(t *testing.T) {
	t.Parallel()

	req := mustRequirement(t, "=1.2.3")
	if !req.Matches(mustVersion(t, "1.2.3+build.9")) {
		t.Error("expected build metadata to be ignored by matching")
	}
}
