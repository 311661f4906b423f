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
	"math"
	"testing"
)

func TestCompatibilityOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		version string
		kind    CompatKind
		value   uint64
	}{
		{"1.2.3", CompatMajor, 1},
		{"2.0.0", CompatMajor, 2},
		{"0.2.3", CompatMinor, 2},
		{"0.0.3", CompatPatch, 3},
		{"0.0.0", CompatPatch, 0},
		{"1.0.0-alpha", CompatMajor, 1}, // tags play no part
	}

	for _, tt := range tests {
		c := CompatibilityOf(mustVersion(t, tt.version))
		if c.Kind() != tt.kind || c.Value() != tt.value {
			t.Errorf("CompatibilityOf(%s) = %s (kind %d, value %d), want kind %d value %d",
				tt.version, c, c.Kind(), c.Value(), tt.kind, tt.value)
		}
	}
}

func TestCompatibilityMinimumCanonical(t *testing.T) {
	t.Parallel()

	c := CompatibilityOf(mustVersion(t, "1.9.4"))
	if got, want := c.Canonical().String(), "1.0.0"; got != want {
		t.Errorf("Canonical() = %s, want %s", got, want)
	}
	if got, want := c.Minimum().String(), "1.0.0-0"; got != want {
		t.Errorf("Minimum() = %s, want %s", got, want)
	}

	// The minimum really is minimal: nothing in the bucket sorts below it.
	min := c.Minimum()
	for _, s := range []string{"1.0.0-0.0", "1.0.0-alpha", "1.0.0", "1.9.4"} {
		if v := mustVersion(t, s); v.Compare(min) < 0 {
			t.Errorf("%s sorts below the bucket minimum %s", v, min)
		}
	}
}

func TestCompatibilityNext(t *testing.T) {
	t.Parallel()

	next := func(c Compatibility) Compatibility {
		t.Helper()
		n, ok := c.Next()
		if !ok {
			t.Fatalf("Next(%s) exhausted", c)
		}
		return n
	}

	if got := next(CompatibilityOf(mustVersion(t, "0.0.3"))); got.Kind() != CompatPatch || got.Value() != 4 {
		t.Errorf("next of ^0.0.3 = %s", got)
	}
	if got := next(CompatibilityOf(mustVersion(t, "0.2.0"))); got.Kind() != CompatMinor || got.Value() != 3 {
		t.Errorf("next of ^0.2 = %s", got)
	}
	if got := next(CompatibilityOf(mustVersion(t, "3.0.0"))); got.Kind() != CompatMajor || got.Value() != 4 {
		t.Errorf("next of ^3 = %s", got)
	}

	// Rollover at the top of each kind.
	top := Compatibility{kind: CompatPatch, value: math.MaxUint64}
	if got := next(top); got.Kind() != CompatMinor || got.Value() != 1 {
		t.Errorf("patch rollover = %s", got)
	}
	top = Compatibility{kind: CompatMinor, value: math.MaxUint64}
	if got := next(top); got.Kind() != CompatMajor || got.Value() != 1 {
		t.Errorf("minor rollover = %s", got)
	}
	top = Compatibility{kind: CompatMajor, value: math.MaxUint64}
	if _, ok := top.Next(); ok {
		t.Error("expected the top major bucket to have no successor")
	}
}

func TestCompatibilityOrdering(t *testing.T) {
	t.Parallel()

	chain := []string{"0.0.0", "0.0.9", "0.1.0", "0.9.0", "1.0.0", "9.0.0"}
	for i := range chain[:len(chain)-1] {
		a := CompatibilityOf(mustVersion(t, chain[i]))
		b := CompatibilityOf(mustVersion(t, chain[i+1]))
		if a.Compare(b) >= 0 {
			t.Errorf("expected %s < %s", a, b)
		}
	}
}

// TestCompatibilityPartition: walking Next from the bottom tiles the release
// space without gaps or overlaps.
func TestCompatibilityPartition(t *testing.T) {
	t.Parallel()

	versions := []string{
		"0.0.0", "0.0.1", "0.1.0", "0.1.9", "0.2.0",
		"1.0.0", "1.9.9", "2.0.0", "3.4.5",
	}

	for _, vStr := range versions {
		v := mustVersion(t, vStr)
		home := CompatibilityOf(v)
		if !home.Releases().Contains(v.Triple()) {
			t.Errorf("%s not in its own bucket %s (%s)", v, home, home.Releases())
		}

		// Neighbours must not claim it.
		if next, ok := home.Next(); ok && next.Releases().Contains(v.Triple()) {
			t.Errorf("%s also in the next bucket %s", v, next)
		}
	}
}

func TestFromCompatibility(t *testing.T) {
	t.Parallel()

	set := FromCompatibility(CompatibilityOf(mustVersion(t, "1.2.3")))
	if !set.Equal(FromRequirement(mustRequirement(t, "^1"))) {
		t.Errorf("major bucket set = %s, want the ^1 translation", set)
	}
	if set.Contains(mustVersion(t, "1.5.0-alpha")) {
		t.Error("bucket sets are release-only")
	}

	patch := FromCompatibility(CompatibilityOf(mustVersion(t, "0.0.3")))
	if !patch.Contains(mustVersion(t, "0.0.3")) || patch.Contains(mustVersion(t, "0.0.4")) {
		t.Errorf("patch bucket wrong: %s", patch)
	}
}

func TestCompatibilityString(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"3.1.4": "^3",
		"0.2.7": "^0.2",
		"0.0.5": "^0.0.5",
	}
	for version, want := range tests {
		if got := CompatibilityOf(mustVersion(t, version)).String(); got != want {
			t.Errorf("String(%s) = %q, want %q", version, got, want)
		}
	}
}
