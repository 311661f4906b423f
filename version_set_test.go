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

package semverpubgrub_test

import (
	"testing"

	pubgrub "github.com/contriboss/pubgrub-go"
	"github.com/stretchr/testify/require"

	semverpubgrub "github.com/contriboss/semver-pubgrub-go"
)

func requirementCondition(t *testing.T, s string) pubgrub.Condition {
	t.Helper()
	req, err := semverpubgrub.ParseRequirement(s)
	if err != nil {
		t.Fatalf("ParseRequirement(%q): %v", s, err)
	}
	return pubgrub.NewVersionSetCondition(
		semverpubgrub.NewVersionSet(semverpubgrub.FromRequirement(req)))
}

func version(t *testing.T, s string) semverpubgrub.Version {
	t.Helper()
	v, err := semverpubgrub.ParseVersion(s)
	if err != nil {
		t.Fatalf("ParseVersion(%q): %v", s, err)
	}
	return v
}

func TestVersionSetInterface(t *testing.T) {
	t.Parallel()

	req, err := semverpubgrub.ParseRequirement(">=1.0.0, <2.0.0")
	require.NoError(t, err)

	var vs pubgrub.VersionSet = semverpubgrub.NewVersionSet(semverpubgrub.FromRequirement(req))

	require.True(t, vs.Contains(version(t, "1.5.0")))
	require.False(t, vs.Contains(version(t, "2.0.0")))
	require.False(t, vs.Contains(version(t, "1.5.0-alpha")))

	require.True(t, vs.Union(vs.Complement()).Contains(version(t, "1.5.0-alpha")))
	require.True(t, vs.Intersection(vs.Complement()).IsEmpty())
	require.True(t, vs.IsSubset(vs.Full()))
	require.True(t, vs.Empty().IsEmpty())
	require.True(t, vs.IsDisjoint(vs.Singleton(version(t, "2.0.0"))))
	require.False(t, vs.IsDisjoint(vs.Singleton(version(t, "1.0.0"))))
}

func TestVersionSortInterface(t *testing.T) {
	t.Parallel()

	var a pubgrub.Version = version(t, "1.2.3-alpha")
	var b pubgrub.Version = version(t, "1.2.3")
	require.Negative(t, a.Sort(b))
	require.Positive(t, b.Sort(a))
	require.Zero(t, a.Sort(version(t, "1.2.3-alpha")))
}

// TestSolveWithRequirements resolves a small dependency graph where the
// requirement semantics decide the outcome: the newest serde needs a 2.x
// syn, which conflicts with the root's pin, so the solver must back off to
// serde 1.0.0.
func TestSolveWithRequirements(t *testing.T) {
	t.Parallel()

	source := &pubgrub.InMemorySource{}
	serde := pubgrub.MakeName("serde")
	syn := pubgrub.MakeName("syn")

	source.AddPackage(serde, version(t, "1.0.0"), []pubgrub.Term{
		pubgrub.NewTerm(syn, requirementCondition(t, "^1.0")),
	})
	source.AddPackage(serde, version(t, "1.1.0"), []pubgrub.Term{
		pubgrub.NewTerm(syn, requirementCondition(t, "^2.0")),
	})
	source.AddPackage(syn, version(t, "1.0.5"), nil)
	source.AddPackage(syn, version(t, "2.0.1"), nil)

	root := pubgrub.NewRootSource()
	root.AddPackage(serde, requirementCondition(t, "^1"))
	root.AddPackage(syn, requirementCondition(t, "~1.0"))

	solver := pubgrub.NewSolver(root, source)
	solution, err := solver.Solve(root.Term())
	require.NoError(t, err)

	picked := map[string]string{}
	for _, nv := range solution {
		picked[nv.Name.Value()] = nv.Version.String()
	}
	require.Equal(t, "1.0.0", picked["serde"])
	require.Equal(t, "1.0.5", picked["syn"])
}

// TestSolvePrereleaseGate: a pre-release is only eligible when the
// requirement names a tag at its triple.
func TestSolvePrereleaseGate(t *testing.T) {
	t.Parallel()

	source := &pubgrub.InMemorySource{}
	tokio := pubgrub.MakeName("tokio")
	source.AddPackage(tokio, version(t, "0.9.0"), nil)
	source.AddPackage(tokio, version(t, "1.0.0-beta.2"), nil)

	// A plain caret requirement must not pick the pre-release.
	root := pubgrub.NewRootSource()
	root.AddPackage(tokio, requirementCondition(t, ">=0.9"))
	solution, err := pubgrub.NewSolver(root, source).Solve(root.Term())
	require.NoError(t, err)
	for _, nv := range solution {
		if nv.Name == tokio {
			require.Equal(t, "0.9.0", nv.Version.String())
		}
	}

	// Naming the tag unlocks it.
	root = pubgrub.NewRootSource()
	root.AddPackage(tokio, requirementCondition(t, ">=1.0.0-beta.1, <2.0.0"))
	solution, err = pubgrub.NewSolver(root, source).Solve(root.Term())
	require.NoError(t, err)
	for _, nv := range solution {
		if nv.Name == tokio {
			require.Equal(t, "1.0.0-beta.2", nv.Version.String())
		}
	}
}

func TestSolveConflictReported(t *testing.T) {
	t.Parallel()

	source := &pubgrub.InMemorySource{}
	name := pubgrub.MakeName("left-pad")
	source.AddPackage(name, version(t, "1.0.0"), nil)

	root := pubgrub.NewRootSource()
	root.AddPackage(name, requirementCondition(t, ">=2.0.0"))

	_, err := pubgrub.NewSolver(root, source).Solve(root.Term())
	require.Error(t, err)
}
