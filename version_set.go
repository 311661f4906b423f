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
	"strings"

	pubgrub "github.com/contriboss/pubgrub-go"
)

// VersionSet adapts SemverPubgrub to the resolver's set interface, so
// requirements can drive dependency resolution directly:
//
//	req, _ := semverpubgrub.ParseRequirement(">=1.2.0, <2.0.0")
//	term := pubgrub.NewTerm(name, pubgrub.NewVersionSetCondition(
//		semverpubgrub.NewVersionSet(semverpubgrub.FromRequirement(req))))
//
// All operations stay within this implementation: mixing in another
// VersionSet implementation panics, mirroring the resolver's built-in sets.
type VersionSet struct {
	Set SemverPubgrub
}

// NewVersionSet wraps a set for use with the resolver.
func NewVersionSet(s SemverPubgrub) VersionSet {
	return VersionSet{Set: s}
}

// Empty returns a VersionSet containing no versions.
func (vs VersionSet) Empty() pubgrub.VersionSet {
	return VersionSet{}
}

// Full returns a VersionSet containing all versions, pre-releases included.
func (vs VersionSet) Full() pubgrub.VersionSet {
	return VersionSet{Set: Full()}
}

// Singleton returns a VersionSet containing exactly one version.
func (vs VersionSet) Singleton(version pubgrub.Version) pubgrub.VersionSet {
	return VersionSet{Set: Singleton(asVersion(version))}
}

// Union returns the set of versions in either this set or the other.
func (vs VersionSet) Union(other pubgrub.VersionSet) pubgrub.VersionSet {
	return VersionSet{Set: vs.Set.Union(asVersionSet(other).Set)}
}

// Intersection returns the set of versions in both this set and the other.
func (vs VersionSet) Intersection(other pubgrub.VersionSet) pubgrub.VersionSet {
	return VersionSet{Set: vs.Set.Intersection(asVersionSet(other).Set)}
}

// Complement returns the set of versions NOT in this set.
func (vs VersionSet) Complement() pubgrub.VersionSet {
	return VersionSet{Set: vs.Set.Complement()}
}

// Contains tests if a specific version is in the set.
func (vs VersionSet) Contains(version pubgrub.Version) bool {
	return vs.Set.Contains(asVersion(version))
}

// IsEmpty returns true if the set contains no versions.
func (vs VersionSet) IsEmpty() bool {
	return vs.Set.IsEmpty()
}

// IsSubset returns true if all versions in this set are also in the other.
func (vs VersionSet) IsSubset(other pubgrub.VersionSet) bool {
	return vs.Set.IsSubset(asVersionSet(other).Set)
}

// IsDisjoint returns true if this set and the other have no versions in
// common.
func (vs VersionSet) IsDisjoint(other pubgrub.VersionSet) bool {
	return vs.Set.IsDisjoint(asVersionSet(other).Set)
}

// String returns a human-readable representation of the set.
func (vs VersionSet) String() string {
	return vs.Set.String()
}

// asVersionSet unwraps a resolver set back to this implementation or panics.
func asVersionSet(set pubgrub.VersionSet) VersionSet {
	if vs, ok := set.(VersionSet); ok {
		return vs
	}
	panic("unsupported VersionSet implementation")
}

// asVersion unwraps a resolver version back to Version or panics.
func asVersion(version pubgrub.Version) Version {
	if v, ok := version.(Version); ok {
		return v
	}
	panic("unsupported Version implementation")
}

// Sort compares this version to another resolver version. Foreign version
// types fall back to comparing string forms.
func (v Version) Sort(other pubgrub.Version) int {
	if o, ok := other.(Version); ok {
		return v.Compare(o)
	}
	return strings.Compare(v.String(), other.String())
}

var (
	_ pubgrub.VersionSet = VersionSet{}
	_ pubgrub.Version    = Version{}
)
