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

// Package semverpubgrub provides a Boolean set algebra over semantic version
// requirements, suitable for driving a PubGrub-style dependency resolver.
//
// A textual requirement like ">=1.2.3, <1.5.0" answers only one question:
// does a given version satisfy it? A resolver needs more — it reasons about
// versions excluded by prior decisions, so it needs complement, intersection,
// union, emptiness tests, and singleton construction over requirements.
// SemverPubgrub is the canonical value supporting that algebra, and
// FromRequirement translates a requirement into one such that
//
//	FromRequirement(req).Contains(v) == req.Matches(v)
//
// for every version v, including the pre-release visibility rule: a
// pre-release version is only visible when some comparator names a pre-release
// at exactly the same major.minor.patch triple.
//
// Internally a SemverPubgrub is a sorted, disjoint interval set over release
// triples, a default pre-release policy (exclude-all or include-all), and
// per-triple pre-release tag ranges overriding that default. Pre-release
// membership never consults the release range, which is what keeps the
// algebra closed under complement and intersection.
//
// All values are immutable; every operation is a pure function and safe for
// concurrent use. The VersionSet adapter plugs these sets into the
// github.com/contriboss/pubgrub-go solver.
package semverpubgrub
