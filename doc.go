/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package wirex assembles per-type runtime bindings for a schema execution
// engine.
//
// Given the name of a schema type, wirex collects the resolution behaviors
// attached to that type — one field resolver per bound field, an optional
// default resolver for every other field, an optional type discriminator for
// interface/union types, and an optional enum-values provider — and
// finalizes them into an immutable wiring.TypeWiring. The schema-construction
// engine that consumes the wiring, and the execution engine that eventually
// invokes the resolvers, are external collaborators: wirex never calls a
// resolver and never checks field names against an actual schema.
//
// # Design
//
// The module is split into four small packages:
//
//   - apis: the opaque capability contracts (FieldResolver,
//     TypeDiscriminator, EnumValuesProvider) supplied by the execution
//     engine. wirex stores them; it does not interpret them.
//
//   - config: the process-wide strict-mode default. A single atomic boolean,
//     strict by default. Each builder reads it once, at construction, so a
//     builder's behavior is a pure function of its own state afterwards.
//
//   - wiring: the Builder that accumulates bindings for one type, and the
//     immutable TypeWiring it produces. In strict mode, binding the same
//     field twice or setting the default resolver twice is rejected at the
//     offending call; in lenient mode the last write wins. Field insertion
//     order is preserved for deterministic iteration.
//
//   - errors: the two-sentinel taxonomy (ErrInvalidArgument,
//     ErrDuplicateBinding) with structured fields naming the offending
//     argument, field, or type.
//
// # Usage
//
// The usual pattern is one builder per schema type, assembled sequentially
// and finalized once:
//
//	b, err := wirex.NewTypeWiring("Pet")
//	if err != nil { ... }
//	if err := b.AddFieldResolver("name", nameResolver); err != nil { ... }
//	if err := b.SetDefaultResolver(fallback); err != nil { ... }
//	tw, err := b.Build()
//
// or, in one call:
//
//	tw, err := wirex.TypeWiringOf("Pet",
//		wiring.WithFieldResolver("name", nameResolver),
//		wiring.WithDefaultResolver(fallback),
//	)
//
// # Concurrency model
//
// A single builder is single-writer: it is meant to be assembled by one
// goroutine, and concurrent mutation of one builder is out of scope. The only
// shared mutable state is the strict-mode default in config, which is an
// atomic cell safe for concurrent reads and writes. Mutating the default
// never affects builders that already exist.
//
// # Failure policy
//
// All failures are programmer-error-class and synchronous: a call that
// violates its contract returns an error immediately and leaves the builder
// unchanged (batch insertion validates the whole batch before applying any
// entry). There is no logging, retry, or fallback layer inside this module;
// callers decide how to surface assembly failures.
//
// # Scope
//
// wirex is intentionally small. It does not validate field names against a
// schema, does not invoke resolution logic, and does not merge wirings
// across builders. Those jobs belong to the consuming engine.
package wirex
