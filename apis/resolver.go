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

package apis

import (
	"context"
)

// FieldRequest carries the inputs the execution engine hands to a field
// resolver: the field being resolved, the parent object value, and the
// already-coerced argument values.
type FieldRequest struct {
	// Field is the name of the field being resolved.
	Field string
	// Source is the parent object value (nil for root fields).
	Source any
	// Args maps argument names to already-coerced values.
	Args map[string]any
}

// FieldResolver produces the value of a single field at execution time.
//
// wirex stores field resolvers as opaque capabilities; it never calls
// ResolveField itself. The contract below binds the execution engine, not
// the wiring layer:
//
//   - Implementations must be safe for concurrent calls.
//   - Implementations must not mutate req.Source or req.Args.
//   - Errors are surfaced by the engine as field-level resolution failures.
type FieldResolver interface {
	// ResolveField returns the value for the requested field.
	ResolveField(ctx context.Context, req FieldRequest) (any, error)
}

// FieldResolverFunc adapts a plain function to the FieldResolver interface.
type FieldResolverFunc func(ctx context.Context, req FieldRequest) (any, error)

// ResolveField calls f.
func (f FieldResolverFunc) ResolveField(ctx context.Context, req FieldRequest) (any, error) {
	return f(ctx, req)
}
