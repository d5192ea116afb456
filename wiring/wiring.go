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

package wiring

import (
	"dirpx.dev/wirex/apis"
)

// TypeWiring is the immutable bundle of resolution bindings assembled for one
// schema type: one field resolver per bound field, an optional default
// resolver for unbound fields, an optional type discriminator for polymorphic
// types, and an optional enum-values provider for enum types.
//
// A TypeWiring is produced by Builder.Build and never changes afterwards.
// Accessors that expose collections return copies, so callers cannot reach
// the wiring's internal state.
type TypeWiring struct {
	typeName        string
	fieldOrder      []string
	fieldResolvers  map[string]apis.FieldResolver
	defaultResolver apis.FieldResolver
	discriminator   apis.TypeDiscriminator
	enumValues      apis.EnumValuesProvider
}

// TypeName returns the name of the schema type this wiring binds to.
// It is never empty.
func (w TypeWiring) TypeName() string {
	return w.typeName
}

// FieldNames returns the bound field names in insertion order. Fields that
// were overwritten in lenient mode keep their original position. The returned
// slice is a copy.
func (w TypeWiring) FieldNames() []string {
	out := make([]string, len(w.fieldOrder))
	copy(out, w.fieldOrder)
	return out
}

// FieldResolver returns the resolver bound to the given field, if any.
func (w TypeWiring) FieldResolver(field string) (apis.FieldResolver, bool) {
	r, ok := w.fieldResolvers[field]
	return r, ok
}

// FieldResolvers returns a copy of the field-to-resolver mapping. Iteration
// order of the returned map is unspecified; use FieldNames for deterministic
// order.
func (w TypeWiring) FieldResolvers() map[string]apis.FieldResolver {
	out := make(map[string]apis.FieldResolver, len(w.fieldResolvers))
	for k, v := range w.fieldResolvers {
		out[k] = v
	}
	return out
}

// DefaultResolver returns the fallback resolver used for fields without an
// explicit binding, if one was set.
func (w TypeWiring) DefaultResolver() (apis.FieldResolver, bool) {
	return w.defaultResolver, w.defaultResolver != nil
}

// TypeDiscriminator returns the discriminator for polymorphic types, if one
// was set.
func (w TypeWiring) TypeDiscriminator() (apis.TypeDiscriminator, bool) {
	return w.discriminator, w.discriminator != nil
}

// EnumValues returns the enum-values provider, if one was set.
func (w TypeWiring) EnumValues() (apis.EnumValuesProvider, bool) {
	return w.enumValues, w.enumValues != nil
}
