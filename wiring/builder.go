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
	"reflect"
	"sort"

	"github.com/ygrebnov/errorc"

	"dirpx.dev/wirex/apis"
	"dirpx.dev/wirex/config"
	"dirpx.dev/wirex/errors"
)

// Builder accumulates the resolution bindings for exactly one schema type and
// finalizes them into an immutable TypeWiring.
//
// Each mutator validates its arguments and, under strict mode, rejects
// duplicate bindings; a failed call leaves the builder unchanged. Capability
// arguments that are nil — including typed-nil pointers and nil funcs stored
// in an interface — are rejected as absent. A Builder is meant for a single
// goroutine during assembly; only the process-wide strict-mode default in
// package config is safe to touch concurrently.
//
// Build is non-destructive: the builder stays usable and every Build call
// snapshots the state at that moment.
type Builder struct {
	typeName        string
	fieldOrder      []string
	fieldResolvers  map[string]apis.FieldResolver
	defaultResolver apis.FieldResolver
	discriminator   apis.TypeDiscriminator
	enumValues      apis.EnumValuesProvider
	strict          bool
}

// NewBuilder returns an empty builder. Its strict-mode flag is seeded from
// the process-wide default at this moment; later changes to the default do
// not affect it.
func NewBuilder() *Builder {
	return &Builder{
		fieldResolvers: make(map[string]apis.FieldResolver),
		strict:         config.Default(),
	}
}

// SetTypeName sets or overwrites the schema type name. The name is mandatory
// before Build.
func (b *Builder) SetTypeName(name string) error {
	if name == "" {
		return invalidArgument("typeName")
	}
	b.typeName = name
	return nil
}

// TypeName returns the type name set so far, which may still be empty.
func (b *Builder) TypeName() string {
	return b.typeName
}

// SetStrictMode overrides the strict-mode flag for this builder only,
// independent of the process-wide default.
func (b *Builder) SetStrictMode(strict bool) {
	b.strict = strict
}

// StrictMode returns the builder's effective strict-mode flag.
func (b *Builder) StrictMode() bool {
	return b.strict
}

// AddFieldResolver binds a resolver to a field. Under strict mode, binding a
// field that already has a resolver fails with errors.ErrDuplicateBinding
// naming the field; under lenient mode the new resolver replaces the old one
// and the field keeps its original position.
func (b *Builder) AddFieldResolver(field string, resolver apis.FieldResolver) error {
	if isNilCapability(resolver) {
		return invalidArgument("resolver")
	}
	if field == "" {
		return invalidArgument("fieldName")
	}
	if b.strict {
		if err := b.checkFieldUnbound(field); err != nil {
			return err
		}
	}
	b.putFieldResolver(field, resolver)
	return nil
}

// AddFieldResolvers binds resolvers for several fields at once. The whole
// batch is validated before any entry is applied, so a rejected batch leaves
// the builder unchanged. New fields are applied in lexical order, since Go
// maps carry no order of their own.
func (b *Builder) AddFieldResolvers(resolvers map[string]apis.FieldResolver) error {
	if resolvers == nil {
		return invalidArgument("resolvers")
	}

	fields := make([]string, 0, len(resolvers))
	for field := range resolvers {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		if isNilCapability(resolvers[field]) {
			return invalidArgument("resolver")
		}
		if field == "" {
			return invalidArgument("fieldName")
		}
		if b.strict {
			if err := b.checkFieldUnbound(field); err != nil {
				return err
			}
		}
	}

	for _, field := range fields {
		b.putFieldResolver(field, resolvers[field])
	}
	return nil
}

// SetDefaultResolver binds the fallback resolver used for any field without
// an explicit binding. Under strict mode a second call fails with
// errors.ErrDuplicateBinding naming the type; under lenient mode the later
// value wins.
func (b *Builder) SetDefaultResolver(resolver apis.FieldResolver) error {
	if isNilCapability(resolver) {
		return invalidArgument("resolver")
	}
	if b.strict && b.defaultResolver != nil {
		return errorc.With(
			errors.ErrDuplicateBinding,
			errorc.String(errors.ErrorFieldBinding, "default resolver"),
			errorc.String(errors.ErrorFieldTypeName, b.typeName),
		)
	}
	b.defaultResolver = resolver
	return nil
}

// SetTypeDiscriminator binds the discriminator used to resolve concrete types
// for interface and union values. A later call overwrites an earlier one;
// "at most one" is enforced by the consuming engine, not here.
func (b *Builder) SetTypeDiscriminator(discriminator apis.TypeDiscriminator) error {
	if isNilCapability(discriminator) {
		return invalidArgument("discriminator")
	}
	b.discriminator = discriminator
	return nil
}

// SetEnumValues binds the enum literal to runtime value provider. A later
// call overwrites an earlier one.
func (b *Builder) SetEnumValues(provider apis.EnumValuesProvider) error {
	if isNilCapability(provider) {
		return invalidArgument("enumValues")
	}
	b.enumValues = provider
	return nil
}

// Apply runs the given options against the builder in order, stopping at the
// first failure.
func (b *Builder) Apply(opts ...Option) error {
	for _, opt := range opts {
		if opt == nil {
			return invalidArgument("option")
		}
		if err := opt(b); err != nil {
			return err
		}
	}
	return nil
}

// Build finalizes the current state into an immutable TypeWiring. It fails
// with errors.ErrInvalidArgument if no type name was set. The builder stays
// usable afterwards; the returned wiring never aliases builder state.
func (b *Builder) Build() (TypeWiring, error) {
	if b.typeName == "" {
		return TypeWiring{}, invalidArgument("typeName")
	}

	order := make([]string, len(b.fieldOrder))
	copy(order, b.fieldOrder)
	fields := make(map[string]apis.FieldResolver, len(b.fieldResolvers))
	for k, v := range b.fieldResolvers {
		fields[k] = v
	}

	return TypeWiring{
		typeName:        b.typeName,
		fieldOrder:      order,
		fieldResolvers:  fields,
		defaultResolver: b.defaultResolver,
		discriminator:   b.discriminator,
		enumValues:      b.enumValues,
	}, nil
}

// checkFieldUnbound reports a duplicate-binding error if field already has a
// resolver.
func (b *Builder) checkFieldUnbound(field string) error {
	if _, ok := b.fieldResolvers[field]; ok {
		return errorc.With(
			errors.ErrDuplicateBinding,
			errorc.String(errors.ErrorFieldBinding, "field resolver"),
			errorc.String(errors.ErrorFieldFieldName, field),
		)
	}
	return nil
}

// putFieldResolver inserts or overwrites one mapping, tracking insertion
// order for new fields.
func (b *Builder) putFieldResolver(field string, resolver apis.FieldResolver) {
	if _, ok := b.fieldResolvers[field]; !ok {
		b.fieldOrder = append(b.fieldOrder, field)
	}
	b.fieldResolvers[field] = resolver
}

// isNilCapability reports whether a capability interface is nil or wraps a
// typed nil, so that present-but-nil bindings can never reach a TypeWiring.
func isNilCapability(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// invalidArgument builds an ErrInvalidArgument naming the offending argument.
func invalidArgument(argument string) error {
	return errorc.With(
		errors.ErrInvalidArgument,
		errorc.String(errors.ErrorFieldArgument, argument),
	)
}
