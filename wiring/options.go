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

// Option is one assembly step applied to a Builder. Options are applied in
// order and validated exactly like the builder method each one wraps.
type Option func(*Builder) error

// WithTypeName sets the schema type name.
func WithTypeName(name string) Option {
	return func(b *Builder) error {
		return b.SetTypeName(name)
	}
}

// WithStrictMode overrides the builder-local strict-mode flag.
func WithStrictMode(strict bool) Option {
	return func(b *Builder) error {
		b.SetStrictMode(strict)
		return nil
	}
}

// WithFieldResolver binds a resolver to a field.
func WithFieldResolver(field string, resolver apis.FieldResolver) Option {
	return func(b *Builder) error {
		return b.AddFieldResolver(field, resolver)
	}
}

// WithFieldResolvers binds resolvers for several fields at once.
func WithFieldResolvers(resolvers map[string]apis.FieldResolver) Option {
	return func(b *Builder) error {
		return b.AddFieldResolvers(resolvers)
	}
}

// WithDefaultResolver binds the fallback resolver for unbound fields.
func WithDefaultResolver(resolver apis.FieldResolver) Option {
	return func(b *Builder) error {
		return b.SetDefaultResolver(resolver)
	}
}

// WithTypeDiscriminator binds the concrete-type discriminator.
func WithTypeDiscriminator(discriminator apis.TypeDiscriminator) Option {
	return func(b *Builder) error {
		return b.SetTypeDiscriminator(discriminator)
	}
}

// WithEnumValues binds the enum literal to runtime value provider.
func WithEnumValues(provider apis.EnumValuesProvider) Option {
	return func(b *Builder) error {
		return b.SetEnumValues(provider)
	}
}
