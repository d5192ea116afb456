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

package wirex

import (
	"dirpx.dev/wirex/config"
	"dirpx.dev/wirex/wiring"
)

// SetStrictModeDefault overwrites the process-wide strict-mode default.
// Only builders created after the call pick up the new value.
// This is a convenience wrapper around the config package.
func SetStrictModeDefault(strict bool) {
	config.SetDefault(strict)
}

// StrictModeDefault returns the current process-wide strict-mode default.
// This is a convenience wrapper around the config package.
func StrictModeDefault() bool {
	return config.Default()
}

// NewTypeWiring returns a new builder for the named schema type, seeded from
// the current process-wide strict-mode default. The name is validated
// eagerly: an empty name fails with errors.ErrInvalidArgument.
func NewTypeWiring(typeName string) (*wiring.Builder, error) {
	b := wiring.NewBuilder()
	if err := b.SetTypeName(typeName); err != nil {
		return nil, err
	}
	return b, nil
}

// TypeWiringOf assembles and finalizes a TypeWiring in one call: it creates
// a builder for typeName, applies the given options in order, and builds.
// The first validation failure aborts and is returned as-is.
func TypeWiringOf(typeName string, opts ...wiring.Option) (wiring.TypeWiring, error) {
	b, err := NewTypeWiring(typeName)
	if err != nil {
		return wiring.TypeWiring{}, err
	}
	if err := b.Apply(opts...); err != nil {
		return wiring.TypeWiring{}, err
	}
	return b.Build()
}
