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

// EnumValuesProvider maps enum literals of one schema enum type to the
// internal runtime values the execution engine should substitute for them.
//
// wirex stores the provider as an opaque capability and never calls it.
type EnumValuesProvider interface {
	// EnumValue returns the runtime value for the given enum literal.
	// The second result reports whether the literal is known.
	EnumValue(literal string) (any, bool)
}

// EnumValuesFunc adapts a plain function to the EnumValuesProvider interface.
type EnumValuesFunc func(literal string) (any, bool)

// EnumValue calls f.
func (f EnumValuesFunc) EnumValue(literal string) (any, bool) {
	return f(literal)
}
