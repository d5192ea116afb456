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

// Package errors declares the wirex error taxonomy.
//
// There are exactly two classes of failure, both programmer-error-class and
// both surfaced synchronously at the offending call:
//
//   - ErrInvalidArgument: a mandatory argument (type name, field name,
//     resolver, map) was absent or empty.
//   - ErrDuplicateBinding: under strict mode, a field resolver or the default
//     resolver was assigned twice on the same builder.
//
// Match them with errors.Is. Errors built on top of these sentinels carry
// structured fields (via errorc) naming the offending argument, field, or
// type, so callers can report precisely what was misconfigured.
package errors

import "github.com/ygrebnov/errorc"

var namespace = errorc.Namespace("wirex")

// Sentinel errors for wiring-assembly misuses. Use errors.Is to match.
var (
	ErrInvalidArgument  = namespace.NewError("required argument is missing or empty")
	ErrDuplicateBinding = namespace.NewError("binding is already defined")
)

var newKey = errorc.KeyFactory("wirex")

// Internal hierarchical segments used to build dotted keys.
const (
	keySegmentType  = "type"
	keySegmentField = "field"
)

// Exported structured error field keys.
var (
	// ErrorFieldArgument names the mandatory argument that was absent or empty.
	ErrorFieldArgument = newKey("argument") // wirex.argument
	// ErrorFieldBinding names the kind of binding that was defined twice.
	ErrorFieldBinding = newKey("binding") // wirex.binding
	// ErrorFieldTypeName carries the schema type name involved in the failure.
	ErrorFieldTypeName = newKey("name", keySegmentType) // wirex.type.name
	// ErrorFieldFieldName carries the field name involved in the failure.
	ErrorFieldFieldName = newKey("name", keySegmentField) // wirex.field.name
)
