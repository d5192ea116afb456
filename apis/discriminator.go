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

// TypeDiscriminator resolves the concrete schema type name for a value of a
// polymorphic (interface or union) type.
//
// wirex stores the discriminator as an opaque capability; the execution
// engine calls it. Interface and union types must carry one, but that rule
// is enforced by the consuming engine, not by the wiring layer.
type TypeDiscriminator interface {
	// DiscriminateType returns the concrete type name for value.
	DiscriminateType(ctx context.Context, value any) (string, error)
}

// TypeDiscriminatorFunc adapts a plain function to the TypeDiscriminator
// interface.
type TypeDiscriminatorFunc func(ctx context.Context, value any) (string, error)

// DiscriminateType calls f.
func (f TypeDiscriminatorFunc) DiscriminateType(ctx context.Context, value any) (string, error) {
	return f(ctx, value)
}
