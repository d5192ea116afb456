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

package wiring_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/wirex/apis"
	"dirpx.dev/wirex/wiring"
)

// TestBuild_SnapshotIsolation verifies that a built wiring never aliases
// builder state: mutating the builder after Build must not change wirings
// built earlier, and repeated Build calls produce independent snapshots.
func TestBuild_SnapshotIsolation(t *testing.T) {
	r1 := staticResolver{id: "r1"}
	r2 := staticResolver{id: "r2"}

	b := wiring.NewBuilder()
	b.SetStrictMode(false)
	require.NoError(t, b.SetTypeName("Pet"))
	require.NoError(t, b.AddFieldResolver("name", r1))

	first, err := b.Build()
	require.NoError(t, err)

	// Mutate the builder after the first snapshot.
	require.NoError(t, b.AddFieldResolver("age", r2))
	require.NoError(t, b.AddFieldResolver("name", r2))
	require.NoError(t, b.SetTypeName("Animal"))

	second, err := b.Build()
	require.NoError(t, err)

	if !assert.Equal(t, []string{"name"}, first.FieldNames()) {
		t.Log(spew.Sdump(first))
	}
	got, ok := first.FieldResolver("name")
	require.True(t, ok)
	assert.Equal(t, r1, got)
	assert.Equal(t, "Pet", first.TypeName())

	assert.Equal(t, "Animal", second.TypeName())
	assert.Equal(t, []string{"name", "age"}, second.FieldNames())
	got, ok = second.FieldResolver("name")
	require.True(t, ok)
	assert.Equal(t, r2, got)
}

// TestAccessors_ReturnCopies verifies that mutating what the accessors return
// cannot reach into the wiring.
func TestAccessors_ReturnCopies(t *testing.T) {
	r1 := staticResolver{id: "r1"}

	b := wiring.NewBuilder()
	require.NoError(t, b.SetTypeName("Pet"))
	require.NoError(t, b.AddFieldResolver("name", r1))

	tw, err := b.Build()
	require.NoError(t, err)

	names := tw.FieldNames()
	names[0] = "mutated"
	assert.Equal(t, []string{"name"}, tw.FieldNames())

	resolvers := tw.FieldResolvers()
	resolvers["injected"] = r1
	delete(resolvers, "name")
	assert.Equal(t, map[string]apis.FieldResolver{"name": r1}, tw.FieldResolvers())
}

func TestZeroValueOptionals_Absent(t *testing.T) {
	b := wiring.NewBuilder()
	require.NoError(t, b.SetTypeName("Episode"))

	tw, err := b.Build()
	require.NoError(t, err)

	def, ok := tw.DefaultResolver()
	assert.False(t, ok)
	assert.Nil(t, def)

	d, ok := tw.TypeDiscriminator()
	assert.False(t, ok)
	assert.Nil(t, d)

	p, ok := tw.EnumValues()
	assert.False(t, ok)
	assert.Nil(t, p)
}
