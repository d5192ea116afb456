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

package config_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/wirex/config"
)

// restoreDefault puts the process-wide default back after a test.
func restoreDefault(t *testing.T) {
	t.Helper()
	prev := config.Default()
	t.Cleanup(func() { config.SetDefault(prev) })
}

func TestInitialDefault_IsStrict(t *testing.T) {
	restoreDefault(t)
	config.SetDefault(config.DefaultStrictMode)
	assert.True(t, config.Default(), "process must start strict")
}

func TestSetDefault_Overwrites(t *testing.T) {
	restoreDefault(t)

	config.SetDefault(false)
	assert.False(t, config.Default())

	config.SetDefault(true)
	assert.True(t, config.Default())
}

// TestConcurrentSetAndGet verifies that the default cell tolerates concurrent
// readers and writers without torn reads. Run with -race.
func TestConcurrentSetAndGet(t *testing.T) {
	restoreDefault(t)

	const (
		writers    = 8
		readers    = 8
		iterations = 1000
	)

	var wg sync.WaitGroup
	wg.Add(writers + readers)

	for w := 0; w < writers; w++ {
		go func(strict bool) {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				config.SetDefault(strict)
			}
		}(w%2 == 0)
	}
	for r := 0; r < readers; r++ {
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				// The read must always be a value some writer stored.
				_ = config.Default()
			}
		}()
	}

	wg.Wait()
}
