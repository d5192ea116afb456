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

// Package config owns the process-wide strict-mode default for type wiring
// builders.
//
// The default is read exactly once per builder, at builder-construction time.
// Changing it afterwards affects only builders created later; builders that
// already exist keep the flag they were seeded with. The state is a single
// atomic boolean: reads and writes are safe from any goroutine, and a write
// is a plain overwrite with no read-modify-write cycle.
package config

import "sync/atomic"

// DefaultStrictMode is the strict-mode value the process starts with.
// In strict mode, binding a field or default resolver twice on one builder
// is rejected instead of silently overwritten.
const DefaultStrictMode = true

// strictMode is the process-wide strict-mode default cell.
var strictMode atomic.Bool

func init() {
	strictMode.Store(DefaultStrictMode)
}

// SetDefault overwrites the process-wide strict-mode default.
// Visible to builders created after the call; builders created earlier keep
// their originally-seeded flag.
func SetDefault(strict bool) {
	strictMode.Store(strict)
}

// Default returns the current process-wide strict-mode default.
func Default() bool {
	return strictMode.Load()
}
