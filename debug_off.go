// Copyright (c) 2026 The memorywell authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

//go:build !memorywell_debug

package memorywell

// debugCheckConservation is a no-op in production builds. See
// debug_on.go for what it checks under the memorywell_debug build tag.
func (r *Ring[S]) debugCheckConservation(Side) {}
