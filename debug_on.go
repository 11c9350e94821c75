// Copyright (c) 2026 The memorywell authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

//go:build memorywell_debug

package memorywell

import "fmt"

// debugCheckConservation panics if avail(tx)+avail(rx) exceeds the ring's
// total block count. Outstanding reservations only ever subtract from
// that sum, never add to it, so the sum exceeding blkCount is proof a
// caller released more blocks than it reserved, or released the same
// reservation twice. Mixing ReleaseSingle and ReleaseMulti on one side is
// not detected. Built only under the memorywell_debug tag so production
// builds pay nothing for it.
func (r *Ring[S]) debugCheckConservation(dst Side) {
	sum := r.tx.avail.Load() + r.rx.avail.Load()
	if sum > r.blkCount {
		panic(fmt.Sprintf(
			"memorywell: release to %s pushed avail(tx)+avail(rx)=%d past blkCount=%d: over-release or double-release",
			dst, sum, r.blkCount))
	}
}
