// Copyright (c) 2026 The memorywell authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package memorywell

// strategy implements the reserve/release contract of spec.md §4.3-4.4
// against a single sideState. It never blocks in reserve: a failed
// attempt returns (0, 0) immediately and the caller decides whether to
// retry, and under what WaitStrategy.
type strategy interface {
	// reserve grants up to max blocks from s, or fails with (0, 0).
	reserve(s *sideState, max uint64) (cnt, pos uint64)
	// releaseSingle releases cnt blocks to s. Only valid when the caller
	// guarantees it is the only releaser on this side.
	releaseSingle(s *sideState, cnt uint64)
	// releaseMulti releases cnt blocks to s, ordered by pos (the value
	// reserve returned for this reservation). Returns cnt on success, 0
	// if another reservation must be released first (retryable).
	releaseMulti(s *sideState, cnt, pos uint64) uint64
}

// Strategy is the set of synchronization techniques a Ring may be
// instantiated with: CAS, XCH, MTX, SPL. It is fixed at the call site
// that instantiates Ring[S], never chosen at runtime.
type Strategy = strategy
