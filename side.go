// Copyright (c) 2026 The memorywell authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package memorywell

import (
	"sync"
	"sync/atomic"
)

const cacheLinePad = 64

// Side identifies one of the two halves of a Ring: TX (producer-facing)
// or RX (consumer-facing). A block released on one side becomes
// reservable on the other.
type Side uint8

const (
	// TX is the producer-facing side: producers Reserve from it and
	// consumers ReleaseSingle/ReleaseMulti to it.
	TX Side = iota
	// RX is the consumer-facing side: consumers Reserve from it and
	// producers ReleaseSingle/ReleaseMulti to it.
	RX
)

func (s Side) String() string {
	if s == TX {
		return "tx"
	}
	return "rx"
}

// sideState holds the mutable state of one half of a Ring: pos (the
// monotonic count of blocks consumed from this side, allowed to wrap),
// avail (the count currently reservable), releasePos (the ordering gate
// used only by ReleaseMulti), and the lock/spin-flag used only by
// MTX/SPL.
//
// Fields are padded out so that each sideState is one 64-byte cache line
// long. The Ring holding it is not allocated on a cache-line boundary,
// so depending on where the Ring lands in memory, a TX-side field and an
// RX-side field can still fall in the same hardware cache line.
type sideState struct {
	pos        atomic.Uint64 // 8
	avail      atomic.Uint64 // 8
	releasePos atomic.Uint64 // 8
	mu         sync.Mutex    // 8
	spin       atomic.Bool   // 1
	_          [cacheLinePad - 8 - 8 - 8 - 8 - 1]byte
}
