// Copyright (c) 2026 The memorywell authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package memorywell

import "errors"

// Sentinel errors. All but ErrClosing are construction errors from Params
// and New; ErrClosing comes from Loop, which can also return its
// context's error. Reservation and release contention is signalled by a
// zero count, never by an error (see Reserve, ReleaseMulti).
var (
	// ErrZeroBlockSize is returned by Params when blkSize is 0.
	ErrZeroBlockSize = errors.New("memorywell: block size must be non-zero")

	// ErrBlockSizeOverflow is returned by Params when rounding blkSize up
	// to the next power of two overflows uint64.
	ErrBlockSizeOverflow = errors.New("memorywell: block size overflows on power-of-two promotion")

	// ErrBufferOverflow is returned by Params when blkSize*blkCount, or
	// its power-of-two promotion, overflows uint64.
	ErrBufferOverflow = errors.New("memorywell: buffer size overflows")

	// ErrShortMemory is returned by New when the supplied backing slice
	// is smaller than Shape.Size().
	ErrShortMemory = errors.New("memorywell: backing memory shorter than ring size")

	// ErrClosing is returned by Loop when the ring has been, or is being,
	// Closed.
	ErrClosing = errors.New("memorywell: ring is closing")
)
