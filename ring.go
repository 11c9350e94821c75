// Copyright (c) 2026 The memorywell authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package memorywell

import (
	"runtime"
	"sync/atomic"
)

// Pos is the opaque token Reserve returns. It is only meaningful when
// passed back to Access or ReleaseMulti, and should never be compared by
// a caller except for equality.
type Pos = uint64

// Ring is a block-oriented circular buffer split into a TX
// (producer-facing) and an RX (consumer-facing) side. It is created once
// by New, lives for as long as the caller needs it, and is torn down
// with Close. The backing memory is owned by the caller throughout.
//
// The S type parameter fixes, at compile time, which of the four
// synchronization strategies (CAS, XCH, MTX, SPL) Reserve/Release use.
type Ring[S Strategy] struct {
	base     []byte
	blkSize  uint64
	blkShift uint
	overflow uint64
	blkCount uint64
	_        [cacheLinePad - 24 - 8 - 8 - 8 - 8]byte

	tx sideState
	rx sideState

	chkCount atomic.Uint32
}

// New attaches mem to a freshly constructed Ring of the given Shape. mem
// must be at least shape.Size() bytes; New does not take ownership of it.
// Initially every block is available to Reserve from TX.
func New[S Strategy](shape Shape, mem []byte) (*Ring[S], error) {
	if uint64(len(mem)) < shape.size {
		return nil, ErrShortMemory
	}

	r := &Ring[S]{
		base:     mem[:shape.size:shape.size],
		blkSize:  shape.blkSize,
		blkShift: shape.blkShift,
		overflow: shape.overflow,
		blkCount: shape.blkCount,
	}
	r.tx.avail.Store(shape.blkCount)
	return r, nil
}

// Close marks the ring as shutting down and blocks until any in-flight
// Loop call has observed the shutdown and returned. It does not touch
// the backing memory, which remains owned by the caller.
func (r *Ring[S]) Close() {
	for {
		cnt := r.chkCount.Load()
		if cnt&closingFlag != 0 {
			break
		}
		if r.chkCount.CompareAndSwap(cnt, cnt|closingFlag) {
			break
		}
	}
	for r.chkCount.Load() != closingFlag {
		runtime.Gosched()
	}
}

func (r *Ring[S]) side(s Side) *sideState {
	if s == TX {
		return &r.tx
	}
	return &r.rx
}

// Reserve grants up to max contiguous blocks from the given side. On
// success cnt is in [1, max] and pos is the token of the first granted
// block; the caller has exclusive access to blocks [pos, pos+cnt) until
// a matching ReleaseSingle or ReleaseMulti completes. On failure cnt is
// 0 and pos is meaningless.
//
// Reserve never blocks, yields, or sleeps: failure is immediate, and
// waiting between attempts is entirely the caller's decision (see
// WaitStrategy).
func (r *Ring[S]) Reserve(from Side, max uint64) (cnt uint64, pos Pos) {
	if max == 0 {
		return 0, 0
	}
	var strat S
	return strat.reserve(r.side(from), max)
}

// ReleaseSingle releases cnt blocks to the opposite side of dst's
// reserver (i.e. a producer releasing blocks it reserved from TX calls
// ReleaseSingle(RX, cnt)). Only one goroutine may call ReleaseSingle on a
// given side at a time; mixing it with ReleaseMulti on the same side is
// undefined behaviour (it bypasses the ordering gate ReleaseMulti relies
// on and can permanently stall it).
//
// Unlike Reserve, ReleaseSingle always succeeds; under MTX/SPL it blocks
// until the lock is acquired.
func (r *Ring[S]) ReleaseSingle(dst Side, cnt uint64) {
	var strat S
	strat.releaseSingle(r.side(dst), cnt)
	r.debugCheckConservation(dst)
}

// ReleaseMulti releases cnt blocks to dst, where pos is the token
// returned by the Reserve call that produced this reservation. Required
// whenever two or more goroutines may hold overlapping reservations on
// the reserving side: it enforces that blocks become visible to dst in
// the order they were reserved, never out of order. Mixing it with
// ReleaseSingle on the same side is undefined behaviour (see
// ReleaseSingle).
//
// Returns cnt on success, or 0 if an earlier reservation on this side
// has not yet been released — the caller retries, typically under a
// WaitStrategy. ReleaseMulti is the only operation in this package that
// can fail under correct usage.
func (r *Ring[S]) ReleaseMulti(dst Side, cnt uint64, pos Pos) uint64 {
	var strat S
	got := strat.releaseMulti(r.side(dst), cnt, pos)
	if got != 0 {
		r.debugCheckConservation(dst)
	}
	return got
}

// Access returns the i-th block of the reservation starting at pos, as a
// slice into the caller-supplied backing memory. It performs no bounds
// check beyond masking the wrap-around: the reservation protocol is the
// bounds check, and calling Access outside a live reservation is
// undefined behaviour.
func (r *Ring[S]) Access(pos Pos, i uint64) []byte {
	off := ((pos + i) << r.blkShift) & r.overflow
	return r.base[off : off+r.blkSize : off+r.blkSize]
}
