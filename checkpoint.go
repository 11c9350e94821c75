// Copyright (c) 2026 The memorywell authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package memorywell

import "context"

// closingFlag is the high bit of Ring.chkCount. Close sets it, then
// spins until the remaining bits (the count of in-flight Loop calls)
// drop to zero.
const closingFlag = uint32(1) << 31

// Checkpoint is a snapshot produced by Ring.Snapshot, later passed to
// Ring.Verify to find out whether everything released so far has been
// drained by the other side.
type Checkpoint struct {
	diff           uint64
	actualReceiver uint64
}

// actualSender is the most conservative position a sender can treat as
// "drained up to": the RX side's position plus what it still has
// available, i.e. one past the last block any consumer has finished
// releasing back to TX.
func (r *Ring[S]) actualSender() uint64 {
	// Read rx.pos before rx.avail: this can only make the result
	// stale-LOW, never stale-high, which keeps checkpoint.diff from being
	// overestimated.
	pos := r.rx.pos.Load()
	avail := r.rx.avail.Load()
	return pos + avail
}

// actualReceiver is the most conservative position a receiver could have
// read up to: the TX side's available count plus its position, i.e. one
// past the last block any producer has finished releasing to RX.
func (r *Ring[S]) actualReceiver() uint64 {
	// Read tx.avail before tx.pos: stale-HIGH is acceptable here (it only
	// makes Verify's job easier, never causes a false negative on diff).
	avail := r.tx.avail.Load()
	pos := r.tx.pos.Load()
	return pos + avail
}

// Snapshot captures the ring's current drain state for a later Verify
// call. If the ring is already closing, Snapshot returns a zero
// Checkpoint that Verify will immediately report as satisfied.
func (r *Ring[S]) Snapshot() Checkpoint {
	if r.chkCount.Load()&closingFlag != 0 {
		return Checkpoint{}
	}
	sender := r.actualSender()
	receiver := r.actualReceiver()
	return Checkpoint{diff: sender - receiver, actualReceiver: receiver}
}

// Verify reports whether every block outstanding at the time chk was
// taken has since been released by the consumer side, even in the
// presence of other producers interleaving releases after chk was taken.
//
// Verify also reports true if the ring is observably fully drained
// (TX.pos == RX.pos), which handles the case where the position counters
// have lapped all the way around since chk was taken. This second clause
// is a best-effort signal, not a hard guarantee: in the rare case where
// both counters wrap to the same value while data is still genuinely in
// flight, Verify can report a false positive. That tradeoff is accepted
// rather than fixed, to avoid Loop waiting forever on a buffer that has
// simply gone idle.
func (r *Ring[S]) Verify(chk Checkpoint) bool {
	receiver := r.actualReceiver()
	if receiver-chk.actualReceiver >= chk.diff {
		return true
	}
	return r.tx.pos.Load() == r.rx.pos.Load()
}

// Loop blocks until Verify(chk) is true for a checkpoint taken at the
// start of the call, the ring is Closed, or ctx is cancelled — whichever
// happens first. Between failed Verify attempts it calls wait.Wait.
//
// A reference count of in-flight Loop calls, with the high bit of
// Ring.chkCount reserved as a "closing" flag, synchronizes Loop with
// Close: Close sets the flag and then waits for every Loop already
// running to observe it and return.
func (r *Ring[S]) Loop(ctx context.Context, wait WaitStrategy) error {
	for {
		cnt := r.chkCount.Load()
		if cnt&closingFlag != 0 {
			return ErrClosing
		}
		if r.chkCount.CompareAndSwap(cnt, cnt+1) {
			break
		}
	}
	defer r.chkCount.Add(^uint32(0))

	chk := r.Snapshot()
	for attempt := 0; !r.Verify(chk); attempt++ {
		if r.chkCount.Load()&closingFlag != 0 {
			return ErrClosing
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		wait.Wait(attempt)
	}
	return nil
}
