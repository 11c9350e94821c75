// Copyright (c) 2026 The memorywell authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package memorywell provides a lock-free, block-oriented circular buffer
// ("well") for passing fixed-size blocks between one or more producer
// goroutines and one or more consumer goroutines within a single process.
//
// # Shape
//
// A Ring is split into two halves, TX (producer-facing) and RX
// (consumer-facing). Blocks flow TX -> RX: a producer Reserves on TX,
// writes into the region returned by Access, then Releases the blocks
// to RX; a consumer does the mirror operation, Reserving on RX and
// Releasing back to TX.
//
//	shape, err := memorywell.Params(64, 1024)
//	mem := make([]byte, shape.Size())
//	ring, err := memorywell.New[memorywell.CAS](shape, mem)
//
//	cnt, pos := ring.Reserve(memorywell.TX, 1)
//	copy(ring.Access(pos, 0), payload)
//	ring.ReleaseSingle(memorywell.RX, cnt)
//
//	cnt, pos = ring.Reserve(memorywell.RX, 1)
//	data := ring.Access(pos, 0)
//	ring.ReleaseSingle(memorywell.TX, cnt)
//
// # Synchronization strategies
//
// Ring is generic over a Strategy type parameter, fixed at the call site
// that instantiates it: CAS and XCH are lock-free, MTX and SPL use a
// mutex or a spinlock respectively. All four share the same contract.
//
// # What this package is not
//
// It is not resizable once created, not aware of the type of data stored
// in a block, and it does not schedule or wait on the caller's behalf:
// Reserve and ReleaseMulti never block, and a failed attempt is the
// caller's cue to apply a WaitStrategy. Zero-copy I/O, splicing against
// pipes or memory-mapped files, and cross-process shared memory are
// explicitly out of scope; those belong in a layer built on top of this
// package.
package memorywell
