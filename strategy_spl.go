// Copyright (c) 2026 The memorywell authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package memorywell

import "runtime"

// SPL reserves and releases under a spinlock built from a test-and-set
// flag rather than sync.Mutex. Its contract mirrors MTX exactly; the only
// difference is the lock primitive.
type SPL struct{}

// tryLock attempts to set s.spin, returning true on success. It is the
// Go equivalent of __atomic_test_and_set.
func (s *sideState) tryLock() bool {
	return s.spin.CompareAndSwap(false, true)
}

// unlock clears s.spin. It is the Go equivalent of __atomic_clear.
func (s *sideState) unlock() {
	s.spin.Store(false)
}

func (SPL) reserve(s *sideState, max uint64) (uint64, uint64) {
	if !s.tryLock() {
		return 0, 0
	}
	defer s.unlock()

	avail := s.avail.Load()
	if avail == 0 {
		return 0, 0
	}
	granted := avail
	if granted > max {
		granted = max
	}
	s.avail.Store(avail - granted)
	pos := s.pos.Load()
	s.pos.Store(pos + granted)
	return granted, pos
}

func (SPL) releaseSingle(s *sideState, cnt uint64) {
	for !s.tryLock() {
		runtime.Gosched()
	}
	s.avail.Store(s.avail.Load() + cnt)
	s.unlock()
}

func (SPL) releaseMulti(s *sideState, cnt, pos uint64) uint64 {
	if !s.tryLock() {
		return 0
	}
	defer s.unlock()

	if s.releasePos.Load() != pos {
		return 0
	}
	s.avail.Store(s.avail.Load() + cnt)
	s.releasePos.Store(pos + cnt)
	return cnt
}
