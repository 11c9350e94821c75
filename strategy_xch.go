// Copyright (c) 2026 The memorywell authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package memorywell

// XCH reserves by exchanging avail for zero in one atomic step, handing
// back whatever exceeds the request. Like CAS it is lock-free, but it
// never retries: a single exchange either grants everything available or
// observes zero.
type XCH struct{}

func (XCH) reserve(s *sideState, max uint64) (uint64, uint64) {
	got := s.avail.Swap(0)
	if got == 0 {
		return 0, 0
	}
	granted := got
	if granted > max {
		s.avail.Add(got - max)
		granted = max
	}
	pos := s.pos.Add(granted) - granted
	return granted, pos
}

func (XCH) releaseSingle(s *sideState, cnt uint64) {
	s.avail.Add(cnt)
}

func (XCH) releaseMulti(s *sideState, cnt, pos uint64) uint64 {
	if !s.releasePos.CompareAndSwap(pos, pos+cnt) {
		return 0
	}
	s.avail.Add(cnt)
	return cnt
}
