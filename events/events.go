// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package events - the per-block domain event log
//
// Events emitted by a successful command appear in emission order;
// the dispatcher truncates events of a failed command and the block
// loop resets the list at each new block. Nothing here is persisted.
package events

import (
	"sync"
)

// Event - a typed domain event
type Event interface {
	String() string
}

// Sink - the append-only per-block event list
type Sink struct {
	sync.Mutex
	list []Event
}

// New - create an empty sink
func New() *Sink {
	return &Sink{
		list: []Event{},
	}
}

// Emit - append an event to the current block list
func (s *Sink) Emit(e Event) {
	s.Lock()
	s.list = append(s.list, e)
	s.Unlock()
}

// Last - the most recently emitted event, nil when empty
func (s *Sink) Last() Event {
	s.Lock()
	defer s.Unlock()
	if 0 == len(s.list) {
		return nil
	}
	return s.list[len(s.list)-1]
}

// Count - events emitted in the current block so far
func (s *Sink) Count() int {
	s.Lock()
	defer s.Unlock()
	return len(s.list)
}

// Truncate - drop events past a previously observed count
//
// used by the dispatcher to roll back events of a failed command
func (s *Sink) Truncate(n int) {
	s.Lock()
	defer s.Unlock()
	if n < 0 {
		n = 0
	}
	if n < len(s.list) {
		s.list = s.list[:n]
	}
}

// Reset - clear the list at a block boundary
func (s *Sink) Reset() {
	s.Lock()
	s.list = []Event{}
	s.Unlock()
}

// List - a copy of the events emitted so far
func (s *Sink) List() []Event {
	s.Lock()
	defer s.Unlock()
	list := make([]Event, len(s.list))
	copy(list, s.list)
	return list
}
