// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run a set of processes and stop them together
package background

import (
	"sync"
)

// Process - a single background process
//
// Run must return promptly once shutdown closes
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - the list of processes to start
type Processes []Process

// T - handle for later stopping the processes
type T struct {
	sync.WaitGroup
	finish chan struct{}
}

// Start - run each process in its own goroutine
func Start(processes Processes, args interface{}) *T {
	register := &T{
		finish: make(chan struct{}),
	}

	register.Add(len(processes))
	for _, p := range processes {
		go func(p Process) {
			defer register.Done()
			p.Run(args, register.finish)
		}(p)
	}
	return register
}

// Stop - signal shutdown and wait for every process to return
func (t *T) Stop() {
	if nil == t {
		return
	}
	close(t.finish)
	t.Wait()
}
