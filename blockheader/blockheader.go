// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockheader - maintain the current block number
//
// Commands within a block are serialized; the block number and the
// per-block extrinsic index together label each state transition.
package blockheader

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/palletd/fault"
)

// globals for header
type blockData struct {
	sync.RWMutex // to allow locking

	log *logger.L

	height         uint64 // the current block height
	extrinsicIndex uint32 // position of the executing command in the block

	// set once during initialise
	initialised bool
}

// global data
var globalData blockData

// Initialise - setup the current block data
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("blockheader")
	globalData.log = log
	log.Info("starting…")

	globalData.height = 0
	globalData.extrinsicIndex = 0

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - shutdown the block header system
func Finalise() error {
	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.initialised = false
	return nil
}

// Height - return the current block height
func Height() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.height
}

// NewBlock - advance to the next block
//
// returns the new height; the extrinsic index restarts at zero
func NewBlock() uint64 {
	globalData.Lock()
	defer globalData.Unlock()
	globalData.height += 1
	globalData.extrinsicIndex = 0
	return globalData.height
}

// SetHeight - overwrite the current height
//
// used when restoring state and in tests
func SetHeight(height uint64) {
	globalData.Lock()
	defer globalData.Unlock()
	globalData.height = height
	globalData.extrinsicIndex = 0
}

// ExtrinsicIndex - index of the command currently executing
func ExtrinsicIndex() uint32 {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.extrinsicIndex
}

// NextExtrinsicIndex - allocate the index for the next command
func NextExtrinsicIndex() uint32 {
	globalData.Lock()
	defer globalData.Unlock()
	index := globalData.extrinsicIndex
	globalData.extrinsicIndex += 1
	return index
}
