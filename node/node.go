// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package node - the block clock
//
// Every interval the node seals a block: it advances the height,
// resets the event log, then dispatches the drained pool in
// submission order. The off-chain worker is launched after each block
// and feeds its results back through the pool.
package node

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/palletd/blockheader"
	"github.com/bitmark-inc/palletd/dispatch"
	"github.com/bitmark-inc/palletd/events"
	"github.com/bitmark-inc/palletd/oracle"
	"github.com/bitmark-inc/palletd/reservoir"
	"github.com/bitmark-inc/palletd/storage"
)

// persisted height cell
var heightKey = []byte("height")

// RestoreHeight - reload the persisted height after a restart
func RestoreHeight() uint64 {
	height, _ := storage.Pool.NodeControl.GetN(heightKey)
	blockheader.SetHeight(height)
	return height
}

// Node - the block production loop
type Node struct {
	log        *logger.L
	sink       *events.Sink
	dispatcher *dispatch.Dispatcher
	pool       *reservoir.Reservoir
	worker     *oracle.Worker
	interval   time.Duration
}

// New - construct the node, worker may be nil
func New(
	sink *events.Sink,
	dispatcher *dispatch.Dispatcher,
	pool *reservoir.Reservoir,
	worker *oracle.Worker,
	interval time.Duration,
) *Node {
	if interval <= 0 {
		interval = reservoir.DefaultBlockInterval
	}
	return &Node{
		log:        logger.New("node"),
		sink:       sink,
		dispatcher: dispatcher,
		pool:       pool,
		worker:     worker,
		interval:   interval,
	}
}

// Run - the background process loop
func (n *Node) Run(args interface{}, shutdown <-chan struct{}) {
	n.log.Info("starting…")

	ticker := time.NewTicker(n.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			n.BuildBlock()
		}
	}

	n.log.Info("shutting down…")
	n.log.Flush()
}

// BuildBlock - seal one block from the pending pool
//
// command failures only fail the command; the block always completes
func (n *Node) BuildBlock() uint64 {
	height := blockheader.NewBlock()
	n.sink.Reset()

	pending := n.pool.Drain()
	failures := 0
	for _, command := range pending {
		err := n.dispatcher.Dispatch(command)
		if nil != err {
			failures += 1
		}
	}

	n.log.Infof("block: %d  commands: %d  failed: %d  events: %d", height, len(pending), failures, n.sink.Count())

	// persist the height so a restart resumes the chain
	trx, err := storage.NewDBTransaction()
	if nil == err {
		trx.PutN(storage.Pool.NodeControl, heightKey, height)
		err = trx.Commit()
	}
	if nil != err {
		n.log.Criticalf("height persist error: %s", err)
	}

	if nil != n.worker {
		go n.worker.Run(height)
	}
	return height
}
