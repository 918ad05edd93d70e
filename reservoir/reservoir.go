// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package reservoir - the pending command pool
//
// Commands wait here between submission and the next block. Admission
// checks unsigned commands against the payload validator and remembers
// them by digest for their longevity window, so an unsigned replay
// within the window is refused. Signed commands queue as submitted: a
// repeat from the same account is a fresh command.
package reservoir

import (
	"encoding/hex"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/palletd/commandrecord"
	"github.com/bitmark-inc/palletd/fault"
)

// DefaultBlockInterval - block clock period assumed when not configured
const DefaultBlockInterval = 10 * time.Second

// Reservoir - an in-memory pool of pending commands
type Reservoir struct {
	sync.Mutex

	log   *logger.L
	seen  *gocache.Cache
	queue []commandrecord.Command
}

// New - construct a pool
//
// the dedup window is the unsigned longevity expressed in wall time
func New(blockInterval time.Duration) *Reservoir {
	if blockInterval <= 0 {
		blockInterval = DefaultBlockInterval
	}
	window := time.Duration(Longevity) * blockInterval
	return &Reservoir{
		log:   logger.New("reservoir"),
		seen:  gocache.New(window, blockInterval),
		queue: nil,
	}
}

// Submit - admit a command into the pool
//
// unsigned commands must pass the validator first and carry a dedup
// record for the longevity window; the command encoding has no nonce
// so signed commands are never deduplicated
func (r *Reservoir) Submit(command commandrecord.Command) error {
	unsigned := command.GetOrigin().IsNone()
	if unsigned {
		valid, err := Validate(command)
		if nil != err {
			r.log.Warnf("rejected unsigned: %s", err)
			return err
		}
		r.log.Debugf("admitted unsigned: tag: %s  longevity: %d", valid.Tag, valid.Longevity)
	}

	r.Lock()
	defer r.Unlock()

	if unsigned {
		digest := command.Pack().Digest()
		key := hex.EncodeToString(digest[:])

		if _, found := r.seen.Get(key); found {
			return fault.TransactionInUse
		}
		r.seen.SetDefault(key, struct{}{})
	}

	r.queue = append(r.queue, command)
	return nil
}

// Drain - take every pending command, in submission order
//
// the dedup record outlives the drain so an unsigned same-window
// replay is still refused after its block is built
func (r *Reservoir) Drain() []commandrecord.Command {
	r.Lock()
	defer r.Unlock()

	pending := r.queue
	r.queue = nil
	return pending
}

// Pending - current queue length
func (r *Reservoir) Pending() int {
	r.Lock()
	defer r.Unlock()
	return len(r.queue)
}
