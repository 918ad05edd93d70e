// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package random - the per-block randomness capability
//
// The real beacon is an external collaborator; the runtime only
// requires that every caller inside one block observes the same seed.
package random

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"

	"github.com/bitmark-inc/palletd/blockheader"
)

// SeedSize - length of a beacon seed
const SeedSize = 32

// Beacon - seed bytes for the current block
type Beacon interface {
	Seed() [SeedSize]byte
}

// blockBeacon - deterministic in-process beacon
//
// seed = blake2b-256(salt + block number); identical for all callers
// within the same block
type blockBeacon struct {
	salt [SeedSize]byte
}

// NewBlockBeacon - beacon salted per deployment
func NewBlockBeacon(salt []byte) Beacon {
	b := &blockBeacon{}
	copy(b.salt[:], salt)
	return b
}

func (b *blockBeacon) Seed() [SeedSize]byte {
	buffer := make([]byte, 0, SeedSize+8)
	buffer = append(buffer, b.salt[:]...)

	height := make([]byte, 8)
	binary.BigEndian.PutUint64(height, blockheader.Height())
	buffer = append(buffer, height...)

	return blake2b.Sum256(buffer)
}

// Fixed - constant beacon for tests
type Fixed struct {
	Value [SeedSize]byte
}

func (f Fixed) Seed() [SeedSize]byte {
	return f.Value
}
