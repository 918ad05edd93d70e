// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-chain state in a key-value store
//
// The runtime state is split into pools, one for each logical map.
// Every record key is stored as:
//
//	pool prefix + 16 byte keyed hash of the user key + user key
//
// The trailing raw key allows iteration to recover the original key
// while the hash keeps the keyspace uniformly distributed.
//
// All writes performed while a transaction is open are collected in a
// batch and become visible to reads through an overlay cache; Commit
// writes the batch atomically, Abort discards it.
package storage
