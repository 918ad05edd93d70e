// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package commandrecord - the dispatchable command variants
//
// Every inbound command is a tagged variant naming its module and call
// with typed arguments plus an origin. The pair of indices is stable:
// it is the wire identity of the call and must never be renumbered.
package commandrecord

import (
	"golang.org/x/crypto/blake2b"

	"github.com/bitmark-inc/palletd/account"
	"github.com/bitmark-inc/palletd/util"
)

// ModuleIndex - stable index of the handling module
type ModuleIndex uint8

// enumerate the modules carrying dispatchable calls
const (
	ClaimsModule ModuleIndex = iota
	AssetsModule
	OcwModule
	TokenModule
)

// CallIndex - stable index of a call within its module
type CallIndex uint8

// call indices, per module
const (
	ClaimsCreate CallIndex = iota
	ClaimsRevoke
	ClaimsTransfer
)

const (
	AssetsCreate CallIndex = iota
	AssetsBreed
	AssetsTransfer
	AssetsSale
	AssetsBuy
)

const (
	OcwStorageNumber CallIndex = iota
	OcwSubmitPricePayload
	OcwSubmitPrice
)

const (
	TokenTransfer CallIndex = iota
	TokenTransferFrom
	TokenApprove
)

// Packed - the canonical encoding of a command
type Packed []byte

// Digest - blake2b-256 over the canonical encoding
//
// the pool uses this as the replay identity of a command
func (p Packed) Digest() [32]byte {
	return blake2b.Sum256(p)
}

// Command - generic command interface
type Command interface {
	Indexes() (ModuleIndex, CallIndex)
	GetOrigin() Origin
	Pack() Packed
}

// encoding helpers, Varint64 for integers and length prefixes

func appendUint64(buffer Packed, value uint64) Packed {
	return append(buffer, util.ToVarint64(value)...)
}

func appendUint32(buffer Packed, value uint32) Packed {
	return append(buffer, util.ToVarint64(uint64(value))...)
}

func appendAccount(buffer Packed, who account.Account) Packed {
	return append(buffer, who.Bytes()...)
}

func appendBytes(buffer Packed, data []byte) Packed {
	buffer = append(buffer, util.ToVarint64(uint64(len(data)))...)
	return append(buffer, data...)
}
