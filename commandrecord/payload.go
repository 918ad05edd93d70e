// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package commandrecord

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/bitmark-inc/palletd/account"
)

// U128 - a 128 bit unsigned integer, big endian
type U128 [16]byte

// U128FromUint64 - widen a uint64
func U128FromUint64(value uint64) U128 {
	u := U128{}
	binary.BigEndian.PutUint64(u[8:], value)
	return u
}

// Bytes - the big endian representation
func (u U128) Bytes() []byte {
	return u[:]
}

func (u U128) String() string {
	return new(big.Int).SetBytes(u[:]).String()
}

// price payload field widths
const (
	payloadLength   = 4 + account.AccountSize + 8
	SignatureLength = 64
)

// PricePayload - the signed content of a worker price submission
//
// carried inside an unsigned command; its own signature is the sole
// authenticator, checked during pool admission
type PricePayload struct {
	Number      uint32          `json:"number"`
	Public      account.Account `json:"public"`
	BlockNumber uint64          `json:"blockNumber"`
}

// Pack - canonical encoding: number + public + block number
//
// fixed width so the signature input is unambiguous
func (p PricePayload) Pack() []byte {
	buffer := make([]byte, payloadLength)
	binary.BigEndian.PutUint32(buffer[:4], p.Number)
	copy(buffer[4:4+account.AccountSize], p.Public.Bytes())
	binary.BigEndian.PutUint64(buffer[4+account.AccountSize:], p.BlockNumber)
	return buffer
}

// Verify - check a signature over the canonical encoding against the
// embedded public key
func (p PricePayload) Verify(signature []byte) error {
	return p.Public.CheckSignature(p.Pack(), signature)
}

func (p PricePayload) String() string {
	return fmt.Sprintf("price: %d  signer: %s  block: %d", p.Number, p.Public, p.BlockNumber)
}
