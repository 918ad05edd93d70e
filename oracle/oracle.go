// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package oracle - the external price bridge
//
// The on-chain half stores caller numbers and worker price
// submissions; the off-chain worker in this package fetches the feed
// and submits prices back through the pending pool as unsigned
// commands authenticated by a signed payload.
package oracle

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/palletd/account"
	"github.com/bitmark-inc/palletd/blockheader"
	"github.com/bitmark-inc/palletd/commandrecord"
	"github.com/bitmark-inc/palletd/events"
	"github.com/bitmark-inc/palletd/storage"
)

// prefix of the per-block index keys
const blockKeyPrefix = "ocwx-key-"

// the single number cell
var numberKey = []byte("number")

// Module - the oracle command handlers
type Module struct {
	log  *logger.L
	sink *events.Sink
}

// New - construct the module with its capability bundle
func New(sink *events.Sink) *Module {
	return &Module{
		log:  logger.New("oracle"),
		sink: sink,
	}
}

func blockNumberKey(blockNumber uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, blockNumber)
	return key
}

// DeriveBlockKey - the per-block index key: prefix + block number
func DeriveBlockKey(blockNumber uint64) []byte {
	key := make([]byte, 0, len(blockKeyPrefix)+8)
	key = append(key, blockKeyPrefix...)
	return append(key, blockNumberKey(blockNumber)...)
}

// StorageNumber - store a caller supplied number
//
// overwrites the single number cell and records the derived index key
// for the current block
func (m *Module) StorageNumber(trx storage.Transaction, caller account.Account, number commandrecord.U128) error {
	blockNumber := blockheader.Height()

	trx.Put(storage.Pool.OracleNumbers, numberKey, number.Bytes())
	trx.Put(storage.Pool.BlockKeys, blockNumberKey(blockNumber), DeriveBlockKey(blockNumber))

	m.sink.Emit(events.NumberStored{Number: [16]byte(number), Who: caller, BlockNumber: blockNumber})
	return nil
}

// Number - the stored number cell, ok is false before the first store
func (m *Module) Number(trx storage.Transaction) (commandrecord.U128, bool) {
	packed := trx.Get(storage.Pool.OracleNumbers, numberKey)
	if nil == packed {
		return commandrecord.U128{}, false
	}
	number := commandrecord.U128{}
	copy(number[:], packed)
	return number, true
}

// BlockKey - the index key recorded for a block, nil when absent
func (m *Module) BlockKey(trx storage.Transaction, blockNumber uint64) []byte {
	return trx.Get(storage.Pool.BlockKeys, blockNumberKey(blockNumber))
}

// SubmitPricePayload - record a worker price submission
//
// the signature was already checked during pool admission; execution
// only persists the payload number under its submission timestamp
func (m *Module) SubmitPricePayload(trx storage.Transaction, timestamp uint64, payload commandrecord.PricePayload) error {
	value := make([]byte, 5)
	binary.BigEndian.PutUint32(value[:4], payload.Number)
	value[4] = 0x01

	trx.Put(storage.Pool.PayloadNumbers, blockNumberKey(timestamp), value)

	m.log.Infof("price: %d  block: %d  timestamp: %d", payload.Number, payload.BlockNumber, timestamp)
	m.sink.Emit(events.PriceReceived{Number: payload.Number, BlockNumber: payload.BlockNumber, Timestamp: timestamp})
	return nil
}

// PayloadNumber - a recorded price submission by timestamp
func (m *Module) PayloadNumber(trx storage.Transaction, timestamp uint64) (uint32, bool, bool) {
	packed := trx.Get(storage.Pool.PayloadNumbers, blockNumberKey(timestamp))
	if nil == packed {
		return 0, false, false
	}
	if 5 != len(packed) {
		logger.Panicf("oracle.PayloadNumber corrupt record for: %d: %x", timestamp, packed)
	}
	return binary.BigEndian.Uint32(packed[:4]), 0x01 == packed[4], true
}

// SubmitPrice - the legacy unsigned submission, a stateless no-op
func (m *Module) SubmitPrice(trx storage.Transaction, blockNumber uint64, price uint32) error {
	m.log.Debugf("legacy price: %d  block: %d", price, blockNumber)
	return nil
}
