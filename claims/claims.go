// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package claims - proof-of-existence registry
//
// A claim registers an opaque byte string against the account that
// submitted it; the proof bytes themselves are the record key.
package claims

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/palletd/account"
	"github.com/bitmark-inc/palletd/blockheader"
	"github.com/bitmark-inc/palletd/events"
	"github.com/bitmark-inc/palletd/fault"
	"github.com/bitmark-inc/palletd/funds"
	"github.com/bitmark-inc/palletd/storage"
)

// DefaultMaxLength - proof byte limit when not configured
const DefaultMaxLength = 512

// Module - the claims command handlers
type Module struct {
	log       *logger.L
	sink      *events.Sink
	currency  funds.Currency
	maxLength int
}

// New - construct the module with its capability bundle
func New(sink *events.Sink, currency funds.Currency, maxLength int) *Module {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	return &Module{
		log:       logger.New("claims"),
		sink:      sink,
		currency:  currency,
		maxLength: maxLength,
	}
}

// Get - fetch the record for a proof, ok is false when absent
func (m *Module) Get(trx storage.Transaction, proof []byte) (Record, bool) {
	packed := trx.Get(storage.Pool.Claims, proof)
	if nil == packed {
		return Record{}, false
	}
	record, err := UnpackRecord(packed)
	logger.PanicIfError("claims.Get", err)
	return record, true
}

// Create - register a proof for the caller
func (m *Module) Create(trx storage.Transaction, caller account.Account, proof []byte) error {
	if len(proof) > m.maxLength {
		return fault.TooLong
	}
	if trx.Has(storage.Pool.Claims, proof) {
		return fault.AlreadyExist
	}

	record := Record{
		Owner:       caller,
		BlockNumber: blockheader.Height(),
	}
	trx.Put(storage.Pool.Claims, proof, record.Pack())

	m.sink.Emit(events.ClaimCreated{Owner: caller, Proof: proof})
	return nil
}

// Revoke - delete a proof owned by the caller
func (m *Module) Revoke(trx storage.Transaction, caller account.Account, proof []byte) error {
	if len(proof) > m.maxLength {
		return fault.TooLong
	}
	record, ok := m.Get(trx, proof)
	if !ok {
		return fault.NotExist
	}
	if record.Owner != caller {
		return fault.ErrorOwner
	}

	trx.Delete(storage.Pool.Claims, proof)

	m.sink.Emit(events.ClaimRevoked{Owner: caller, Proof: proof})
	return nil
}

// Transfer - reassign a proof to another account
//
// the destination existence probe is advisory only: its result is
// published as a HasDest event and never fails the call
func (m *Module) Transfer(trx storage.Transaction, caller account.Account, dest account.Account, proof []byte) error {
	if caller == dest {
		return fault.SameOwner
	}

	has := m.currency.AccountExists(trx, dest)
	// an absent destination would be fault.NoDest
	m.sink.Emit(events.HasDest{Dest: dest, Exists: has})

	if len(proof) > m.maxLength {
		return fault.TooLong
	}
	record, ok := m.Get(trx, proof)
	if !ok {
		return fault.NotExist
	}
	if record.Owner != caller {
		return fault.ErrorOwner
	}

	record.Owner = dest
	record.BlockNumber = blockheader.Height()
	trx.Put(storage.Pool.Claims, proof, record.Pack())

	m.sink.Emit(events.ClaimTransferred{From: caller, To: dest, Proof: proof})
	return nil
}
