// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package oracle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/palletd/account"
	"github.com/bitmark-inc/palletd/blockheader"
	"github.com/bitmark-inc/palletd/commandrecord"
	"github.com/bitmark-inc/palletd/events"
	"github.com/bitmark-inc/palletd/oracle"
)

var alpha = account.Account{1}

func TestStorageNumber(t *testing.T) {
	f := setup(t)
	defer teardown(f)

	_, ok := f.module.Number(f.trx)
	assert.False(t, ok, "number before first store")

	blockheader.SetHeight(42)
	number := commandrecord.U128FromUint64(987654321)
	err := f.module.StorageNumber(f.trx, alpha, number)
	assert.Nil(t, err, "store failed")

	stored, ok := f.module.Number(f.trx)
	assert.True(t, ok, "number missing")
	assert.Equal(t, number, stored, "wrong number")

	// the per-block index key was recorded
	key := f.module.BlockKey(f.trx, 42)
	assert.Equal(t, oracle.DeriveBlockKey(42), key, "wrong block key")
	assert.Equal(t, []byte("ocwx-key-"), key[:9], "wrong key prefix")

	assert.Equal(t, events.Event(events.NumberStored{Number: [16]byte(number), Who: alpha, BlockNumber: 42}), f.sink.Last(), "wrong event")

	// a second store overwrites the single cell
	other := commandrecord.U128FromUint64(5)
	assert.Nil(t, f.module.StorageNumber(f.trx, alpha, other), "second store failed")
	stored, _ = f.module.Number(f.trx)
	assert.Equal(t, other, stored, "cell not overwritten")
}

func TestSubmitPricePayload(t *testing.T) {
	f := setup(t)
	defer teardown(f)

	payload := commandrecord.PricePayload{
		Number:      35170,
		Public:      alpha,
		BlockNumber: 7,
	}

	err := f.module.SubmitPricePayload(f.trx, 1700000000123, payload)
	assert.Nil(t, err, "submit failed")

	number, flag, ok := f.module.PayloadNumber(f.trx, 1700000000123)
	assert.True(t, ok, "record missing")
	assert.True(t, flag, "flag not set")
	assert.Equal(t, uint32(35170), number, "wrong number")

	// other timestamps stay empty
	_, _, ok = f.module.PayloadNumber(f.trx, 1700000000124)
	assert.False(t, ok, "phantom record")

	assert.Equal(t, events.Event(events.PriceReceived{Number: 35170, BlockNumber: 7, Timestamp: 1700000000123}), f.sink.Last(), "wrong event")
}

// the legacy call must not touch state
func TestSubmitPrice(t *testing.T) {
	f := setup(t)
	defer teardown(f)

	mark := f.sink.Count()
	err := f.module.SubmitPrice(f.trx, 7, 35170)
	assert.Nil(t, err, "submit failed")
	assert.Equal(t, mark, f.sink.Count(), "legacy call emitted events")
}
