// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/palletd/fault"
	"github.com/bitmark-inc/palletd/storage"
)

// CurrentStorageVersion - layout version this code writes
const CurrentStorageVersion = 2

// OnChainVersion - the version stamped on the persisted records
func OnChainVersion(trx storage.Transaction) uint64 {
	version, _ := trx.GetN(storage.Pool.AssetControl, versionKey)
	return version
}

// SetOnChainVersion - force the version stamp, genesis and test use only
func SetOnChainVersion(trx storage.Transaction, version uint64) {
	trx.PutN(storage.Pool.AssetControl, versionKey, version)
}

// Migrate - rewrite persisted records to the current layout
//
// runs in the command-dispatch phase of the first block after a
// deploy; a second run with matching versions is a no-op so the
// migration is idempotent
func Migrate(trx storage.Transaction) error {
	log := logger.New("asset-migrate")

	onChain := OnChainVersion(trx)
	if CurrentStorageVersion == onChain {
		return nil
	}

	switch onChain {
	case 0:
		log.Infof("migrating asset records: %d -> %d", onChain, CurrentStorageVersion)
		count := 0
		trx.IterDrain(storage.Pool.Assets, func(key []byte, value []byte) {
			a, err := unpackV0(value)
			logger.PanicIfError("asset.Migrate v0", err)
			trx.Put(storage.Pool.Assets, key, a.Pack())
			count += 1
		})
		log.Infof("migrated records: %d", count)

	case 1:
		log.Infof("migrating asset records: %d -> %d", onChain, CurrentStorageVersion)
		count := 0
		trx.IterDrain(storage.Pool.Assets, func(key []byte, value []byte) {
			a, err := unpackV1(value)
			logger.PanicIfError("asset.Migrate v1", err)
			trx.Put(storage.Pool.Assets, key, a.Pack())
			count += 1
		})
		log.Infof("migrated records: %d", count)

	default:
		log.Criticalf("unsupported on-chain version: %d", onChain)
		return fault.WrongVersion
	}

	trx.PutN(storage.Pool.AssetControl, versionKey, CurrentStorageVersion)
	return nil
}
