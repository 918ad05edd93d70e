// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/palletd/asset"
	"github.com/bitmark-inc/palletd/blockheader"
	"github.com/bitmark-inc/palletd/events"
	"github.com/bitmark-inc/palletd/funds"
	"github.com/bitmark-inc/palletd/random"
	"github.com/bitmark-inc/palletd/storage"
)

const (
	testingDirName   = "testing"
	databaseFileName = testingDirName + "/test-asset.leveldb"

	testAmount = 10000
)

type fixture struct {
	sink   *events.Sink
	ledger *funds.Ledger
	module *asset.Module
	trx    storage.Transaction
}

func setup(t *testing.T) *fixture {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	err := storage.Initialise(databaseFileName)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	_ = blockheader.Initialise()
	blockheader.SetHeight(1)

	sink := events.New()
	ledger := funds.NewLedger()
	beacon := random.Fixed{Value: [32]byte{0x99, 0x88, 0x77}}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin error: %s", err)
	}

	return &fixture{
		sink:   sink,
		ledger: ledger,
		module: asset.New(sink, ledger, beacon, asset.DefaultCreatePrice),
		trx:    trx,
	}
}

func teardown(f *fixture) {
	if nil != f.trx && f.trx.InUse() {
		f.trx.Abort()
	}
	_ = blockheader.Finalise()
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	os.RemoveAll(testingDirName)
}
