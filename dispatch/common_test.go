// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dispatch_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/palletd/asset"
	"github.com/bitmark-inc/palletd/blockheader"
	"github.com/bitmark-inc/palletd/claims"
	"github.com/bitmark-inc/palletd/dispatch"
	"github.com/bitmark-inc/palletd/events"
	"github.com/bitmark-inc/palletd/funds"
	"github.com/bitmark-inc/palletd/oracle"
	"github.com/bitmark-inc/palletd/random"
	"github.com/bitmark-inc/palletd/storage"
	"github.com/bitmark-inc/palletd/token"
)

const (
	testingDirName   = "testing"
	databaseFileName = testingDirName + "/test-dispatch.leveldb"

	testAmount = 10000
)

type fixture struct {
	sink       *events.Sink
	ledger     *funds.Ledger
	claims     *claims.Module
	assets     *asset.Module
	oracle     *oracle.Module
	token      *token.Module
	dispatcher *dispatch.Dispatcher
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
	beacon := random.Fixed{Value: [32]byte{0x42}}

	f := &fixture{
		sink:   sink,
		ledger: ledger,
		claims: claims.New(sink, ledger, claims.DefaultMaxLength),
		assets: asset.New(sink, ledger, beacon, asset.DefaultCreatePrice),
		oracle: oracle.New(sink),
		token:  token.New(sink),
	}
	f.dispatcher = dispatch.New(sink, f.claims, f.assets, f.oracle, f.token)
	return f
}

func teardown(f *fixture) {
	_ = blockheader.Finalise()
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	os.RemoveAll(testingDirName)
}

// open a read scope on committed state, aborted by the caller
func readScope(t *testing.T) storage.Transaction {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin error: %s", err)
	}
	return trx
}
