// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package oracle_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/palletd/blockheader"
	"github.com/bitmark-inc/palletd/events"
	"github.com/bitmark-inc/palletd/oracle"
	"github.com/bitmark-inc/palletd/storage"
)

const (
	testingDirName   = "testing"
	databaseFileName = testingDirName + "/test-oracle.leveldb"
)

type fixture struct {
	sink   *events.Sink
	module *oracle.Module
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

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin error: %s", err)
	}

	sink := events.New()
	return &fixture{
		sink:   sink,
		module: oracle.New(sink),
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
