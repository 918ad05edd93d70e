// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/palletd/account"
	"github.com/bitmark-inc/palletd/asset"
	"github.com/bitmark-inc/palletd/background"
	"github.com/bitmark-inc/palletd/blockheader"
	"github.com/bitmark-inc/palletd/claims"
	"github.com/bitmark-inc/palletd/configuration"
	"github.com/bitmark-inc/palletd/dispatch"
	"github.com/bitmark-inc/palletd/events"
	"github.com/bitmark-inc/palletd/funds"
	"github.com/bitmark-inc/palletd/keypair"
	"github.com/bitmark-inc/palletd/node"
	"github.com/bitmark-inc/palletd/oracle"
	"github.com/bitmark-inc/palletd/random"
	"github.com/bitmark-inc/palletd/reservoir"
	"github.com/bitmark-inc/palletd/storage"
	"github.com/bitmark-inc/palletd/token"
)

// marker cell: genesis balances were applied
var genesisKey = []byte("genesis")

func runStart(c *cli.Context) error {

	configurationFile := c.String("config-file")
	if "" == configurationFile {
		return fmt.Errorf("missing config-file option")
	}

	options, err := configuration.GetConfiguration(configurationFile)
	if nil != err {
		return fmt.Errorf("configuration: %q  error: %s", configurationFile, err)
	}

	// start logging
	err = logger.Initialise(options.LoggerConfiguration())
	if nil != err {
		return fmt.Errorf("logger setup failed with error: %s", err)
	}
	defer logger.Finalise()

	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != options.PidFile {
		lockFile, err := os.OpenFile(options.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if nil != err {
			if os.IsExist(err) {
				return fmt.Errorf("another instance is already running")
			}
			return fmt.Errorf("PID file: %q creation failed, error: %s", options.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(options.PidFile)
	}

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(options.Database.Name)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		return fmt.Errorf("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	// block header data
	log.Info("initialise blockheader")
	err = blockheader.Initialise()
	if nil != err {
		log.Criticalf("blockheader initialise error: %s", err)
		return fmt.Errorf("blockheader initialise error: %s", err)
	}
	defer blockheader.Finalise()

	height := node.RestoreHeight()
	log.Infof("resuming at block: %d", height)

	// the capability bundles shared by the modules
	sink := events.New()
	ledger := funds.NewLedger()
	beacon := random.NewBlockBeacon([]byte(options.Database.Name))

	claimsModule := claims.New(sink, ledger, options.Runtime.MaxClaimLength)
	assetModule := asset.New(sink, ledger, beacon, uint64(options.Runtime.CreatePrice))
	oracleModule := oracle.New(sink)
	tokenModule := token.New(sink)

	// storage layout migration, idempotent across restarts
	trx, err := storage.NewDBTransaction()
	if nil != err {
		log.Criticalf("transaction begin error: %s", err)
		return err
	}
	err = asset.Migrate(trx)
	if nil != err {
		trx.Abort()
		log.Criticalf("migration error: %s", err)
		return err
	}
	err = trx.Commit()
	if nil != err {
		log.Criticalf("migration commit error: %s", err)
		return err
	}

	// one-time genesis state
	err = applyGenesis(log, options, tokenModule)
	if nil != err {
		log.Criticalf("genesis error: %s", err)
		return err
	}

	dispatcher := dispatch.New(sink, claimsModule, assetModule, oracleModule, tokenModule)

	blockInterval := time.Duration(options.Runtime.BlockInterval) * time.Second
	pool := reservoir.New(blockInterval)

	// the price oracle signing key, absent on a non-authority node
	var keys *keypair.KeyPair
	if "" != options.Oracle.Seed {
		keys, err = keypair.FromSeed(options.Oracle.Seed)
		if nil != err {
			log.Criticalf("oracle seed error: %s", err)
			return err
		}
		log.Infof("oracle account: %s", keys.Account())
	} else {
		log.Warn("no oracle seed configured")
	}

	worker := oracle.NewWorker(
		options.Oracle.PriceURL,
		time.Duration(options.Oracle.FetchDeadline)*time.Millisecond,
		keys,
		pool,
	)

	// start the block clock
	processes := background.Processes{
		node.New(sink, dispatcher, pool, worker, blockInterval),
	}
	bg := background.Start(processes, log)
	defer bg.Stop()

	// wait for shutdown signal
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)

	return nil
}

// credit the configured genesis balances and fix the token supply
//
// runs once for the life of the database; a marker cell prevents a
// restart from crediting twice
func applyGenesis(log *logger.L, options *configuration.Configuration, tokenModule *token.Module) error {
	if storage.Pool.NodeControl.Has(genesisKey) {
		return nil
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	var first account.Account
	for i, item := range options.Genesis {
		owner, err := account.FromBase58(item.Account)
		if nil != err {
			trx.Abort()
			return fmt.Errorf("genesis account: %q  error: %s", item.Account, err)
		}
		if 0 == i {
			first = owner
		}
		trx.PutN(storage.Pool.Balances, owner.Bytes(), uint64(item.Amount))
		log.Infof("genesis balance: %s = %d", owner, item.Amount)
	}

	if options.Runtime.TokenSupply > 0 {
		if 0 == len(options.Genesis) {
			trx.Abort()
			return fmt.Errorf("token supply needs at least one genesis account")
		}
		err = tokenModule.Init(trx, first, uint64(options.Runtime.TokenSupply))
		if nil != err {
			trx.Abort()
			return err
		}
		log.Infof("token supply: %d held by: %s", options.Runtime.TokenSupply, first)
	}

	trx.PutN(storage.Pool.NodeControl, genesisKey, 1)
	return trx.Commit()
}
