// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package dispatch - route commands to their module handlers
//
// One command is one atomic state transition: origin authentication,
// then the handler under an exclusive store transaction. A handler
// error discards every write and every event of that command; nothing
// else observes the partial state.
package dispatch

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/palletd/asset"
	"github.com/bitmark-inc/palletd/blockheader"
	"github.com/bitmark-inc/palletd/claims"
	"github.com/bitmark-inc/palletd/commandrecord"
	"github.com/bitmark-inc/palletd/events"
	"github.com/bitmark-inc/palletd/oracle"
	"github.com/bitmark-inc/palletd/storage"
	"github.com/bitmark-inc/palletd/token"
)

// Dispatcher - the command router
type Dispatcher struct {
	log    *logger.L
	sink   *events.Sink
	claims *claims.Module
	assets *asset.Module
	oracle *oracle.Module
	token  *token.Module
}

// New - construct the dispatcher over the module handlers
func New(
	sink *events.Sink,
	claimsModule *claims.Module,
	assetModule *asset.Module,
	oracleModule *oracle.Module,
	tokenModule *token.Module,
) *Dispatcher {
	return &Dispatcher{
		log:    logger.New("dispatch"),
		sink:   sink,
		claims: claimsModule,
		assets: assetModule,
		oracle: oracleModule,
		token:  tokenModule,
	}
}

// Dispatch - execute one command atomically
//
// the returned error is the handler's fault unchanged, for the caller
// to report; the store and the event log never carry traces of a
// failed command
func (d *Dispatcher) Dispatch(command commandrecord.Command) error {
	module, call := command.Indexes()
	index := blockheader.ExtrinsicIndex()
	defer blockheader.NextExtrinsicIndex()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		d.log.Criticalf("transaction begin error: %s", err)
		return err
	}

	mark := d.sink.Count()

	err = d.execute(trx, command)
	if nil != err {
		trx.Abort()
		d.sink.Truncate(mark)
		d.log.Warnf("command: %d.%d[%d] origin: %s  error: %s", module, call, index, command.GetOrigin(), err)
		return err
	}

	err = trx.Commit()
	if nil != err {
		d.sink.Truncate(mark)
		d.log.Criticalf("commit error: %s", err)
		return err
	}

	d.log.Infof("command: %d.%d[%d] origin: %s  events: %d", module, call, index, command.GetOrigin(), d.sink.Count()-mark)
	return nil
}

func (d *Dispatcher) execute(trx storage.Transaction, command commandrecord.Command) error {
	switch c := command.(type) {

	case *commandrecord.CreateClaim:
		caller, err := c.Origin.SignedAccount()
		if nil != err {
			return err
		}
		return d.claims.Create(trx, caller, c.Proof)

	case *commandrecord.RevokeClaim:
		caller, err := c.Origin.SignedAccount()
		if nil != err {
			return err
		}
		return d.claims.Revoke(trx, caller, c.Proof)

	case *commandrecord.TransferClaim:
		caller, err := c.Origin.SignedAccount()
		if nil != err {
			return err
		}
		return d.claims.Transfer(trx, caller, c.Dest, c.Proof)

	case *commandrecord.CreateAsset:
		caller, err := c.Origin.SignedAccount()
		if nil != err {
			return err
		}
		return d.assets.Create(trx, caller)

	case *commandrecord.BreedAsset:
		caller, err := c.Origin.SignedAccount()
		if nil != err {
			return err
		}
		return d.assets.Breed(trx, caller, c.Parent1, c.Parent2)

	case *commandrecord.TransferAsset:
		caller, err := c.Origin.SignedAccount()
		if nil != err {
			return err
		}
		return d.assets.Transfer(trx, caller, c.Dest, c.Id)

	case *commandrecord.SaleAsset:
		caller, err := c.Origin.SignedAccount()
		if nil != err {
			return err
		}
		return d.assets.Sale(trx, caller, c.Id, c.Price)

	case *commandrecord.BuyAsset:
		caller, err := c.Origin.SignedAccount()
		if nil != err {
			return err
		}
		return d.assets.Buy(trx, caller, c.Id)

	case *commandrecord.StorageNumber:
		caller, err := c.Origin.SignedAccount()
		if nil != err {
			return err
		}
		return d.oracle.StorageNumber(trx, caller, c.Number)

	case *commandrecord.SubmitPricePayload:
		err := c.Origin.EnsureNone()
		if nil != err {
			return err
		}
		return d.oracle.SubmitPricePayload(trx, c.Timestamp, c.Payload)

	case *commandrecord.SubmitPrice:
		err := c.Origin.EnsureNone()
		if nil != err {
			return err
		}
		return d.oracle.SubmitPrice(trx, c.BlockNumber, c.Price)

	case *commandrecord.TransferToken:
		caller, err := c.Origin.SignedAccount()
		if nil != err {
			return err
		}
		return d.token.Transfer(trx, caller, c.Dest, c.Value)

	case *commandrecord.TransferTokenFrom:
		caller, err := c.Origin.SignedAccount()
		if nil != err {
			return err
		}
		return d.token.TransferFrom(trx, caller, c.From, c.Dest, c.Value)

	case *commandrecord.ApproveToken:
		caller, err := c.Origin.SignedAccount()
		if nil != err {
			return err
		}
		return d.token.Approve(trx, caller, c.Spender, c.Value)

	default:
		logger.Panicf("dispatch.execute unknown command: %v", command)
		return nil
	}
}
