// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/palletd/account"
	"github.com/bitmark-inc/palletd/asset"
	"github.com/bitmark-inc/palletd/blockheader"
	"github.com/bitmark-inc/palletd/events"
	"github.com/bitmark-inc/palletd/fault"
)

var (
	alpha = account.Account{1}
	beta  = account.Account{2}
	gamma = account.Account{3}
)

func TestCreateAsset(t *testing.T) {
	f := setup(t)
	defer teardown(f)

	f.ledger.SetBalance(alpha, testAmount)

	err := f.module.Create(f.trx, alpha)
	assert.Nil(t, err, "create failed")

	blockheader.NextExtrinsicIndex()
	err = f.module.Create(f.trx, alpha)
	assert.Nil(t, err, "second create failed")

	// ids allocate in sequence and are never reused
	assert.Equal(t, uint32(2), f.module.NextId(f.trx), "wrong next id")

	a, ok := f.module.Get(f.trx, 0)
	assert.True(t, ok, "record missing")
	assert.Equal(t, asset.DefaultName, a.Name, "wrong name")

	owner, ok := f.module.OwnerOf(f.trx, 1)
	assert.True(t, ok, "owner missing")
	assert.Equal(t, alpha, owner, "wrong owner")

	// primordial assets have no parents
	_, _, ok = f.module.ParentsOf(f.trx, 0)
	assert.False(t, ok, "primordial asset has parents")

	// the create price moved to the treasury
	assert.Equal(t, uint64(testAmount-2*asset.DefaultCreatePrice), f.ledger.Balance(f.trx, alpha), "wrong creator balance")
	assert.Equal(t, uint64(2*asset.DefaultCreatePrice), f.ledger.Balance(f.trx, asset.TreasuryAccount()), "wrong treasury balance")

	last := f.sink.Last().(events.AssetCreated)
	assert.Equal(t, alpha, last.Owner, "wrong event owner")
	assert.Equal(t, uint32(1), last.Id, "wrong event id")
	assert.Equal(t, a.DNA, f.sink.List()[0].(events.AssetCreated).DNA, "wrong event dna")
}

func TestCreateAssetNotEnoughCurrency(t *testing.T) {
	f := setup(t)
	defer teardown(f)

	err := f.module.Create(f.trx, alpha)
	assert.Equal(t, fault.NotEnoughCurrency, err, "unfunded create accepted")
}

func TestCreateAssetOverflow(t *testing.T) {
	f := setup(t)
	defer teardown(f)

	f.ledger.SetBalance(alpha, testAmount)
	f.module.SetNextId(f.trx, math.MaxUint32)

	err := f.module.Create(f.trx, alpha)
	assert.Equal(t, fault.Overflow, err, "exhausted allocator created")
}

func TestBreedAsset(t *testing.T) {
	f := setup(t)
	defer teardown(f)

	f.ledger.SetBalance(alpha, testAmount)

	assert.Nil(t, f.module.Create(f.trx, alpha), "create failed")
	blockheader.NextExtrinsicIndex()
	assert.Nil(t, f.module.Create(f.trx, alpha), "second create failed")
	blockheader.NextExtrinsicIndex()

	before := f.ledger.Balance(f.trx, alpha)
	err := f.module.Breed(f.trx, alpha, 0, 1)
	assert.Nil(t, err, "breed failed")

	// breeding is free
	assert.Equal(t, before, f.ledger.Balance(f.trx, alpha), "breed charged a fee")

	owner, ok := f.module.OwnerOf(f.trx, 2)
	assert.True(t, ok, "child owner missing")
	assert.Equal(t, alpha, owner, "wrong child owner")

	parent1, parent2, ok := f.module.ParentsOf(f.trx, 2)
	assert.True(t, ok, "parents missing")
	assert.Equal(t, uint32(0), parent1, "wrong first parent")
	assert.Equal(t, uint32(1), parent2, "wrong second parent")

	// every dna byte comes from one parent or the other
	p1, _ := f.module.Get(f.trx, 0)
	p2, _ := f.module.Get(f.trx, 1)
	child, _ := f.module.Get(f.trx, 2)
	for i := 0; i < asset.DNALength; i += 1 {
		assert.Zero(t, (child.DNA[i]^p1.DNA[i])&(child.DNA[i]^p2.DNA[i]), "dna byte %d not inherited", i)
	}

	last := f.sink.Last().(events.AssetBred)
	assert.Equal(t, uint32(2), last.Id, "wrong event id")
	assert.Equal(t, child.DNA, last.DNA, "wrong event dna")
}

func TestBreedAssetErrors(t *testing.T) {
	f := setup(t)
	defer teardown(f)

	f.ledger.SetBalance(alpha, testAmount)
	assert.Nil(t, f.module.Create(f.trx, alpha), "create failed")

	err := f.module.Breed(f.trx, alpha, 0, 0)
	assert.Equal(t, fault.SingleParent, err, "single parent bred")

	err = f.module.Breed(f.trx, alpha, 0, 9)
	assert.Equal(t, fault.InvalidId, err, "missing parent bred")

	err = f.module.Breed(f.trx, alpha, 9, 0)
	assert.Equal(t, fault.InvalidId, err, "missing parent bred")
}

func TestTransferAsset(t *testing.T) {
	f := setup(t)
	defer teardown(f)

	f.ledger.SetBalance(alpha, testAmount)
	assert.Nil(t, f.module.Create(f.trx, alpha), "create failed")

	err := f.module.Transfer(f.trx, alpha, alpha, 0)
	assert.Equal(t, fault.BadRecipient, err, "self transfer allowed")

	err = f.module.Transfer(f.trx, alpha, beta, 9)
	assert.Equal(t, fault.InvalidId, err, "missing asset transferred")

	err = f.module.Transfer(f.trx, beta, gamma, 0)
	assert.Equal(t, fault.NotOwner, err, "non-owner transferred")

	err = f.module.Transfer(f.trx, alpha, beta, 0)
	assert.Nil(t, err, "transfer failed")

	owner, _ := f.module.OwnerOf(f.trx, 0)
	assert.Equal(t, beta, owner, "owner not updated")
	assert.Equal(t, events.Event(events.AssetTransferred{Owner: alpha, Recipient: beta, Id: 0}), f.sink.Last(), "wrong event")
}

func TestTransferAssetOnSale(t *testing.T) {
	f := setup(t)
	defer teardown(f)

	f.ledger.SetBalance(alpha, testAmount)
	assert.Nil(t, f.module.Create(f.trx, alpha), "create failed")
	assert.Nil(t, f.module.Sale(f.trx, alpha, 0, 500), "sale failed")

	// a listed asset cannot move by plain transfer
	err := f.module.Transfer(f.trx, alpha, beta, 0)
	assert.Equal(t, fault.OnSale, err, "listed asset transferred")
}

func TestSaleAsset(t *testing.T) {
	f := setup(t)
	defer teardown(f)

	f.ledger.SetBalance(alpha, testAmount)
	assert.Nil(t, f.module.Create(f.trx, alpha), "create failed")

	err := f.module.Sale(f.trx, alpha, 9, 500)
	assert.Equal(t, fault.InvalidId, err, "missing asset listed")

	err = f.module.Sale(f.trx, beta, 0, 500)
	assert.Equal(t, fault.NotOwner, err, "non-owner listed")

	err = f.module.Sale(f.trx, alpha, 0, 500)
	assert.Nil(t, err, "sale failed")

	price, listed := f.module.ListingOf(f.trx, 0)
	assert.True(t, listed, "listing missing")
	assert.Equal(t, uint64(500), price, "wrong listing price")
	assert.Equal(t, events.Event(events.AssetListed{Owner: alpha, Id: 0, Price: 500}), f.sink.Last(), "wrong event")

	err = f.module.Sale(f.trx, alpha, 0, 600)
	assert.Equal(t, fault.OnSale, err, "relisted a listed asset")
}

func TestBuyAsset(t *testing.T) {
	f := setup(t)
	defer teardown(f)

	f.ledger.SetBalance(alpha, testAmount)
	f.ledger.SetBalance(beta, testAmount)

	assert.Nil(t, f.module.Create(f.trx, alpha), "create failed")
	assert.Nil(t, f.module.Sale(f.trx, alpha, 0, 1234), "sale failed")

	err := f.module.Buy(f.trx, beta, 0)
	assert.Nil(t, err, "buy failed")

	owner, _ := f.module.OwnerOf(f.trx, 0)
	assert.Equal(t, beta, owner, "owner not updated")

	_, listed := f.module.ListingOf(f.trx, 0)
	assert.False(t, listed, "listing survived the buy")

	assert.Equal(t, uint64(testAmount-asset.DefaultCreatePrice+1234), f.ledger.Balance(f.trx, alpha), "wrong seller balance")
	assert.Equal(t, uint64(testAmount-1234), f.ledger.Balance(f.trx, beta), "wrong buyer balance")

	assert.Equal(t, events.Event(events.AssetBought{Buyer: beta, Seller: alpha, Id: 0, Price: 1234}), f.sink.Last(), "wrong event")
}

func TestBuyAssetErrors(t *testing.T) {
	f := setup(t)
	defer teardown(f)

	f.ledger.SetBalance(alpha, testAmount)
	assert.Nil(t, f.module.Create(f.trx, alpha), "create failed")

	// not listed
	err := f.module.Buy(f.trx, beta, 0)
	assert.Equal(t, fault.InvalidId, err, "unlisted asset bought")

	assert.Nil(t, f.module.Sale(f.trx, alpha, 0, 500), "sale failed")

	// penniless buyer
	err = f.module.Buy(f.trx, beta, 0)
	assert.Equal(t, fault.NotEnoughCurrency, err, "unfunded buy accepted")
}

// the owner may take their own listing; balances are unchanged and the
// listing clears
func TestBuyAssetSelf(t *testing.T) {
	f := setup(t)
	defer teardown(f)

	f.ledger.SetBalance(alpha, testAmount)
	assert.Nil(t, f.module.Create(f.trx, alpha), "create failed")
	assert.Nil(t, f.module.Sale(f.trx, alpha, 0, 500), "sale failed")

	before := f.ledger.Balance(f.trx, alpha)
	err := f.module.Buy(f.trx, alpha, 0)
	assert.Nil(t, err, "self buy failed")

	assert.Equal(t, before, f.ledger.Balance(f.trx, alpha), "self buy moved funds")

	owner, _ := f.module.OwnerOf(f.trx, 0)
	assert.Equal(t, alpha, owner, "owner changed")

	_, listed := f.module.ListingOf(f.trx, 0)
	assert.False(t, listed, "listing survived the self buy")
}
