// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package asset - unique digital assets with lineage and trade
//
// Every asset carries a 16 byte DNA fixed at creation: primordial
// assets draw it from the randomness beacon, bred assets inherit it
// from two parents through a random selector mask. Assets are never
// destroyed; ownership moves by transfer or by a listed sale.
package asset

import (
	"encoding/binary"
	"math"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/palletd/account"
	"github.com/bitmark-inc/palletd/blockheader"
	"github.com/bitmark-inc/palletd/events"
	"github.com/bitmark-inc/palletd/fault"
	"github.com/bitmark-inc/palletd/funds"
	"github.com/bitmark-inc/palletd/random"
	"github.com/bitmark-inc/palletd/storage"

	"golang.org/x/crypto/blake2b"
)

// DefaultCreatePrice - fee charged on create when not configured
const DefaultCreatePrice = 10

// the 8 byte module tag from which the treasury account derives
var moduleTag = [8]byte{'k', 'i', 't', 't', 'i', 'e', 's', 'X'}

// control cell keys
var (
	nextIdKey  = []byte("id")
	versionKey = []byte("version")
)

// Module - the asset command handlers
type Module struct {
	log         *logger.L
	sink        *events.Sink
	currency    funds.Currency
	beacon      random.Beacon
	createPrice uint64
}

// New - construct the module with its capability bundle
func New(sink *events.Sink, currency funds.Currency, beacon random.Beacon, createPrice uint64) *Module {
	return &Module{
		log:         logger.New("asset"),
		sink:        sink,
		currency:    currency,
		beacon:      beacon,
		createPrice: createPrice,
	}
}

// TreasuryAccount - the module's fee collection account
//
// derived deterministically by truncating the module tag into an
// otherwise zero account, so every instance shares one treasury
func TreasuryAccount() account.Account {
	var treasury account.Account
	copy(treasury[:4], []byte("modl"))
	copy(treasury[4:], moduleTag[:])
	return treasury
}

// idKey - asset ids are stored as 4 byte big endian keys
func idKey(id uint32) []byte {
	key := make([]byte, 4)
	binary.BigEndian.PutUint32(key, id)
	return key
}

// NextId - the id the next created asset will receive
func (m *Module) NextId(trx storage.Transaction) uint32 {
	next, _ := trx.GetN(storage.Pool.AssetControl, nextIdKey)
	return uint32(next)
}

// SetNextId - force the allocator, genesis and test use only
func (m *Module) SetNextId(trx storage.Transaction, id uint32) {
	trx.PutN(storage.Pool.AssetControl, nextIdKey, uint64(id))
}

// allocate the next id, strictly increasing, never reused
func (m *Module) allocateId(trx storage.Transaction) (uint32, error) {
	next, _ := trx.GetN(storage.Pool.AssetControl, nextIdKey)
	if next >= math.MaxUint32 {
		return 0, fault.Overflow
	}
	trx.PutN(storage.Pool.AssetControl, nextIdKey, next+1)
	return uint32(next), nil
}

// dna - 128 bit keyed hash of (seed, caller, extrinsic index)
func (m *Module) dna(caller account.Account) [DNALength]byte {
	seed := m.beacon.Seed()

	payload := make([]byte, 0, len(seed)+account.AccountSize+4)
	payload = append(payload, seed[:]...)
	payload = append(payload, caller.Bytes()...)

	index := make([]byte, 4)
	binary.BigEndian.PutUint32(index, blockheader.ExtrinsicIndex())
	payload = append(payload, index...)

	h, err := blake2b.New(DNALength, moduleTag[:])
	logger.PanicIfError("asset.dna", err)
	h.Write(payload)

	var dna [DNALength]byte
	copy(dna[:], h.Sum(nil))
	return dna
}

// Get - fetch an asset, ok is false when absent
func (m *Module) Get(trx storage.Transaction, id uint32) (Asset, bool) {
	packed := trx.Get(storage.Pool.Assets, idKey(id))
	if nil == packed {
		return Asset{}, false
	}
	a, err := Unpack(packed)
	logger.PanicIfError("asset.Get", err)
	return a, true
}

// OwnerOf - current owner of an asset, ok is false when absent
func (m *Module) OwnerOf(trx storage.Transaction, id uint32) (account.Account, bool) {
	packed := trx.Get(storage.Pool.AssetOwners, idKey(id))
	if nil == packed {
		return account.Account{}, false
	}
	owner, err := account.FromBytes(packed)
	logger.PanicIfError("asset.OwnerOf", err)
	return owner, true
}

// ParentsOf - parent pair of a bred asset, ok is false for primordial assets
func (m *Module) ParentsOf(trx storage.Transaction, id uint32) (uint32, uint32, bool) {
	packed := trx.Get(storage.Pool.AssetParents, idKey(id))
	if nil == packed {
		return 0, 0, false
	}
	if 8 != len(packed) {
		logger.Panicf("asset.ParentsOf corrupt record for: %d: %x", id, packed)
	}
	return binary.BigEndian.Uint32(packed[:4]), binary.BigEndian.Uint32(packed[4:]), true
}

// ListingOf - sale price of a listed asset, ok is false when not listed
func (m *Module) ListingOf(trx storage.Transaction, id uint32) (uint64, bool) {
	return trx.GetN(storage.Pool.AssetSales, idKey(id))
}

// Create - mint a primordial asset for the caller
//
// the create price moves from the caller to the treasury
func (m *Module) Create(trx storage.Transaction, caller account.Account) error {
	id, err := m.allocateId(trx)
	if nil != err {
		return err
	}

	if !m.currency.CanWithdraw(trx, caller, m.createPrice) {
		return fault.NotEnoughCurrency
	}
	err = m.currency.Transfer(trx, caller, TreasuryAccount(), m.createPrice, true)
	if nil != err {
		return err
	}

	a := Asset{
		DNA:     m.dna(caller),
		Name:    DefaultName,
		Feature: DefaultFeature,
	}

	trx.Put(storage.Pool.Assets, idKey(id), a.Pack())
	trx.Put(storage.Pool.AssetOwners, idKey(id), caller.Bytes())

	m.sink.Emit(events.AssetCreated{Owner: caller, Id: id, DNA: a.DNA})
	return nil
}

// Breed - derive a child asset from two distinct parents
//
// no create price is charged on breeding
func (m *Module) Breed(trx storage.Transaction, caller account.Account, parent1 uint32, parent2 uint32) error {
	if parent1 == parent2 {
		return fault.SingleParent
	}
	p1, ok := m.Get(trx, parent1)
	if !ok {
		return fault.InvalidId
	}
	p2, ok := m.Get(trx, parent2)
	if !ok {
		return fault.InvalidId
	}

	id, err := m.allocateId(trx)
	if nil != err {
		return err
	}

	selector := m.dna(caller)
	a := Asset{
		Name:    DefaultName,
		Feature: DefaultFeature,
	}
	for i := 0; i < DNALength; i += 1 {
		a.DNA[i] = (p1.DNA[i] & selector[i]) | (p2.DNA[i] &^ selector[i])
	}

	parents := make([]byte, 8)
	binary.BigEndian.PutUint32(parents[:4], parent1)
	binary.BigEndian.PutUint32(parents[4:], parent2)

	trx.Put(storage.Pool.Assets, idKey(id), a.Pack())
	trx.Put(storage.Pool.AssetOwners, idKey(id), caller.Bytes())
	trx.Put(storage.Pool.AssetParents, idKey(id), parents)

	m.sink.Emit(events.AssetBred{Owner: caller, Id: id, DNA: a.DNA})
	return nil
}

// Transfer - reassign a non-listed asset to another account
func (m *Module) Transfer(trx storage.Transaction, caller account.Account, recipient account.Account, id uint32) error {
	if caller == recipient {
		return fault.BadRecipient
	}
	if !trx.Has(storage.Pool.Assets, idKey(id)) {
		return fault.InvalidId
	}
	if trx.Has(storage.Pool.AssetSales, idKey(id)) {
		return fault.OnSale
	}
	owner, ok := m.OwnerOf(trx, id)
	if !ok {
		return fault.InvalidId
	}
	if owner != caller {
		return fault.NotOwner
	}

	trx.Put(storage.Pool.AssetOwners, idKey(id), recipient.Bytes())

	m.sink.Emit(events.AssetTransferred{Owner: caller, Recipient: recipient, Id: id})
	return nil
}

// Sale - list an owned asset at a fixed price
func (m *Module) Sale(trx storage.Transaction, caller account.Account, id uint32, price uint64) error {
	if !trx.Has(storage.Pool.Assets, idKey(id)) {
		return fault.InvalidId
	}
	owner, ok := m.OwnerOf(trx, id)
	if !ok {
		return fault.InvalidId
	}
	if owner != caller {
		return fault.NotOwner
	}
	if trx.Has(storage.Pool.AssetSales, idKey(id)) {
		return fault.OnSale
	}

	trx.PutN(storage.Pool.AssetSales, idKey(id), price)

	m.sink.Emit(events.AssetListed{Owner: caller, Id: id, Price: price})
	return nil
}

// Buy - take a listed asset at its asking price
//
// atomically: owner becomes the buyer, the listing is cleared and the
// price settles to the previous owner; a self-buy by the current
// owner is permitted and settles to a net zero
func (m *Module) Buy(trx storage.Transaction, caller account.Account, id uint32) error {
	price, listed := m.ListingOf(trx, id)
	if !listed {
		return fault.InvalidId
	}
	seller, ok := m.OwnerOf(trx, id)
	if !ok {
		return fault.InvalidId
	}

	if !m.currency.CanWithdraw(trx, caller, price) {
		return fault.NotEnoughCurrency
	}

	trx.Put(storage.Pool.AssetOwners, idKey(id), caller.Bytes())
	trx.Delete(storage.Pool.AssetSales, idKey(id))

	err := m.currency.Transfer(trx, caller, seller, price, true)
	if nil != err {
		return err
	}

	m.sink.Emit(events.AssetBought{Buyer: caller, Seller: seller, Id: id, Price: price})
	return nil
}
