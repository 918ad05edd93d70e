// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"github.com/bitmark-inc/palletd/account"
)

// ClaimCreated - a proof was registered
type ClaimCreated struct {
	Owner account.Account
	Proof []byte
}

func (e ClaimCreated) String() string {
	return fmt.Sprintf("ClaimCreated(%s, %x)", e.Owner, e.Proof)
}

// ClaimRevoked - a proof was removed by its owner
type ClaimRevoked struct {
	Owner account.Account
	Proof []byte
}

func (e ClaimRevoked) String() string {
	return fmt.Sprintf("ClaimRevoked(%s, %x)", e.Owner, e.Proof)
}

// ClaimTransferred - a proof changed owner
type ClaimTransferred struct {
	From  account.Account
	To    account.Account
	Proof []byte
}

func (e ClaimTransferred) String() string {
	return fmt.Sprintf("ClaimTransferred(%s, %s, %x)", e.From, e.To, e.Proof)
}

// HasDest - advisory result of the destination existence probe
type HasDest struct {
	Dest   account.Account
	Exists bool
}

func (e HasDest) String() string {
	return fmt.Sprintf("HasDest(%s, %t)", e.Dest, e.Exists)
}

// AssetCreated - a primordial asset was minted
type AssetCreated struct {
	Owner account.Account
	Id    uint32
	DNA   [16]byte
}

func (e AssetCreated) String() string {
	return fmt.Sprintf("AssetCreated(%s, %d, %x)", e.Owner, e.Id, e.DNA)
}

// AssetBred - a child asset was bred from two parents
type AssetBred struct {
	Owner account.Account
	Id    uint32
	DNA   [16]byte
}

func (e AssetBred) String() string {
	return fmt.Sprintf("AssetBred(%s, %d, %x)", e.Owner, e.Id, e.DNA)
}

// AssetTransferred - an asset changed owner
type AssetTransferred struct {
	Owner     account.Account
	Recipient account.Account
	Id        uint32
}

func (e AssetTransferred) String() string {
	return fmt.Sprintf("AssetTransferred(%s, %s, %d)", e.Owner, e.Recipient, e.Id)
}

// AssetListed - an asset was offered for a fixed price
type AssetListed struct {
	Owner account.Account
	Id    uint32
	Price uint64
}

func (e AssetListed) String() string {
	return fmt.Sprintf("AssetListed(%s, %d, %d)", e.Owner, e.Id, e.Price)
}

// AssetBought - a listed asset was bought
type AssetBought struct {
	Buyer  account.Account
	Seller account.Account
	Id     uint32
	Price  uint64
}

func (e AssetBought) String() string {
	return fmt.Sprintf("AssetBought(%s, %s, %d, %d)", e.Buyer, e.Seller, e.Id, e.Price)
}

// NumberStored - the oracle number cell was written
type NumberStored struct {
	Number      [16]byte
	Who         account.Account
	BlockNumber uint64
}

func (e NumberStored) String() string {
	return fmt.Sprintf("NumberStored(%x, %s, %d)", e.Number, e.Who, e.BlockNumber)
}

// PriceReceived - an off-chain price submission was executed
type PriceReceived struct {
	Number      uint32
	BlockNumber uint64
	Timestamp   uint64
}

func (e PriceReceived) String() string {
	return fmt.Sprintf("PriceReceived(%d, %d, %d)", e.Number, e.BlockNumber, e.Timestamp)
}

// TokenTransfer - token balance moved between accounts
type TokenTransfer struct {
	From  account.Account
	To    account.Account
	Value uint64
}

func (e TokenTransfer) String() string {
	return fmt.Sprintf("TokenTransfer(%s, %s, %d)", e.From, e.To, e.Value)
}

// TokenApproval - a spender allowance was set
type TokenApproval struct {
	From  account.Account
	To    account.Account
	Value uint64
}

func (e TokenApproval) String() string {
	return fmt.Sprintf("TokenApproval(%s, %s, %d)", e.From, e.To, e.Value)
}
