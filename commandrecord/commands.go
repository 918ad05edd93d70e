// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package commandrecord

import (
	"github.com/bitmark-inc/palletd/account"
)

// CreateClaim - register a proof for the caller
type CreateClaim struct {
	Origin Origin `json:"origin"`
	Proof  []byte `json:"proof"`
}

// RevokeClaim - remove the caller's claim
type RevokeClaim struct {
	Origin Origin `json:"origin"`
	Proof  []byte `json:"proof"`
}

// TransferClaim - move the caller's claim to another account
type TransferClaim struct {
	Origin Origin          `json:"origin"`
	Dest   account.Account `json:"dest"`
	Proof  []byte          `json:"proof"`
}

// CreateAsset - mint a primordial asset for the caller
type CreateAsset struct {
	Origin Origin `json:"origin"`
}

// BreedAsset - derive a child from two parents owned state-wide
type BreedAsset struct {
	Origin  Origin `json:"origin"`
	Parent1 uint32 `json:"parent1"`
	Parent2 uint32 `json:"parent2"`
}

// TransferAsset - reassign an asset to another account
type TransferAsset struct {
	Origin Origin          `json:"origin"`
	Dest   account.Account `json:"dest"`
	Id     uint32          `json:"id"`
}

// SaleAsset - list an asset at a fixed price
type SaleAsset struct {
	Origin Origin `json:"origin"`
	Id     uint32 `json:"id"`
	Price  uint64 `json:"price"`
}

// BuyAsset - take a listed asset at its asking price
type BuyAsset struct {
	Origin Origin `json:"origin"`
	Id     uint32 `json:"id"`
}

// StorageNumber - store a caller supplied number with its block key
type StorageNumber struct {
	Origin Origin `json:"origin"`
	Number U128   `json:"number"`
}

// SubmitPricePayload - unsigned price submission from the worker
type SubmitPricePayload struct {
	Origin    Origin       `json:"origin"`
	Timestamp uint64       `json:"timestamp"`
	Payload   PricePayload `json:"payload"`
	Signature []byte       `json:"signature"`
}

// SubmitPrice - legacy unsigned price submission, a stateless no-op
type SubmitPrice struct {
	Origin      Origin `json:"origin"`
	BlockNumber uint64 `json:"blockNumber"`
	Price       uint32 `json:"price"`
}

// TransferToken - move tokens from the caller
type TransferToken struct {
	Origin Origin          `json:"origin"`
	Dest   account.Account `json:"dest"`
	Value  uint64          `json:"value"`
}

// TransferTokenFrom - spend a prior approval on the owner's balance
type TransferTokenFrom struct {
	Origin Origin          `json:"origin"`
	From   account.Account `json:"from"`
	Dest   account.Account `json:"dest"`
	Value  uint64          `json:"value"`
}

// ApproveToken - set a spender's allowance on the caller's balance
type ApproveToken struct {
	Origin  Origin          `json:"origin"`
	Spender account.Account `json:"spender"`
	Value   uint64          `json:"value"`
}

// Indexes + GetOrigin + Pack for every variant; the encoding is the
// two index bytes, the origin, then the arguments in struct order

func (c *CreateClaim) Indexes() (ModuleIndex, CallIndex) { return ClaimsModule, ClaimsCreate }
func (c *CreateClaim) GetOrigin() Origin                 { return c.Origin }
func (c *CreateClaim) Pack() Packed {
	buffer := c.Origin.pack(Packed{byte(ClaimsModule), byte(ClaimsCreate)})
	return appendBytes(buffer, c.Proof)
}

func (c *RevokeClaim) Indexes() (ModuleIndex, CallIndex) { return ClaimsModule, ClaimsRevoke }
func (c *RevokeClaim) GetOrigin() Origin                 { return c.Origin }
func (c *RevokeClaim) Pack() Packed {
	buffer := c.Origin.pack(Packed{byte(ClaimsModule), byte(ClaimsRevoke)})
	return appendBytes(buffer, c.Proof)
}

func (c *TransferClaim) Indexes() (ModuleIndex, CallIndex) { return ClaimsModule, ClaimsTransfer }
func (c *TransferClaim) GetOrigin() Origin                 { return c.Origin }
func (c *TransferClaim) Pack() Packed {
	buffer := c.Origin.pack(Packed{byte(ClaimsModule), byte(ClaimsTransfer)})
	buffer = appendAccount(buffer, c.Dest)
	return appendBytes(buffer, c.Proof)
}

func (c *CreateAsset) Indexes() (ModuleIndex, CallIndex) { return AssetsModule, AssetsCreate }
func (c *CreateAsset) GetOrigin() Origin                 { return c.Origin }
func (c *CreateAsset) Pack() Packed {
	return c.Origin.pack(Packed{byte(AssetsModule), byte(AssetsCreate)})
}

func (c *BreedAsset) Indexes() (ModuleIndex, CallIndex) { return AssetsModule, AssetsBreed }
func (c *BreedAsset) GetOrigin() Origin                 { return c.Origin }
func (c *BreedAsset) Pack() Packed {
	buffer := c.Origin.pack(Packed{byte(AssetsModule), byte(AssetsBreed)})
	buffer = appendUint32(buffer, c.Parent1)
	return appendUint32(buffer, c.Parent2)
}

func (c *TransferAsset) Indexes() (ModuleIndex, CallIndex) { return AssetsModule, AssetsTransfer }
func (c *TransferAsset) GetOrigin() Origin                 { return c.Origin }
func (c *TransferAsset) Pack() Packed {
	buffer := c.Origin.pack(Packed{byte(AssetsModule), byte(AssetsTransfer)})
	buffer = appendAccount(buffer, c.Dest)
	return appendUint32(buffer, c.Id)
}

func (c *SaleAsset) Indexes() (ModuleIndex, CallIndex) { return AssetsModule, AssetsSale }
func (c *SaleAsset) GetOrigin() Origin                 { return c.Origin }
func (c *SaleAsset) Pack() Packed {
	buffer := c.Origin.pack(Packed{byte(AssetsModule), byte(AssetsSale)})
	buffer = appendUint32(buffer, c.Id)
	return appendUint64(buffer, c.Price)
}

func (c *BuyAsset) Indexes() (ModuleIndex, CallIndex) { return AssetsModule, AssetsBuy }
func (c *BuyAsset) GetOrigin() Origin                 { return c.Origin }
func (c *BuyAsset) Pack() Packed {
	buffer := c.Origin.pack(Packed{byte(AssetsModule), byte(AssetsBuy)})
	return appendUint32(buffer, c.Id)
}

func (c *StorageNumber) Indexes() (ModuleIndex, CallIndex) { return OcwModule, OcwStorageNumber }
func (c *StorageNumber) GetOrigin() Origin                 { return c.Origin }
func (c *StorageNumber) Pack() Packed {
	buffer := c.Origin.pack(Packed{byte(OcwModule), byte(OcwStorageNumber)})
	return append(buffer, c.Number.Bytes()...)
}

func (c *SubmitPricePayload) Indexes() (ModuleIndex, CallIndex) {
	return OcwModule, OcwSubmitPricePayload
}
func (c *SubmitPricePayload) GetOrigin() Origin { return c.Origin }
func (c *SubmitPricePayload) Pack() Packed {
	buffer := c.Origin.pack(Packed{byte(OcwModule), byte(OcwSubmitPricePayload)})
	buffer = appendUint64(buffer, c.Timestamp)
	buffer = append(buffer, c.Payload.Pack()...)
	return appendBytes(buffer, c.Signature)
}

func (c *SubmitPrice) Indexes() (ModuleIndex, CallIndex) { return OcwModule, OcwSubmitPrice }
func (c *SubmitPrice) GetOrigin() Origin                 { return c.Origin }
func (c *SubmitPrice) Pack() Packed {
	buffer := c.Origin.pack(Packed{byte(OcwModule), byte(OcwSubmitPrice)})
	buffer = appendUint64(buffer, c.BlockNumber)
	return appendUint32(buffer, c.Price)
}

func (c *TransferToken) Indexes() (ModuleIndex, CallIndex) { return TokenModule, TokenTransfer }
func (c *TransferToken) GetOrigin() Origin                 { return c.Origin }
func (c *TransferToken) Pack() Packed {
	buffer := c.Origin.pack(Packed{byte(TokenModule), byte(TokenTransfer)})
	buffer = appendAccount(buffer, c.Dest)
	return appendUint64(buffer, c.Value)
}

func (c *TransferTokenFrom) Indexes() (ModuleIndex, CallIndex) {
	return TokenModule, TokenTransferFrom
}
func (c *TransferTokenFrom) GetOrigin() Origin { return c.Origin }
func (c *TransferTokenFrom) Pack() Packed {
	buffer := c.Origin.pack(Packed{byte(TokenModule), byte(TokenTransferFrom)})
	buffer = appendAccount(buffer, c.From)
	buffer = appendAccount(buffer, c.Dest)
	return appendUint64(buffer, c.Value)
}

func (c *ApproveToken) Indexes() (ModuleIndex, CallIndex) { return TokenModule, TokenApprove }
func (c *ApproveToken) GetOrigin() Origin                 { return c.Origin }
func (c *ApproveToken) Pack() Packed {
	buffer := c.Origin.pack(Packed{byte(TokenModule), byte(TokenApprove)})
	buffer = appendAccount(buffer, c.Spender)
	return appendUint64(buffer, c.Value)
}
