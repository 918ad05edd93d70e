// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - the identity of a command signer
//
// An account is the 32 byte ed25519 public key of its controller;
// equality of the raw bytes is the only relation the runtime needs.
// The textual form is Base58 of the raw bytes.
package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/palletd/fault"
)

// AccountSize - length of the raw account bytes
const AccountSize = 32

// Account - the opaque caller identity
type Account [AccountSize]byte

// FromBytes - convert raw bytes to an account
func FromBytes(buffer []byte) (Account, error) {
	var account Account
	if AccountSize != len(buffer) {
		return account, fault.WrongKeyLength
	}
	copy(account[:], buffer)
	return account, nil
}

// FromBase58 - convert a Base58 encoded string to an account
func FromBase58(s string) (Account, error) {
	buffer, err := base58.Decode(s)
	if nil != err {
		return Account{}, err
	}
	return FromBytes(buffer)
}

// Bytes - the raw account bytes
func (account Account) Bytes() []byte {
	return account[:]
}

// String - Base58 encoded account
func (account Account) String() string {
	return base58.Encode(account[:])
}

// IsZero - check for the all-zero account
func (account Account) IsZero() bool {
	return bytes.Equal(account[:], make([]byte, AccountSize))
}

// MarshalText - byte slice for encoded string
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - decode from Base58
func (account *Account) UnmarshalText(s []byte) error {
	a, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*account = a
	return nil
}

// CheckSignature - verify an ed25519 signature made by this account
func (account Account) CheckSignature(message []byte, signature []byte) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.BadProof
	}
	if !ed25519.Verify(ed25519.PublicKey(account[:]), message, signature) {
		return fault.BadProof
	}
	return nil
}
