// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keypair - local signing keys for the off-chain worker
package keypair

import (
	"crypto/rand"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/palletd/account"
	"github.com/bitmark-inc/palletd/fault"
)

// KeyType - tag of the key family used for oracle payload signatures
const KeyType = "ocwx"

// seed format constants
const (
	seedHeaderLength   = 4
	seedCoreLength     = 32
	seedChecksumLength = 4
)

// magic bytes prefixed to every packed seed
var seedHeader = []byte{0x5a, 0xfe, 0x02, 0x00}

// KeyPair - holds public and private keys and the seed
// that was used to generate them
type KeyPair struct {
	Seed       string
	PublicKey  ed25519.PublicKey
	PrivateKey ed25519.PrivateKey
}

// NewSeed - create a new seed from secure random data
func NewSeed() (string, error) {
	seedCore := make([]byte, seedCoreLength)
	n, err := rand.Read(seedCore)
	if nil != err {
		return "", err
	}
	if seedCoreLength != n {
		panic("too few random bytes")
	}

	packedSeed := append([]byte{}, seedHeader...)
	packedSeed = append(packedSeed, seedCore...)
	checksum := sha3.Sum256(packedSeed)
	packedSeed = append(packedSeed, checksum[:seedChecksumLength]...)

	return base58.Encode(packedSeed), nil
}

// FromSeed - recover the key pair from its seed
func FromSeed(seed string) (*KeyPair, error) {
	packedSeed, err := base58.Decode(seed)
	if nil != err {
		return nil, err
	}
	if seedHeaderLength+seedCoreLength+seedChecksumLength != len(packedSeed) {
		return nil, fault.WrongSeed
	}
	for i, b := range seedHeader {
		if packedSeed[i] != b {
			return nil, fault.WrongSeed
		}
	}

	data := packedSeed[:seedHeaderLength+seedCoreLength]
	checksum := sha3.Sum256(data)
	tail := packedSeed[seedHeaderLength+seedCoreLength:]
	for i := 0; i < seedChecksumLength; i += 1 {
		if checksum[i] != tail[i] {
			return nil, fault.WrongSeed
		}
	}

	privateKey := ed25519.NewKeyFromSeed(packedSeed[seedHeaderLength : seedHeaderLength+seedCoreLength])

	return &KeyPair{
		Seed:       seed,
		PublicKey:  privateKey.Public().(ed25519.PublicKey),
		PrivateKey: privateKey,
	}, nil
}

// Generate - create a fresh key pair
func Generate() (*KeyPair, error) {
	seed, err := NewSeed()
	if nil != err {
		return nil, err
	}
	return FromSeed(seed)
}

// Account - the on-chain identity controlled by this key pair
func (kp *KeyPair) Account() account.Account {
	a, err := account.FromBytes(kp.PublicKey)
	if nil != err {
		panic("keypair: invalid public key size")
	}
	return a
}

// Sign - sign a message with the private key
func (kp *KeyPair) Sign(message []byte) []byte {
	return ed25519.Sign(kp.PrivateKey, message)
}
