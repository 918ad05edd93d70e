// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package claims

import (
	"encoding/binary"

	"github.com/bitmark-inc/palletd/account"
	"github.com/bitmark-inc/palletd/fault"
)

// Record - ownership data stored against a proof
//
// BlockNumber is the block of the last ownership change: a transfer
// rewrites it, so it is not the block of original creation.
type Record struct {
	Owner       account.Account
	BlockNumber uint64
}

const recordLength = account.AccountSize + 8

// Pack - fixed width binary: owner + big endian block number
func (r Record) Pack() []byte {
	buffer := make([]byte, recordLength)
	copy(buffer, r.Owner.Bytes())
	binary.BigEndian.PutUint64(buffer[account.AccountSize:], r.BlockNumber)
	return buffer
}

// UnpackRecord - decode a stored record
func UnpackRecord(buffer []byte) (Record, error) {
	if recordLength != len(buffer) {
		return Record{}, fault.DataInconsistent
	}
	owner, err := account.FromBytes(buffer[:account.AccountSize])
	if nil != err {
		return Record{}, err
	}
	return Record{
		Owner:       owner,
		BlockNumber: binary.BigEndian.Uint64(buffer[account.AccountSize:]),
	}, nil
}
