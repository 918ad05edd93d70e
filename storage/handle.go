// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"golang.org/x/crypto/blake2b"

	"github.com/bitmark-inc/logger"
)

// length of the keyed hash embedded in every record key
const hashedKeyLength = 16

// PoolHandle - handle of a pool
type PoolHandle struct {
	prefix byte
	limit  []byte
	access Access
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

func newPool(prefix byte, limit []byte, access Access) (*PoolHandle, error) {
	p := &PoolHandle{
		prefix: prefix,
		limit:  limit,
		access: access,
	}
	// verify the hash parameters early
	_, err := blake2b.New(hashedKeyLength, p.hashKey())
	if nil != err {
		return nil, err
	}
	return p, nil
}

// each pool keys its hash with its own prefix so identical user keys
// in different pools never collide
func (p *PoolHandle) hashKey() []byte {
	return []byte{p.prefix}
}

// prefixKey - build: prefix + keyed hash + raw key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	h, err := blake2b.New(hashedKeyLength, p.hashKey())
	logger.PanicIfError("pool.prefixKey", err)
	h.Write(key)

	prefixedKey := make([]byte, 1, 1+hashedKeyLength+len(key))
	prefixedKey[0] = p.prefix
	prefixedKey = h.Sum(prefixedKey)
	return append(prefixedKey, key...)
}

// strip the pool prefix and hash to recover the raw user key
func (p *PoolHandle) rawKey(prefixedKey []byte) []byte {
	if len(prefixedKey) < 1+hashedKeyLength {
		logger.Panicf("pool.rawKey truncated key: %x", prefixedKey)
	}
	key := make([]byte, len(prefixedKey)-1-hashedKeyLength)
	copy(key, prefixedKey[1+hashedKeyLength:])
	return key
}

// Put - store a key/value bytes pair
func (p *PoolHandle) Put(key []byte, value []byte) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.access {
		logger.Panic("pool.Put nil access")
		return
	}
	p.access.Put(p.prefixKey(key), value)
}

// PutN - store a uint64 value
func (p *PoolHandle) PutN(key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	p.Put(key, buffer)
}

// Delete - remove a key
func (p *PoolHandle) Delete(key []byte) {
	poolData.RLock()
	defer poolData.RUnlock()
	p.access.Delete(p.prefixKey(key))
}

// Get - read a value for a given key
//
// returns nil if the record was not found
func (p *PoolHandle) Get(key []byte) []byte {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.access {
		return nil
	}
	value, err := p.access.Get(p.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.Get", err)
	return value
}

// GetN - read a record and decode as big endian uint64
//
// second parameter is false if record was not found
// panics if not 8 bytes in the record
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	buffer := p.Get(key)
	if nil == buffer {
		return 0, false
	}
	if 8 != len(buffer) {
		logger.Panicf("pool.GetN truncated record for: %x: %x", key, buffer)
	}
	return binary.BigEndian.Uint64(buffer), true
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.access {
		return false
	}
	here, err := p.access.Has(p.prefixKey(key))
	logger.PanicIfError("pool.Has", err)
	return here
}

// Range - the key range covering the whole pool
func (p *PoolHandle) Range() *ldb_util.Range {
	return &ldb_util.Range{
		Start: []byte{p.prefix}, // included in the range
		Limit: p.limit,          // excluded from the range
	}
}

// Elements - read every committed element of the pool in key order
//
// does not see writes pending in an open transaction
func (p *PoolHandle) Elements() []Element {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.access {
		return nil
	}

	elements := []Element{}
	iter := p.access.Iterator(p.Range())
	for iter.Next() {
		value := make([]byte, len(iter.Value()))
		copy(value, iter.Value())
		elements = append(elements, Element{
			Key:   p.rawKey(iter.Key()),
			Value: value,
		})
	}
	iter.Release()
	err := iter.Error()
	logger.PanicIfError("pool.Elements", err)
	return elements
}

// LastElement - get the last element in a pool
func (p *PoolHandle) LastElement() (Element, bool) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.access {
		return Element{}, false
	}

	iter := p.access.Iterator(p.Range())

	found := false
	result := Element{}
	if iter.Last() {
		value := make([]byte, len(iter.Value()))
		copy(value, iter.Value())

		result.Key = p.rawKey(iter.Key())
		result.Value = value
		found = true
	}
	iter.Release()
	err := iter.Error()
	logger.PanicIfError("pool.LastElement", err)
	return result, found
}
