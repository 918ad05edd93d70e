// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - the per-command atomic scope over the pools
//
// all writes are buffered until Commit; Abort discards them together
// with any reads-own-writes overlay
type Transaction interface {
	Abort()
	Begin() error
	Commit() error
	Delete(pool *PoolHandle, key []byte)
	Get(pool *PoolHandle, key []byte) []byte
	GetN(pool *PoolHandle, key []byte) (uint64, bool)
	Has(pool *PoolHandle, key []byte) bool
	InUse() bool
	IterDrain(pool *PoolHandle, f func(key []byte, value []byte))
	Put(pool *PoolHandle, key []byte, value []byte)
	PutN(pool *PoolHandle, key []byte, value uint64)
}

type transactionData struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &transactionData{
		access: access,
	}
}

func (t *transactionData) Begin() error {
	return t.access.Begin()
}

func (t *transactionData) Commit() error {
	return t.access.Commit()
}

func (t *transactionData) Abort() {
	t.access.Abort()
}

func (t *transactionData) InUse() bool {
	return t.access.InUse()
}

func (t *transactionData) Put(pool *PoolHandle, key []byte, value []byte) {
	pool.Put(key, value)
}

func (t *transactionData) PutN(pool *PoolHandle, key []byte, value uint64) {
	pool.PutN(key, value)
}

func (t *transactionData) Delete(pool *PoolHandle, key []byte) {
	pool.Delete(key)
}

func (t *transactionData) Get(pool *PoolHandle, key []byte) []byte {
	return pool.Get(key)
}

func (t *transactionData) GetN(pool *PoolHandle, key []byte) (uint64, bool) {
	return pool.GetN(key)
}

func (t *transactionData) Has(pool *PoolHandle, key []byte) bool {
	return pool.Has(key)
}

// IterDrain - yield and delete every committed element of a pool
//
// the callback sees raw user keys; deletions join the open batch so
// an abort restores the drained records
func (t *transactionData) IterDrain(pool *PoolHandle, f func(key []byte, value []byte)) {
	for _, element := range pool.Elements() {
		pool.Delete(element.Key)
		f(element.Key, element.Value)
	}
}
