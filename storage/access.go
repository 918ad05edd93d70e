// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/palletd/fault"
)

// Access - the batch and overlay wrapper around the database
type Access interface {
	Abort()
	Begin() error
	Commit() error
	Delete(key []byte)
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)
	InUse() bool
	Iterator(rng *ldb_util.Range) iterator.Iterator
	Put(key []byte, value []byte)
}

type accessData struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newAccess(db *leveldb.DB, cache Cache) Access {
	return &accessData{
		inUse: false,
		db:    db,
		batch: new(leveldb.Batch),
		cache: cache,
	}
}

func (d *accessData) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return fault.TransactionInUse
	}

	d.inUse = true
	return nil
}

// Put - outside a transaction the write goes straight to the
// database, inside it is held in the batch until Commit
func (d *accessData) Put(key []byte, value []byte) {
	d.Lock()
	defer d.Unlock()

	if !d.inUse {
		err := d.db.Put(key, value, nil)
		if nil != err {
			panic("storage: direct put failed: " + err.Error())
		}
		return
	}
	d.cache.Set(dbPut, string(key), value)
	d.batch.Put(key, value)
}

func (d *accessData) Delete(key []byte) {
	d.Lock()
	defer d.Unlock()

	if !d.inUse {
		err := d.db.Delete(key, nil)
		if nil != err {
			panic("storage: direct delete failed: " + err.Error())
		}
		return
	}
	d.cache.Set(dbDelete, string(key), nil)
	d.batch.Delete(key)
}

func (d *accessData) Commit() error {
	d.Lock()
	defer d.Unlock()

	err := d.db.Write(d.batch, nil)
	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
	return err
}

func (d *accessData) Abort() {
	d.Lock()
	defer d.Unlock()

	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
}

func (d *accessData) Get(key []byte) ([]byte, error) {
	value, cached, removed := d.cache.Get(string(key))
	if cached {
		if removed {
			return nil, leveldb.ErrNotFound
		}
		return value, nil
	}
	return d.db.Get(key, nil)
}

func (d *accessData) Has(key []byte) (bool, error) {
	_, cached, removed := d.cache.Get(string(key))
	if cached {
		return !removed, nil
	}
	return d.db.Has(key, nil)
}

// Iterator - iterates committed records only; the overlay is not merged
func (d *accessData) Iterator(rng *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(rng, nil)
}

func (d *accessData) InUse() bool {
	d.Lock()
	defer d.Unlock()
	return d.inUse
}
