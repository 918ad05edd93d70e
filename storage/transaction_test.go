// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/palletd/storage"
)

// a transaction must see its own writes and drop them on abort
func TestTransactionAbort(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	p.Put([]byte("persistent"), []byte("before"))

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin failed")

	trx.Put(p, []byte("volatile"), []byte("inside"))
	trx.Delete(p, []byte("persistent"))

	// reads through the open scope see the overlay
	assert.Equal(t, []byte("inside"), trx.Get(p, []byte("volatile")), "own write invisible")
	assert.False(t, trx.Has(p, []byte("persistent")), "own delete invisible")

	trx.Abort()

	// all scope writes are gone
	assert.Nil(t, p.Get([]byte("volatile")), "aborted write leaked")
	assert.Equal(t, []byte("before"), p.Get([]byte("persistent")), "aborted delete applied")
}

// a committed transaction must persist all writes atomically
func TestTransactionCommit(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin failed")

	trx.Put(p, []byte("one"), []byte("1"))
	trx.PutN(p, []byte("two"), 2)
	err = trx.Commit()
	assert.Nil(t, err, "commit failed")

	assert.Equal(t, []byte("1"), p.Get([]byte("one")), "write lost")
	n, ok := p.GetN([]byte("two"))
	assert.True(t, ok, "counter lost")
	assert.Equal(t, uint64(2), n, "wrong counter")
}

// only one transaction scope may be open at a time
func TestTransactionExclusive(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin failed")

	_, err = storage.NewDBTransaction()
	assert.Equal(t, err, trx.Begin(), "nested begin mismatch")
	assert.NotNil(t, err, "nested begin allowed")

	trx.Abort()

	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err, "begin after abort failed")
	trx.Abort()
}

// drain yields every element exactly once and deletes it
func TestTransactionIterDrain(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	p.Put([]byte("a"), []byte("1"))
	p.Put([]byte("b"), []byte("2"))
	p.Put([]byte("c"), []byte("3"))

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin failed")

	drained := map[string]string{}
	trx.IterDrain(p, func(key []byte, value []byte) {
		drained[string(key)] = string(value)
		// rewrite under the same key, new layout
		trx.Put(p, key, append([]byte("new-"), value...))
	})
	err = trx.Commit()
	assert.Nil(t, err, "commit failed")

	assert.Equal(t, map[string]string{"a": "1", "b": "2", "c": "3"}, drained, "wrong drain")

	// the rewrite must win over the delete inside the same batch
	assert.Equal(t, []byte("new-1"), p.Get([]byte("a")), "rewrite lost")
	assert.Equal(t, []byte("new-2"), p.Get([]byte("b")), "rewrite lost")
	assert.Equal(t, []byte("new-3"), p.Get([]byte("c")), "rewrite lost")
}
