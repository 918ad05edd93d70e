// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package funds - the currency capability consumed by the runtime
//
// The balances module proper is an external collaborator; the runtime
// only needs the small port defined here. The store-backed Ledger is
// the in-process implementation used by the daemon and the tests.
package funds

import (
	"github.com/bitmark-inc/palletd/account"
	"github.com/bitmark-inc/palletd/fault"
	"github.com/bitmark-inc/palletd/storage"
)

// ExistentialDeposit - minimum balance an account must retain to exist
const ExistentialDeposit = 1

// Currency - reserve and move balances between accounts
type Currency interface {
	Balance(trx storage.Transaction, who account.Account) uint64
	CanWithdraw(trx storage.Transaction, who account.Account, amount uint64) bool
	Transfer(trx storage.Transaction, from account.Account, to account.Account, amount uint64, keepAlive bool) error
	AccountExists(trx storage.Transaction, who account.Account) bool
}

// Ledger - balances held in the store
type Ledger struct {
	pool *storage.PoolHandle
}

// NewLedger - a ledger over the balances pool
func NewLedger() *Ledger {
	return &Ledger{
		pool: storage.Pool.Balances,
	}
}

// Balance - the free balance of an account, zero when absent
func (l *Ledger) Balance(trx storage.Transaction, who account.Account) uint64 {
	balance, _ := trx.GetN(l.pool, who.Bytes())
	return balance
}

// CanWithdraw - check an amount could be withdrawn
func (l *Ledger) CanWithdraw(trx storage.Transaction, who account.Account, amount uint64) bool {
	return l.Balance(trx, who) >= amount
}

// AccountExists - an account exists while it holds any balance
func (l *Ledger) AccountExists(trx storage.Transaction, who account.Account) bool {
	return trx.Has(l.pool, who.Bytes())
}

// Transfer - move an amount between two accounts
//
// with keepAlive the source must retain at least the existential
// deposit; a self transfer of an affordable amount is a no-op
func (l *Ledger) Transfer(trx storage.Transaction, from account.Account, to account.Account, amount uint64, keepAlive bool) error {
	fromBalance := l.Balance(trx, from)
	if fromBalance < amount {
		return fault.NotEnoughCurrency
	}
	if keepAlive && fromBalance-amount < ExistentialDeposit {
		return fault.NotEnoughCurrency
	}
	if from == to || 0 == amount {
		return nil
	}

	toBalance := l.Balance(trx, to)

	trx.PutN(l.pool, from.Bytes(), fromBalance-amount)
	trx.PutN(l.pool, to.Bytes(), toBalance+amount)
	return nil
}

// SetBalance - force a balance, genesis and test use only
func (l *Ledger) SetBalance(who account.Account, amount uint64) {
	l.pool.PutN(who.Bytes(), amount)
}
