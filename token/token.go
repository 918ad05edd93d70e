// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package token - a minimal fungible token ledger
//
// Independent of the native currency in the funds package: total
// supply is fixed at initialisation and assigned to the caller, then
// moves by transfer, or by transfer-from within a prior approval.
package token

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/palletd/account"
	"github.com/bitmark-inc/palletd/events"
	"github.com/bitmark-inc/palletd/fault"
	"github.com/bitmark-inc/palletd/storage"
)

// control cell keys
var (
	supplyKey = []byte("supply")
)

// Module - the token command handlers
type Module struct {
	log  *logger.L
	sink *events.Sink
}

// New - construct the module with its capability bundle
func New(sink *events.Sink) *Module {
	return &Module{
		log:  logger.New("token"),
		sink: sink,
	}
}

// allowances are keyed by owner then spender
func allowanceKey(owner account.Account, spender account.Account) []byte {
	key := make([]byte, 0, 2*account.AccountSize)
	key = append(key, owner.Bytes()...)
	key = append(key, spender.Bytes()...)
	return key
}

// Init - fix the total supply and assign it to the holder
//
// runs once, at genesis or by root
func (m *Module) Init(trx storage.Transaction, holder account.Account, totalSupply uint64) error {
	if trx.Has(storage.Pool.TokenControl, supplyKey) {
		return fault.AlreadyInitialised
	}

	trx.PutN(storage.Pool.TokenControl, supplyKey, totalSupply)
	trx.PutN(storage.Pool.TokenBalances, holder.Bytes(), totalSupply)

	m.log.Infof("total supply: %d  holder: %s", totalSupply, holder)
	return nil
}

// TotalSupply - the fixed supply, zero before Init
func (m *Module) TotalSupply(trx storage.Transaction) uint64 {
	supply, _ := trx.GetN(storage.Pool.TokenControl, supplyKey)
	return supply
}

// BalanceOf - token balance of an account, zero when absent
func (m *Module) BalanceOf(trx storage.Transaction, who account.Account) uint64 {
	balance, _ := trx.GetN(storage.Pool.TokenBalances, who.Bytes())
	return balance
}

// AllowanceOf - remaining approval from owner to spender
func (m *Module) AllowanceOf(trx storage.Transaction, owner account.Account, spender account.Account) uint64 {
	allowance, _ := trx.GetN(storage.Pool.TokenAllowances, allowanceKey(owner, spender))
	return allowance
}

// Transfer - move tokens from the caller to another account
func (m *Module) Transfer(trx storage.Transaction, caller account.Account, to account.Account, value uint64) error {
	return m.move(trx, caller, to, value)
}

// TransferFrom - spend a prior approval on the owner's balance
//
// the allowance is reduced before the balances move, so a failed move
// still consumes no allowance once the command aborts
func (m *Module) TransferFrom(trx storage.Transaction, caller account.Account, from account.Account, to account.Account, value uint64) error {
	allowance := m.AllowanceOf(trx, from, caller)
	if allowance < value {
		return fault.AllowanceTooLow
	}

	trx.PutN(storage.Pool.TokenAllowances, allowanceKey(from, caller), allowance-value)

	return m.move(trx, from, to, value)
}

// Approve - set the spender's allowance on the caller's balance
//
// a repeat approval overwrites, it does not accumulate
func (m *Module) Approve(trx storage.Transaction, caller account.Account, spender account.Account, value uint64) error {
	trx.PutN(storage.Pool.TokenAllowances, allowanceKey(caller, spender), value)

	m.sink.Emit(events.TokenApproval{From: caller, To: spender, Value: value})
	return nil
}

func (m *Module) move(trx storage.Transaction, from account.Account, to account.Account, value uint64) error {
	fromBalance := m.BalanceOf(trx, from)
	if value > fromBalance {
		return fault.BalanceTooLow
	}

	if from != to {
		toBalance := m.BalanceOf(trx, to)
		trx.PutN(storage.Pool.TokenBalances, from.Bytes(), fromBalance-value)
		trx.PutN(storage.Pool.TokenBalances, to.Bytes(), toBalance+value)
	}

	m.sink.Emit(events.TokenTransfer{From: from, To: to, Value: value})
	return nil
}
