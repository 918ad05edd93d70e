// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package commandrecord

import (
	"github.com/bitmark-inc/palletd/account"
	"github.com/bitmark-inc/palletd/fault"
)

type originKind byte

const (
	originSigned originKind = iota
	originNone
	originRoot
)

// Origin - the authenticated principal of a command
//
// one of: a signed account, none (unsigned worker submissions) or root
type Origin struct {
	kind   originKind
	signer account.Account
}

// Signed - an origin carrying the caller's account
func Signed(who account.Account) Origin {
	return Origin{
		kind:   originSigned,
		signer: who,
	}
}

// None - the unsigned origin
func None() Origin {
	return Origin{
		kind: originNone,
	}
}

// Root - the privileged origin
func Root() Origin {
	return Origin{
		kind: originRoot,
	}
}

// SignedAccount - the caller, or WrongOrigin for none/root
func (o Origin) SignedAccount() (account.Account, error) {
	if originSigned != o.kind {
		return account.Account{}, fault.WrongOrigin
	}
	return o.signer, nil
}

// EnsureNone - fail unless the origin is unsigned
func (o Origin) EnsureNone() error {
	if originNone != o.kind {
		return fault.WrongOrigin
	}
	return nil
}

// EnsureRoot - fail unless the origin is root
func (o Origin) EnsureRoot() error {
	if originRoot != o.kind {
		return fault.WrongOrigin
	}
	return nil
}

// IsNone - true for the unsigned origin
func (o Origin) IsNone() bool {
	return originNone == o.kind
}

func (o Origin) String() string {
	switch o.kind {
	case originSigned:
		return "signed:" + o.signer.String()
	case originRoot:
		return "root"
	default:
		return "none"
	}
}

func (o Origin) pack(buffer Packed) Packed {
	buffer = append(buffer, byte(o.kind))
	if originSigned == o.kind {
		buffer = appendAccount(buffer, o.signer)
	}
	return buffer
}
