// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	ExistsError     GenericError
	InvalidError    GenericError
	LengthError     GenericError
	NotFoundError   GenericError
	PermissionError GenericError
	ProcessError    GenericError
)

// common errors - keep in alphabetic order
var (
	AllowanceTooLow     = ProcessError("allowance too low")
	AlreadyExist        = ExistsError("record already exists")
	AlreadyInitialised  = ProcessError("already initialised")
	BadPriceResponse    = InvalidError("price response is invalid")
	BadProof            = InvalidError("signature verification failed")
	BadRecipient        = InvalidError("recipient is the current owner")
	BalanceTooLow       = ProcessError("balance too low")
	DataInconsistent    = ProcessError("database is inconsistent")
	ErrorOwner          = PermissionError("caller does not own the record")
	InvalidId           = NotFoundError("referenced asset does not exist")
	InvalidUnsignedCall = InvalidError("call cannot be submitted unsigned")
	MissingSigningKey   = NotFoundError("no local signing key")
	NoDest              = NotFoundError("destination account does not exist") // declared, never returned
	NotEnoughCurrency   = ProcessError("balance insufficient to pay")
	NotExist            = NotFoundError("record does not exist")
	NotInitialised      = ProcessError("not initialised")
	NotOwner            = PermissionError("caller does not own the asset")
	OnSale              = ProcessError("asset is listed for sale")
	Overflow            = ProcessError("identifier allocation exhausted")
	SameOwner           = InvalidError("destination is the current owner")
	SingleParent        = InvalidError("breeding needs two distinct parents")
	TooLong             = LengthError("data exceeds maximum length")
	TransactionInUse    = ProcessError("transaction already in use")
	WrongKeyLength      = LengthError("key length is invalid")
	WrongOrigin         = PermissionError("origin does not match the call")
	WrongSeed           = InvalidError("seed is invalid")
	WrongVersion        = ProcessError("unsupported storage version")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e LengthError) Error() string     { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }

// IsErrExists - determine the class of an error
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - check if an invalid data error
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrLength - check if a length limit error
func IsErrLength(e error) bool { _, ok := e.(LengthError); return ok }

// IsErrNotFound - check if a lookup miss
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrPermission - check if an ownership or origin error
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }

// IsErrProcess - check if a processing error
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }
