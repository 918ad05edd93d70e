// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"github.com/bitmark-inc/palletd/commandrecord"
	"github.com/bitmark-inc/palletd/fault"
)

// TagPrefix - transaction tag carried by admitted unsigned commands
const TagPrefix = "ExampleOffchainWorker"

// Longevity - blocks an admitted unsigned command stays valid
const Longevity = 5

// ValidTransaction - admission parameters of an unsigned command
type ValidTransaction struct {
	Tag       string
	Longevity uint64
	Propagate bool
}

// Validate - admission check for unsigned commands
//
// a price payload submission is admitted iff its embedded signature
// verifies; the legacy price submission is always admitted; any other
// call cannot enter unsigned. Rejected commands are never executed.
func Validate(command commandrecord.Command) (ValidTransaction, error) {
	switch c := command.(type) {

	case *commandrecord.SubmitPricePayload:
		err := c.Payload.Verify(c.Signature)
		if nil != err {
			return ValidTransaction{}, fault.BadProof
		}
		return validTransaction(), nil

	case *commandrecord.SubmitPrice:
		return validTransaction(), nil

	default:
		return ValidTransaction{}, fault.InvalidUnsignedCall
	}
}

func validTransaction() ValidTransaction {
	return ValidTransaction{
		Tag:       TagPrefix,
		Longevity: Longevity,
		Propagate: true,
	}
}
