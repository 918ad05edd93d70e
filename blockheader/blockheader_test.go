// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockheader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/palletd/blockheader"
)

func TestBlockProgression(t *testing.T) {
	_ = blockheader.Initialise()
	defer blockheader.Finalise()

	blockheader.SetHeight(0)
	assert.Equal(t, uint64(0), blockheader.Height(), "wrong initial height")

	h := blockheader.NewBlock()
	assert.Equal(t, uint64(1), h, "wrong first block")
	assert.Equal(t, uint64(1), blockheader.Height(), "height not stored")

	assert.Equal(t, uint32(0), blockheader.NextExtrinsicIndex(), "wrong first index")
	assert.Equal(t, uint32(1), blockheader.NextExtrinsicIndex(), "wrong second index")

	blockheader.NewBlock()
	assert.Equal(t, uint32(0), blockheader.ExtrinsicIndex(), "index not reset on new block")
}
