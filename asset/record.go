// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"github.com/bitmark-inc/palletd/fault"
)

// field widths of the current record layout
const (
	DNALength     = 16
	NameLength    = 8
	FeatureLength = 5

	recordLengthV0 = DNALength
	recordLengthV1 = DNALength + 4
	recordLengthV2 = DNALength + NameLength + FeatureLength
)

// defaults applied on create and during migration
var (
	DefaultName    = [NameLength]byte{' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '}
	DefaultFeature = [FeatureLength]byte{}
)

// Asset - the current (version 2) record
type Asset struct {
	DNA     [DNALength]byte
	Name    [NameLength]byte
	Feature [FeatureLength]byte
}

// Pack - fixed width binary: dna + name + feature
func (a Asset) Pack() []byte {
	buffer := make([]byte, 0, recordLengthV2)
	buffer = append(buffer, a.DNA[:]...)
	buffer = append(buffer, a.Name[:]...)
	buffer = append(buffer, a.Feature[:]...)
	return buffer
}

// Unpack - decode a current-layout record
func Unpack(buffer []byte) (Asset, error) {
	if recordLengthV2 != len(buffer) {
		return Asset{}, fault.DataInconsistent
	}
	a := Asset{}
	copy(a.DNA[:], buffer[:DNALength])
	copy(a.Name[:], buffer[DNALength:DNALength+NameLength])
	copy(a.Feature[:], buffer[DNALength+NameLength:])
	return a, nil
}

// unpackV0 - legacy layout: dna only
func unpackV0(buffer []byte) (Asset, error) {
	if recordLengthV0 != len(buffer) {
		return Asset{}, fault.DataInconsistent
	}
	a := Asset{
		Name:    DefaultName,
		Feature: DefaultFeature,
	}
	copy(a.DNA[:], buffer)
	return a, nil
}

// unpackV1 - legacy layout: dna + 4 byte name
//
// the short name is copied into the head of the 8 byte name with the
// remainder space filled
func unpackV1(buffer []byte) (Asset, error) {
	if recordLengthV1 != len(buffer) {
		return Asset{}, fault.DataInconsistent
	}
	a := Asset{
		Name:    DefaultName,
		Feature: DefaultFeature,
	}
	copy(a.DNA[:], buffer[:DNALength])
	copy(a.Name[:], buffer[DNALength:])
	return a, nil
}
