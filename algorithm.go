// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package blake2

import (
	"github.com/hrissan/blake2/blake2errors"
	"github.com/hrissan/blake2/constants"
)

type Algorithm uint8

// zero value is not a valid algorithm, it is the algorithm of zero Hash
const (
	BLAKE2b Algorithm = iota + 1
	BLAKE2bp
	BLAKE2s
	BLAKE2sp
)

var algorithmNames = [...]string{
	BLAKE2b:  "blake2b",
	BLAKE2bp: "blake2bp",
	BLAKE2s:  "blake2s",
	BLAKE2sp: "blake2sp",
}

// Algorithms returns all supported algorithms in stable order.
func Algorithms() []Algorithm {
	return []Algorithm{BLAKE2b, BLAKE2bp, BLAKE2s, BLAKE2sp}
}

// ParseAlgorithm accepts exactly "blake2b", "blake2bp", "blake2s" and "blake2sp".
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, alg := range Algorithms() {
		if algorithmNames[alg] == name {
			return alg, nil
		}
	}
	return 0, blake2errors.ErrUnsupportedAlgorithm
}

func (a Algorithm) String() string {
	if !a.valid() {
		return "unknown"
	}
	return algorithmNames[a]
}

func (a Algorithm) valid() bool {
	return a >= BLAKE2b && a <= BLAKE2sp
}

func (a Algorithm) wide() bool { return a == BLAKE2b || a == BLAKE2bp }

// MaxDigestLength is also the default digest length.
func (a Algorithm) MaxDigestLength() int {
	if a.wide() {
		return constants.MaxOutBytesB
	}
	return constants.MaxOutBytesS
}

func (a Algorithm) MaxKeyLength() int {
	if a.wide() {
		return constants.MaxKeyBytesB
	}
	return constants.MaxKeyBytesS
}

func (a Algorithm) BlockSize() int {
	if a.wide() {
		return constants.BlockBytesB
	}
	return constants.BlockBytesS
}
