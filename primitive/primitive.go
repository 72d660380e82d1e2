// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

// Package primitive implements BLAKE2b, BLAKE2bp, BLAKE2s and BLAKE2sp
// with the interface of the reference C implementation:
// init/init_key/update/final, each returning an error instead of nonzero code.
//
// States contain no pointers or slices, so a copy of the struct value
// is an independent snapshot of the hash.
package primitive

type State interface {
	Update(data []byte) error
	Final(out []byte) error // writes OutLen() bytes, fails if called twice
	OutLen() int
	BlockSize() int
}

var _ State = (*Blake2b)(nil)
var _ State = (*Blake2bp)(nil)
var _ State = (*Blake2s)(nil)
var _ State = (*Blake2sp)(nil)
