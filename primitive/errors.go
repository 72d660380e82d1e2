// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package primitive

import "errors"

// Every error corresponds to nonzero return of the reference C functions.

var ErrOutputLength = errors.New("blake2 primitive: output length out of range")
var ErrKeyLength = errors.New("blake2 primitive: key length out of range")
var ErrParam = errors.New("blake2 primitive: invalid parameter block")
var ErrOutputBuffer = errors.New("blake2 primitive: output buffer is smaller than output length")
var ErrFinalized = errors.New("blake2 primitive: state already finalized")
