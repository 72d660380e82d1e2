// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package constants

// 512-bit family (BLAKE2b, BLAKE2bp)
const BlockBytesB = 128
const MaxOutBytesB = 64
const MaxKeyBytesB = 64

// 256-bit family (BLAKE2s, BLAKE2sp)
const BlockBytesS = 64
const MaxOutBytesS = 32
const MaxKeyBytesS = 32

// Number of leaves of the parallel variants
const ParallelismB = 4
const ParallelismS = 8

// We want fixed-size storage for digests, so output buffers can live on stack.
const MaxOutBytes = MaxOutBytesB
