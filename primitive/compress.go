// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package primitive

import (
	"encoding/binary"
	"math/bits"
)

var ivB = [8]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

var ivS = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

var sigma = [10][16]byte{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{14, 10, 4, 8, 9, 15, 13, 6, 1, 12, 0, 2, 11, 7, 5, 3},
	{11, 8, 12, 0, 5, 2, 15, 13, 10, 14, 3, 6, 7, 1, 9, 4},
	{7, 9, 3, 1, 13, 12, 11, 14, 2, 6, 5, 10, 4, 0, 15, 8},
	{9, 0, 5, 7, 2, 4, 10, 15, 14, 1, 11, 12, 6, 8, 3, 13},
	{2, 12, 6, 10, 0, 11, 8, 3, 4, 13, 7, 5, 15, 14, 1, 9},
	{12, 5, 1, 15, 14, 13, 4, 10, 0, 7, 6, 3, 9, 2, 8, 11},
	{13, 11, 7, 14, 12, 1, 3, 9, 5, 0, 15, 4, 8, 6, 2, 10},
	{6, 15, 14, 9, 11, 3, 0, 8, 12, 2, 13, 7, 1, 4, 10, 5},
	{10, 2, 8, 4, 7, 6, 1, 5, 15, 11, 9, 14, 3, 12, 13, 0},
}

func gB(v *[16]uint64, a, b, c, d int, x, y uint64) {
	v[a] += v[b] + x
	v[d] = bits.RotateLeft64(v[d]^v[a], -32)
	v[c] += v[d]
	v[b] = bits.RotateLeft64(v[b]^v[c], -24)
	v[a] += v[b] + y
	v[d] = bits.RotateLeft64(v[d]^v[a], -16)
	v[c] += v[d]
	v[b] = bits.RotateLeft64(v[b]^v[c], -63)
}

// block must be exactly BlockBytesB long
func compressB(h *[8]uint64, block []byte, t0, t1, f0, f1 uint64) {
	var m [16]uint64
	for i := range m {
		m[i] = binary.LittleEndian.Uint64(block[i*8:])
	}
	v := [16]uint64{
		h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7],
		ivB[0], ivB[1], ivB[2], ivB[3], ivB[4] ^ t0, ivB[5] ^ t1, ivB[6] ^ f0, ivB[7] ^ f1,
	}
	for r := 0; r < 12; r++ {
		s := &sigma[r%10]
		gB(&v, 0, 4, 8, 12, m[s[0]], m[s[1]])
		gB(&v, 1, 5, 9, 13, m[s[2]], m[s[3]])
		gB(&v, 2, 6, 10, 14, m[s[4]], m[s[5]])
		gB(&v, 3, 7, 11, 15, m[s[6]], m[s[7]])
		gB(&v, 0, 5, 10, 15, m[s[8]], m[s[9]])
		gB(&v, 1, 6, 11, 12, m[s[10]], m[s[11]])
		gB(&v, 2, 7, 8, 13, m[s[12]], m[s[13]])
		gB(&v, 3, 4, 9, 14, m[s[14]], m[s[15]])
	}
	for i := range h {
		h[i] ^= v[i] ^ v[i+8]
	}
}

func gS(v *[16]uint32, a, b, c, d int, x, y uint32) {
	v[a] += v[b] + x
	v[d] = bits.RotateLeft32(v[d]^v[a], -16)
	v[c] += v[d]
	v[b] = bits.RotateLeft32(v[b]^v[c], -12)
	v[a] += v[b] + y
	v[d] = bits.RotateLeft32(v[d]^v[a], -8)
	v[c] += v[d]
	v[b] = bits.RotateLeft32(v[b]^v[c], -7)
}

// block must be exactly BlockBytesS long
func compressS(h *[8]uint32, block []byte, t0, t1, f0, f1 uint32) {
	var m [16]uint32
	for i := range m {
		m[i] = binary.LittleEndian.Uint32(block[i*4:])
	}
	v := [16]uint32{
		h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7],
		ivS[0], ivS[1], ivS[2], ivS[3], ivS[4] ^ t0, ivS[5] ^ t1, ivS[6] ^ f0, ivS[7] ^ f1,
	}
	for r := 0; r < 10; r++ {
		s := &sigma[r]
		gS(&v, 0, 4, 8, 12, m[s[0]], m[s[1]])
		gS(&v, 1, 5, 9, 13, m[s[2]], m[s[3]])
		gS(&v, 2, 6, 10, 14, m[s[4]], m[s[5]])
		gS(&v, 3, 7, 11, 15, m[s[6]], m[s[7]])
		gS(&v, 0, 5, 10, 15, m[s[8]], m[s[9]])
		gS(&v, 1, 6, 11, 12, m[s[10]], m[s[11]])
		gS(&v, 2, 7, 8, 13, m[s[12]], m[s[13]])
		gS(&v, 3, 4, 9, 14, m[s[14]], m[s[15]])
	}
	for i := range h {
		h[i] ^= v[i] ^ v[i+8]
	}
}
