// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package primitive

import (
	"encoding/binary"

	"github.com/hrissan/blake2/constants"
)

// Blake2b is a single BLAKE2b node, sequential mode or one node of a tree.
// State contains only arrays, so it can be copied by value.
type Blake2b struct {
	h        [8]uint64
	t0, t1   uint64
	buf      [constants.BlockBytesB]byte
	bufLen   int
	outLen   int
	lastNode bool
	final    bool
}

func (s *Blake2b) Init(outLen int) error {
	p := sequentialB(outLen, 0)
	return s.InitParam(&p)
}

func (s *Blake2b) InitKey(outLen int, key []byte) error {
	if len(key) == 0 || len(key) > constants.MaxKeyBytesB {
		return ErrKeyLength
	}
	p := sequentialB(outLen, len(key))
	if err := s.InitParam(&p); err != nil {
		return err
	}
	s.absorbKey(key)
	return nil
}

// InitParam does not absorb key block, even if p.KeyLength != 0, this is done by tree modes
// which set key length in the root parameter block without keying the root.
func (s *Blake2b) InitParam(p *ParamB) error {
	if err := p.validate(); err != nil {
		return err
	}
	var block [64]byte
	pb := p.appendBytes(block[:0])
	*s = Blake2b{outLen: p.DigestLength, lastNode: p.LastNode}
	for i := range s.h {
		s.h[i] = ivB[i] ^ binary.LittleEndian.Uint64(pb[i*8:])
	}
	return nil
}

func (s *Blake2b) absorbKey(key []byte) {
	var block [constants.BlockBytesB]byte
	copy(block[:], key)
	_ = s.Update(block[:]) // fresh state, cannot be finalized
	clear(block[:])
}

func (s *Blake2b) increment(n int) {
	s.t0 += uint64(n)
	if s.t0 < uint64(n) {
		s.t1++
	}
}

// Last block is always kept in buf, because we do not know if it is final until Final is called.
func (s *Blake2b) Update(data []byte) error {
	if s.final {
		return ErrFinalized
	}
	if len(data) == 0 {
		return nil
	}
	if fill := len(s.buf) - s.bufLen; len(data) > fill {
		copy(s.buf[s.bufLen:], data[:fill])
		s.increment(len(s.buf))
		compressB(&s.h, s.buf[:], s.t0, s.t1, 0, 0)
		s.bufLen = 0
		data = data[fill:]
		for len(data) > len(s.buf) {
			s.increment(len(s.buf))
			compressB(&s.h, data[:len(s.buf)], s.t0, s.t1, 0, 0)
			data = data[len(s.buf):]
		}
	}
	s.bufLen += copy(s.buf[s.bufLen:], data)
	return nil
}

// Final writes exactly OutLen() bytes into the beginning of out.
func (s *Blake2b) Final(out []byte) error {
	if len(out) < s.outLen {
		return ErrOutputBuffer
	}
	var full [constants.MaxOutBytesB]byte
	if err := s.finalFull(&full); err != nil {
		return err
	}
	copy(out, full[:s.outLen])
	clear(full[:])
	return nil
}

// tree modes feed full-width chaining values into parent nodes
func (s *Blake2b) finalFull(out *[constants.MaxOutBytesB]byte) error {
	if s.final {
		return ErrFinalized
	}
	s.final = true
	s.increment(s.bufLen)
	clear(s.buf[s.bufLen:])
	var f1 uint64
	if s.lastNode {
		f1 = ^uint64(0)
	}
	compressB(&s.h, s.buf[:], s.t0, s.t1, ^uint64(0), f1)
	for i, v := range s.h {
		binary.LittleEndian.PutUint64(out[i*8:], v)
	}
	return nil
}

func (s *Blake2b) OutLen() int { return s.outLen }

func (s *Blake2b) BlockSize() int { return constants.BlockBytesB }
