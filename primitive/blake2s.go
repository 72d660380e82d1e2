// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package primitive

import (
	"encoding/binary"

	"github.com/hrissan/blake2/constants"
)

// Blake2s is a single BLAKE2s node, 32-bit words, 10 rounds.
type Blake2s struct {
	h        [8]uint32
	t0, t1   uint32
	buf      [constants.BlockBytesS]byte
	bufLen   int
	outLen   int
	lastNode bool
	final    bool
}

func (s *Blake2s) Init(outLen int) error {
	p := sequentialS(outLen, 0)
	return s.InitParam(&p)
}

func (s *Blake2s) InitKey(outLen int, key []byte) error {
	if len(key) == 0 || len(key) > constants.MaxKeyBytesS {
		return ErrKeyLength
	}
	p := sequentialS(outLen, len(key))
	if err := s.InitParam(&p); err != nil {
		return err
	}
	s.absorbKey(key)
	return nil
}

// see Blake2b.InitParam
func (s *Blake2s) InitParam(p *ParamS) error {
	if err := p.validate(); err != nil {
		return err
	}
	var block [32]byte
	pb := p.appendBytes(block[:0])
	*s = Blake2s{outLen: p.DigestLength, lastNode: p.LastNode}
	for i := range s.h {
		s.h[i] = ivS[i] ^ binary.LittleEndian.Uint32(pb[i*4:])
	}
	return nil
}

func (s *Blake2s) absorbKey(key []byte) {
	var block [constants.BlockBytesS]byte
	copy(block[:], key)
	_ = s.Update(block[:]) // fresh state, cannot be finalized
	clear(block[:])
}

func (s *Blake2s) increment(n int) {
	s.t0 += uint32(n)
	if s.t0 < uint32(n) {
		s.t1++
	}
}

func (s *Blake2s) Update(data []byte) error {
	if s.final {
		return ErrFinalized
	}
	if len(data) == 0 {
		return nil
	}
	if fill := len(s.buf) - s.bufLen; len(data) > fill {
		copy(s.buf[s.bufLen:], data[:fill])
		s.increment(len(s.buf))
		compressS(&s.h, s.buf[:], s.t0, s.t1, 0, 0)
		s.bufLen = 0
		data = data[fill:]
		for len(data) > len(s.buf) {
			s.increment(len(s.buf))
			compressS(&s.h, data[:len(s.buf)], s.t0, s.t1, 0, 0)
			data = data[len(s.buf):]
		}
	}
	s.bufLen += copy(s.buf[s.bufLen:], data)
	return nil
}

// Final writes exactly OutLen() bytes into the beginning of out.
func (s *Blake2s) Final(out []byte) error {
	if len(out) < s.outLen {
		return ErrOutputBuffer
	}
	var full [constants.MaxOutBytesS]byte
	if err := s.finalFull(&full); err != nil {
		return err
	}
	copy(out, full[:s.outLen])
	clear(full[:])
	return nil
}

func (s *Blake2s) finalFull(out *[constants.MaxOutBytesS]byte) error {
	if s.final {
		return ErrFinalized
	}
	s.final = true
	s.increment(s.bufLen)
	clear(s.buf[s.bufLen:])
	var f1 uint32
	if s.lastNode {
		f1 = ^uint32(0)
	}
	compressS(&s.h, s.buf[:], s.t0, s.t1, ^uint32(0), f1)
	for i, v := range s.h {
		binary.LittleEndian.PutUint32(out[i*4:], v)
	}
	return nil
}

func (s *Blake2s) OutLen() int { return s.outLen }

func (s *Blake2s) BlockSize() int { return constants.BlockBytesS }
