// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package primitive

import (
	"github.com/hrissan/blake2/constants"
)

const stripeS = constants.ParallelismS * constants.BlockBytesS

// Blake2sp is 8 BLAKE2s leaves hashing every 8th block of input, and a root hashing leaf outputs.
type Blake2sp struct {
	leaves [constants.ParallelismS]Blake2s
	root   Blake2s
	buf    [stripeS]byte
	bufLen int
	outLen int
	final  bool
}

func (s *Blake2sp) Init(outLen int) error {
	return s.init(outLen, nil)
}

func (s *Blake2sp) InitKey(outLen int, key []byte) error {
	if len(key) == 0 || len(key) > constants.MaxKeyBytesS {
		return ErrKeyLength
	}
	return s.init(outLen, key)
}

func (s *Blake2sp) init(outLen int, key []byte) error {
	if outLen < 1 || outLen > constants.MaxOutBytesS {
		return ErrOutputLength
	}
	*s = Blake2sp{outLen: outLen}
	for i := range s.leaves {
		p := ParamS{
			DigestLength: outLen,
			KeyLength:    len(key),
			Fanout:       constants.ParallelismS,
			Depth:        2,
			NodeOffset:   uint64(i),
			InnerLength:  constants.MaxOutBytesS,
			LastNode:     i == len(s.leaves)-1,
		}
		if err := s.leaves[i].InitParam(&p); err != nil {
			return err
		}
		if len(key) != 0 {
			s.leaves[i].absorbKey(key)
		}
	}
	p := ParamS{
		DigestLength: outLen,
		KeyLength:    len(key),
		Fanout:       constants.ParallelismS,
		Depth:        2,
		NodeDepth:    1,
		InnerLength:  constants.MaxOutBytesS,
		LastNode:     true,
	}
	return s.root.InitParam(&p)
}

func (s *Blake2sp) Update(data []byte) error {
	if s.final {
		return ErrFinalized
	}
	if fill := len(s.buf) - s.bufLen; s.bufLen != 0 && len(data) >= fill {
		copy(s.buf[s.bufLen:], data[:fill])
		s.updateStripe(s.buf[:])
		s.bufLen = 0
		data = data[fill:]
	}
	for len(data) >= len(s.buf) {
		s.updateStripe(data[:len(s.buf)])
		data = data[len(s.buf):]
	}
	s.bufLen += copy(s.buf[s.bufLen:], data)
	return nil
}

func (s *Blake2sp) updateStripe(stripe []byte) {
	for i := range s.leaves {
		// leaves are finalized only by Final, and Update refuses calls after it
		_ = s.leaves[i].Update(stripe[i*constants.BlockBytesS : (i+1)*constants.BlockBytesS])
	}
}

func (s *Blake2sp) Final(out []byte) error {
	if s.final {
		return ErrFinalized
	}
	if len(out) < s.outLen {
		return ErrOutputBuffer
	}
	s.final = true
	var chaining [constants.MaxOutBytesS]byte
	for i := range s.leaves {
		if left := s.bufLen - i*constants.BlockBytesS; left > 0 {
			from := i * constants.BlockBytesS
			_ = s.leaves[i].Update(s.buf[from : from+min(left, constants.BlockBytesS)]) // leaf not finalized yet
		}
		if err := s.leaves[i].finalFull(&chaining); err != nil {
			return err
		}
		if err := s.root.Update(chaining[:]); err != nil {
			return err
		}
	}
	clear(chaining[:])
	return s.root.Final(out)
}

func (s *Blake2sp) OutLen() int { return s.outLen }

func (s *Blake2sp) BlockSize() int { return constants.BlockBytesS }
