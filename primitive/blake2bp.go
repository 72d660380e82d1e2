// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package primitive

import (
	"github.com/hrissan/blake2/constants"
)

const stripeB = constants.ParallelismB * constants.BlockBytesB

// Blake2bp is 4 BLAKE2b leaves hashing every 4th block of input, and a root hashing leaf outputs.
// Leaves are updated one after another, we do not spawn goroutines.
type Blake2bp struct {
	leaves [constants.ParallelismB]Blake2b
	root   Blake2b
	buf    [stripeB]byte
	bufLen int
	outLen int
	final  bool
}

func (s *Blake2bp) Init(outLen int) error {
	return s.init(outLen, nil)
}

func (s *Blake2bp) InitKey(outLen int, key []byte) error {
	if len(key) == 0 || len(key) > constants.MaxKeyBytesB {
		return ErrKeyLength
	}
	return s.init(outLen, key)
}

func (s *Blake2bp) init(outLen int, key []byte) error {
	if outLen < 1 || outLen > constants.MaxOutBytesB {
		return ErrOutputLength
	}
	*s = Blake2bp{outLen: outLen}
	for i := range s.leaves {
		p := ParamB{
			DigestLength: outLen,
			KeyLength:    len(key),
			Fanout:       constants.ParallelismB,
			Depth:        2,
			NodeOffset:   uint64(i),
			InnerLength:  constants.MaxOutBytesB,
			LastNode:     i == len(s.leaves)-1,
		}
		if err := s.leaves[i].InitParam(&p); err != nil {
			return err
		}
		if len(key) != 0 {
			s.leaves[i].absorbKey(key)
		}
	}
	p := ParamB{
		DigestLength: outLen,
		KeyLength:    len(key),
		Fanout:       constants.ParallelismB,
		Depth:        2,
		NodeDepth:    1,
		InnerLength:  constants.MaxOutBytesB,
		LastNode:     true,
	}
	return s.root.InitParam(&p)
}

func (s *Blake2bp) Update(data []byte) error {
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

func (s *Blake2bp) updateStripe(stripe []byte) {
	for i := range s.leaves {
		// leaves are finalized only by Final, and Update refuses calls after it
		_ = s.leaves[i].Update(stripe[i*constants.BlockBytesB : (i+1)*constants.BlockBytesB])
	}
}

func (s *Blake2bp) Final(out []byte) error {
	if s.final {
		return ErrFinalized
	}
	if len(out) < s.outLen {
		return ErrOutputBuffer
	}
	s.final = true
	var chaining [constants.MaxOutBytesB]byte
	for i := range s.leaves {
		if left := s.bufLen - i*constants.BlockBytesB; left > 0 {
			from := i * constants.BlockBytesB
			_ = s.leaves[i].Update(s.buf[from : from+min(left, constants.BlockBytesB)]) // leaf not finalized yet
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

func (s *Blake2bp) OutLen() int { return s.outLen }

func (s *Blake2bp) BlockSize() int { return constants.BlockBytesB }
