// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

// Package blake2 provides a single incremental hash object over
// BLAKE2b, BLAKE2bp, BLAKE2s and BLAKE2sp, keyed or not, with
// configurable digest length.
//
// A Hash is finalized by Digest exactly once. Copy takes a snapshot
// at any point, and the snapshot is independent of the original,
// so they can be used from different goroutines.
// A single Hash must not be used concurrently.
package blake2

import (
	"github.com/hrissan/blake2/blake2errors"
	"github.com/hrissan/blake2/constants"
	"github.com/hrissan/blake2/primitive"
)

type lifecycle uint8

const (
	uninitialized lifecycle = iota // zero Hash
	initialized
	finalized
)

type Hash struct {
	alg       Algorithm
	state     primitive.State // exactly one of *Blake2b, *Blake2bp, *Blake2s, *Blake2sp matching alg
	outLen    int
	lifecycle lifecycle
}

// New creates hash with default (maximum) digest length of algorithm.
// Empty or nil key means unkeyed hashing.
func New(algorithm string, key []byte) (*Hash, error) {
	alg, err := ParseAlgorithm(algorithm)
	if err != nil {
		return nil, err
	}
	return newHash(alg, key, alg.MaxDigestLength())
}

// NewSized creates hash producing digestLength bytes, which must be
// in range 1..64 for blake2b/blake2bp and 1..32 for blake2s/blake2sp.
func NewSized(algorithm string, key []byte, digestLength int) (*Hash, error) {
	alg, err := ParseAlgorithm(algorithm)
	if err != nil {
		return nil, err
	}
	if digestLength < 1 || digestLength > alg.MaxDigestLength() {
		return nil, blake2errors.ErrInvalidDigestLength
	}
	return newHash(alg, key, digestLength)
}

type initializer interface {
	primitive.State
	Init(outLen int) error
	InitKey(outLen int, key []byte) error
}

// digest length is validated by callers, so we can test primitive failures
func newHash(alg Algorithm, key []byte, outLen int) (*Hash, error) {
	if len(key) > alg.MaxKeyLength() {
		return nil, blake2errors.ErrKeyTooLarge
	}
	var state initializer
	switch alg {
	case BLAKE2b:
		state = &primitive.Blake2b{}
	case BLAKE2bp:
		state = &primitive.Blake2bp{}
	case BLAKE2s:
		state = &primitive.Blake2s{}
	case BLAKE2sp:
		state = &primitive.Blake2sp{}
	default:
		return nil, blake2errors.ErrUnsupportedAlgorithm
	}
	var err error
	if len(key) == 0 {
		err = state.Init(outLen)
	} else {
		err = state.InitKey(outLen, key)
	}
	if err != nil {
		return nil, blake2errors.ErrPrimitiveInitFailed
	}
	return &Hash{alg: alg, state: state, outLen: outLen, lifecycle: initialized}, nil
}

// newFrom is the only way to get Hash without running primitive init.
// Primitive states contain only arrays, so dereference is a deep copy.
func newFrom(src *Hash) (*Hash, error) {
	var state primitive.State
	switch s := src.state.(type) {
	case *primitive.Blake2b:
		c := *s
		state = &c
	case *primitive.Blake2bp:
		c := *s
		state = &c
	case *primitive.Blake2s:
		c := *s
		state = &c
	case *primitive.Blake2sp:
		c := *s
		state = &c
	default: // zero Hash
		return nil, blake2errors.ErrCloneFailed
	}
	return &Hash{alg: src.alg, state: state, outLen: src.outLen, lifecycle: src.lifecycle}, nil
}

// Update absorbs data and returns h for chaining.
// Fails with ErrNotInitialized on zero Hash and after Digest.
func (h *Hash) Update(data []byte) (*Hash, error) {
	if h == nil || h.lifecycle != initialized {
		return nil, blake2errors.ErrNotInitialized
	}
	if err := h.state.Update(data); err != nil {
		return nil, blake2errors.ErrNotInitialized // primitive only refuses updates after final
	}
	return h, nil
}

// Digest finalizes hash and returns exactly Size() bytes.
// Hash is closed even if primitive final fails, so every following
// Update or Digest fails with ErrNotInitialized.
func (h *Hash) Digest() ([]byte, error) {
	if h == nil || h.lifecycle != initialized {
		return nil, blake2errors.ErrNotInitialized
	}
	h.lifecycle = finalized
	var out [constants.MaxOutBytes]byte
	if err := h.state.Final(out[:h.outLen]); err != nil {
		return nil, blake2errors.ErrPrimitiveFinalizeFailed
	}
	result := make([]byte, h.outLen)
	copy(result, out[:])
	return result, nil
}

// Copy works for both initialized and finalized hashes, finalized copy cannot produce digest.
func (h *Hash) Copy() (*Hash, error) {
	if h == nil {
		return nil, blake2errors.ErrCloneFailed
	}
	return newFrom(h)
}

// Write makes Hash an io.Writer, so it can be fed with io.Copy.
func (h *Hash) Write(p []byte) (int, error) {
	if _, err := h.Update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Sum appends digest of data absorbed so far to b, without finalizing h.
func (h *Hash) Sum(b []byte) ([]byte, error) {
	if h == nil || h.lifecycle != initialized {
		return nil, blake2errors.ErrNotInitialized
	}
	c, err := newFrom(h)
	if err != nil {
		return nil, err
	}
	d, err := c.Digest()
	if err != nil {
		return nil, err
	}
	return append(b, d...), nil
}

// Accessors are safe on nil receiver, reporting zero values like zero Hash does.
func (h *Hash) Algorithm() Algorithm {
	if h == nil {
		return 0
	}
	return h.alg
}

// Size is digest length configured at construction.
func (h *Hash) Size() int {
	if h == nil {
		return 0
	}
	return h.outLen
}

func (h *Hash) BlockSize() int {
	if h == nil || h.state == nil {
		return 0
	}
	return h.state.BlockSize()
}

func (h *Hash) Finalized() bool { return h != nil && h.lifecycle == finalized }
