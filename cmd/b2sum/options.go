// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/hrissan/blake2"
)

type options struct {
	algorithm blake2.Algorithm
	key       []byte
	length    int // 0 means maximum for algorithm
}

func (c *cli) options() (options, error) {
	var opts options
	var err error
	if opts.algorithm, err = blake2.ParseAlgorithm(c.Algorithm); err != nil {
		return options{}, fmt.Errorf("unknown algorithm %q: %w", c.Algorithm, err)
	}
	if opts.key, err = hex.DecodeString(c.Key); err != nil {
		return options{}, fmt.Errorf("key must be hex-encoded: %w", err)
	}
	opts.length = c.Length
	if err := checkFiles(c.Files); err != nil {
		return options{}, err
	}
	if err := opts.Validate(); err != nil {
		return options{}, err
	}
	return opts, nil
}

func (opts *options) Validate() error {
	if opts.length < 0 || opts.length > opts.algorithm.MaxDigestLength() {
		return fmt.Errorf("length (%d) should be in range 1..%d for %s, or 0 for maximum", opts.length, opts.algorithm.MaxDigestLength(), opts.algorithm)
	}
	if len(opts.key) > opts.algorithm.MaxKeyLength() {
		return fmt.Errorf("key (%d bytes) should be at most %d bytes for %s", len(opts.key), opts.algorithm.MaxKeyLength(), opts.algorithm)
	}
	return nil
}

// Standard input can be read only once, so "-" may appear at most once.
func checkFiles(files []string) error {
	stdin := 0
	for _, name := range files {
		if name == "-" {
			stdin++
		}
	}
	if stdin > 1 {
		return fmt.Errorf("standard input (-) listed %d times, can be hashed only once", stdin)
	}
	return nil
}

func (opts *options) newHash() (*blake2.Hash, error) {
	if opts.length == 0 {
		return blake2.New(opts.algorithm.String(), opts.key)
	}
	return blake2.NewSized(opts.algorithm.String(), opts.key, opts.length)
}
