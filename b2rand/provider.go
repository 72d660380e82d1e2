// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package b2rand

import "crypto/rand"

// We need reproducible keys and inputs for tests, hence abstraction

type Rand interface {
	ReadMust(data []byte)
}

type cryptoRand struct {
}

func (c *cryptoRand) ReadMust(data []byte) {
	if _, err := rand.Read(data); err != nil {
		panic("failed to read crypto rand: " + err.Error())
	}
}

// fixedRand is a counter, so different calls return different bytes,
// but every run of the program sees the same sequence.
type fixedRand struct {
	counter byte
}

func (c *fixedRand) ReadMust(data []byte) {
	for i := range data {
		data[i] = c.counter
		c.counter = c.counter*5 + 1 // full period mod 256
	}
}

func CryptoRand() Rand {
	return &cryptoRand{}
}

func FixedRand() Rand {
	return &fixedRand{}
}
