// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package primitive_test

import (
	"bytes"
	"testing"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"

	"github.com/hrissan/blake2/b2rand"
)

// x/crypto cannot do tree modes, arbitrary BLAKE2s lengths or copy keyed states,
// but it is an independent implementation of everything else.

func TestBlake2bMatchesXCrypto(t *testing.T) {
	rnd := b2rand.FixedRand()
	data := make([]byte, 1025)
	rnd.ReadMust(data)
	key := make([]byte, 64)
	rnd.ReadMust(key)
	for _, n := range []int{0, 1, 127, 128, 129, 256, 1025} {
		for _, keyLen := range []int{0, 1, 32, 64} {
			for outLen := 1; outLen <= 64; outLen++ {
				mirror, err := blake2b.New(outLen, key[:keyLen])
				if err != nil {
					t.Fatal(err)
				}
				_, _ = mirror.Write(data[:n])
				got := sum(t, variants[0], outLen, key[:keyLen], data[:n])
				if !bytes.Equal(got, mirror.Sum(nil)) {
					t.Fatalf("mismatch for n=%d keyLen=%d outLen=%d", n, keyLen, outLen)
				}
			}
		}
	}
}

func TestBlake2sMatchesXCrypto(t *testing.T) {
	rnd := b2rand.FixedRand()
	data := make([]byte, 1025)
	rnd.ReadMust(data)
	key := make([]byte, 32)
	rnd.ReadMust(key)
	for _, n := range []int{0, 1, 63, 64, 65, 128, 1025} {
		for _, keyLen := range []int{0, 1, 16, 32} {
			mirror, err := blake2s.New256(key[:keyLen])
			if err != nil {
				t.Fatal(err)
			}
			_, _ = mirror.Write(data[:n])
			got := sum(t, variants[2], 32, key[:keyLen], data[:n])
			if !bytes.Equal(got, mirror.Sum(nil)) {
				t.Fatalf("mismatch for n=%d keyLen=%d", n, keyLen)
			}
		}
	}
}

func FuzzBlake2bXCrypto(f *testing.F) {
	f.Add([]byte("abc"), []byte{}, byte(64), uint16(1))
	f.Fuzz(func(t *testing.T, data []byte, key []byte, outLen byte, cut uint16) {
		if len(key) > 64 {
			key = key[:64]
		}
		n := 1 + int(outLen)%64
		split := int(cut) % (len(data) + 1)
		mirror, err := blake2b.New(n, key)
		if err != nil {
			t.Fatal(err)
		}
		_, _ = mirror.Write(data)
		if got := sum(t, variants[0], n, key, data[:split], data[split:]); !bytes.Equal(got, mirror.Sum(nil)) {
			t.FailNow()
		}
	})
}

func FuzzBlake2sXCrypto(f *testing.F) {
	f.Add([]byte("abc"), []byte{}, uint16(1))
	f.Fuzz(func(t *testing.T, data []byte, key []byte, cut uint16) {
		if len(key) > 32 {
			key = key[:32]
		}
		split := int(cut) % (len(data) + 1)
		mirror, err := blake2s.New256(key)
		if err != nil {
			t.Fatal(err)
		}
		_, _ = mirror.Write(data)
		if got := sum(t, variants[2], 32, key, data[:split], data[split:]); !bytes.Equal(got, mirror.Sum(nil)) {
			t.FailNow()
		}
	})
}
