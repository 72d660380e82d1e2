// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package blake2

// Sum is a convenience wrapper for data already in memory.
func Sum(algorithm string, data []byte) ([]byte, error) {
	h, err := New(algorithm, nil)
	if err != nil {
		return nil, err
	}
	return sumData(h, data)
}

// SumKeyed validates key and digestLength exactly as NewSized.
func SumKeyed(algorithm string, key []byte, digestLength int, data []byte) ([]byte, error) {
	h, err := NewSized(algorithm, key, digestLength)
	if err != nil {
		return nil, err
	}
	return sumData(h, data)
}

func sumData(h *Hash, data []byte) ([]byte, error) {
	if _, err := h.Update(data); err != nil {
		return nil, err
	}
	return h.Digest()
}
