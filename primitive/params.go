// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package primitive

import (
	"encoding/binary"

	"github.com/hrissan/blake2/constants"
	"github.com/hrissan/blake2/safecast"
)

// [rfc7693:2.5] parameter block, extended with tree fields from BLAKE2 paper section 2.10.
// Salt and personalization are always zero here.

type ParamB struct {
	DigestLength int
	KeyLength    int
	Fanout       byte // 0 unlimited, 1 sequential
	Depth        byte // 255 unlimited, 1 sequential
	LeafLength   uint32
	NodeOffset   uint64
	NodeDepth    byte // 0 for leaves
	InnerLength  int  // 0 for sequential mode
	LastNode     bool // not part of parameter block, sets f1 in final compression
}

type ParamS struct {
	DigestLength int
	KeyLength    int
	Fanout       byte
	Depth        byte
	LeafLength   uint32
	NodeOffset   uint64 // only 48 bits are used
	NodeDepth    byte
	InnerLength  int
	LastNode     bool
}

const maxNodeOffsetS = 1<<48 - 1

func sequentialB(outLen int, keyLen int) ParamB {
	return ParamB{DigestLength: outLen, KeyLength: keyLen, Fanout: 1, Depth: 1}
}

func sequentialS(outLen int, keyLen int) ParamS {
	return ParamS{DigestLength: outLen, KeyLength: keyLen, Fanout: 1, Depth: 1}
}

func (p *ParamB) validate() error {
	if p.DigestLength < 1 || p.DigestLength > constants.MaxOutBytesB {
		return ErrOutputLength
	}
	if p.KeyLength < 0 || p.KeyLength > constants.MaxKeyBytesB {
		return ErrKeyLength
	}
	if p.InnerLength < 0 || p.InnerLength > constants.MaxOutBytesB {
		return ErrParam
	}
	return nil
}

func (p *ParamS) validate() error {
	if p.DigestLength < 1 || p.DigestLength > constants.MaxOutBytesS {
		return ErrOutputLength
	}
	if p.KeyLength < 0 || p.KeyLength > constants.MaxKeyBytesS {
		return ErrKeyLength
	}
	if p.InnerLength < 0 || p.InnerLength > constants.MaxOutBytesS {
		return ErrParam
	}
	if p.NodeOffset > maxNodeOffsetS {
		return ErrParam
	}
	return nil
}

// caller must validate
func (p *ParamB) appendBytes(w []byte) []byte {
	w = append(w, safecast.Cast[byte](p.DigestLength), safecast.Cast[byte](p.KeyLength), p.Fanout, p.Depth)
	w = binary.LittleEndian.AppendUint32(w, p.LeafLength)
	w = binary.LittleEndian.AppendUint64(w, p.NodeOffset)
	w = append(w, p.NodeDepth, safecast.Cast[byte](p.InnerLength))
	var reserved [14 + 16 + 16]byte // reserved, salt, personal
	return append(w, reserved[:]...)
}

func (p *ParamS) appendBytes(w []byte) []byte {
	w = append(w, safecast.Cast[byte](p.DigestLength), safecast.Cast[byte](p.KeyLength), p.Fanout, p.Depth)
	w = binary.LittleEndian.AppendUint32(w, p.LeafLength)
	w = binary.LittleEndian.AppendUint32(w, uint32(p.NodeOffset))      // truncation intended
	w = binary.LittleEndian.AppendUint16(w, uint16(p.NodeOffset>>32)) // truncation intended
	w = append(w, p.NodeDepth, safecast.Cast[byte](p.InnerLength))
	var reserved [8 + 8]byte // salt, personal
	return append(w, reserved[:]...)
}
