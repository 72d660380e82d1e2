// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package blake2errors

import (
	"fmt"
)

// we do not allocate on error returning path,
// so all errors are completely static, compare with errors.Is

type Error struct {
	code int
	text string
}

func (e *Error) Error() string {
	return fmt.Sprintf("blake2: %d %s", e.code, e.text)
}

func (e *Error) Code() int { return e.code }

func New(code int, text string) error {
	return &Error{
		code: code,
		text: text,
	}
}

var ErrUnsupportedAlgorithm = New(-100, "algorithm must be blake2b, blake2bp, blake2s or blake2sp")
var ErrInvalidDigestLength = New(-101, "digest length out of range for algorithm")
var ErrKeyTooLarge = New(-102, "key is larger than maximum key size of algorithm")
var ErrNotInitialized = New(-103, "not initialized")
var ErrPrimitiveInitFailed = New(-104, "primitive init failure")
var ErrPrimitiveFinalizeFailed = New(-105, "primitive final failure")
var ErrCloneFailed = New(-106, "failed to construct copy")
