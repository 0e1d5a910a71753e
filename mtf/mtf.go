// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package mtf

import (
	"bytes"

	"github.com/dsnet/bwtmtf/internal"
	"github.com/dsnet/bwtmtf/internal/errors"
)

// MoveToFront is a Move-To-Front codec over a closed alphabet.
// The zero value is not valid; use New or NewWithDict.
//
// For example, over the alphabet {A, B, C, D}, encoding "ABCA" yields the
// indexes [0, 1, 2, 2] and leaves the recency list as A, C, B, D.
type MoveToFront struct {
	dictBuf [internal.AlphabetSize]uint8 // Current recency list
	initBuf [internal.AlphabetSize]uint8 // Recency list at the start of a stream
	dictLen int
}

// New returns a codec over all 256 byte values, initialized to ascending
// order.
func New() *MoveToFront {
	m := new(MoveToFront)
	m.init(internal.IdentityLUT[:])
	return m
}

// NewWithDict returns a codec over the given alphabet. The initial recency
// list is dict in the order given. A copy of dict is made so that it is not
// mutated. The dict must be non-empty and contain no duplicates.
func NewWithDict(dict []byte) (*MoveToFront, error) {
	if len(dict) == 0 {
		return nil, errorf(errors.Invalid, "empty alphabet")
	}
	if len(dict) > internal.AlphabetSize {
		return nil, errorf(errors.Invalid, "alphabet too large: %d symbols", len(dict))
	}
	var seen [internal.AlphabetSize]bool
	for _, b := range dict {
		if seen[b] {
			return nil, errorf(errors.Invalid, "duplicate symbol %#02x in alphabet", b)
		}
		seen[b] = true
	}

	m := new(MoveToFront)
	m.init(dict)
	return m, nil
}

func (m *MoveToFront) init(dict []byte) {
	m.dictLen = copy(m.initBuf[:], dict)
	m.Reset()
}

// Reset restores the recency list to its initial order.
func (m *MoveToFront) Reset() {
	copy(m.dictBuf[:], m.initBuf[:m.dictLen])
}

// Len reports the alphabet size.
func (m *MoveToFront) Len() int { return m.dictLen }

// Dict returns a copy of the current recency list.
func (m *MoveToFront) Dict() []byte {
	return append([]byte(nil), m.dictBuf[:m.dictLen]...)
}

// EncodeSymbol returns the current position of sym in the recency list and
// then moves sym to the front.
//
// It panics if sym is not in the alphabet.
func (m *MoveToFront) EncodeSymbol(sym byte) int {
	dict := m.dictBuf[:m.dictLen]
	idx := bytes.IndexByte(dict, sym) // Reverse lookup idx in dict
	if idx < 0 {
		panicf(errors.Internal, "symbol %#02x not in alphabet", sym)
	}
	copy(dict[1:], dict[:idx])
	dict[0] = sym
	return idx
}

// DecodeSymbol returns the symbol at position idx in the recency list and
// then moves that symbol to the front.
func (m *MoveToFront) DecodeSymbol(idx int) (byte, error) {
	if idx < 0 || idx >= m.dictLen {
		return 0, errorf(errors.Overflow, "index %d out of range [0, %d)", idx, m.dictLen)
	}
	dict := m.dictBuf[:m.dictLen]
	sym := dict[idx] // Forward lookup sym in dict
	copy(dict[1:], dict[:idx])
	dict[0] = sym
	return sym, nil
}

// Encode encodes every symbol in vals, continuing from the current recency
// list. A symbol outside the alphabet is reported as an internal error,
// along with the indexes of the symbols preceding it.
func (m *MoveToFront) Encode(vals []byte) (idxs []byte, err error) {
	defer errors.Recover(&err)

	idxs = make([]byte, 0, len(vals))
	for _, v := range vals {
		idxs = append(idxs, uint8(m.EncodeSymbol(v)))
	}
	return idxs, nil
}

// Decode decodes every index in idxs, continuing from the current recency
// list.
func (m *MoveToFront) Decode(idxs []byte) (vals []byte, err error) {
	out := make([]byte, len(idxs))
	for i, idx := range idxs {
		if out[i], err = m.DecodeSymbol(int(idx)); err != nil {
			return nil, err
		}
	}
	return out, nil
}
