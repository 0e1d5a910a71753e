// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwt

import (
	"bytes"
	"testing"

	"github.com/dsnet/bwtmtf/internal/errors"
)

func FuzzTransform(f *testing.F) {
	for _, s := range []string{"x", "banana", "abab", "ABRACADABRA!", "\x00\x00\x00"} {
		f.Add([]byte(s))
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) == 0 {
			return
		}
		rank, last, err := Transform(data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := InverseTransform(rank, last)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Equal(got, data) {
			t.Fatalf("mismatching output:\ngot  %q\nwant %q", got, data)
		}
	})
}

// FuzzReader checks that arbitrary streams either decode into a message of
// the implied length or fail with one of the documented error kinds.
func FuzzReader(f *testing.F) {
	for _, s := range []string{"", "\x00", "\x00\x00\x00\x00", "\x00\x00\x00\x03nnbaaa", "\xff\xff\xff\xffab"} {
		f.Add([]byte(s))
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		var out bytes.Buffer
		err := Decode(&out, bytes.NewReader(data), nil)
		if err != nil {
			if !errors.IsCorrupted(err) && !errors.IsInvalid(err) {
				t.Fatalf("unexpected error kind: %v", err)
			}
			return
		}
		if len(data) > 0 && out.Len() != len(data)-headerSize {
			t.Fatalf("mismatching length: got %d, want %d", out.Len(), len(data)-headerSize)
		}
	})
}
