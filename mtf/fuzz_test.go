// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package mtf

import (
	"bytes"
	"testing"
)

func FuzzMoveToFront(f *testing.F) {
	for _, s := range []string{"", "banana", "ABCA", "\xff\x00\xff\x00"} {
		f.Add([]byte(s))
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		idxs, err := New().Encode(data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := New().Decode(idxs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Equal(got, data) {
			t.Fatalf("mismatching output:\ngot  %x\nwant %x", got, data)
		}
	})
}
