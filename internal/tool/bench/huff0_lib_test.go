// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/dsnet/bwtmtf/internal/testutil"
)

func TestHuff0Blocks(t *testing.T) {
	r := testutil.NewRand(2)
	var vectors = []struct {
		name  string
		input []byte
		kinds []byte // Kind of every block, in order
	}{
		{name: "empty", input: nil, kinds: nil},
		{name: "rle", input: make([]byte, 100), kinds: []byte{rleBlock}},
		{name: "raw", input: permutation(), kinds: []byte{rawBlock}},
		{name: "huff", input: r.Symbols(1000, []byte("ab")), kinds: []byte{huffBlock}},
		{name: "multi", input: append(make([]byte, huff0BlockSize), 'x', 'x'), kinds: []byte{rleBlock, rleBlock}},
	}

	for i, v := range vectors {
		var buf bytes.Buffer
		zw := Encoders[StageRaw]["huff0"](&buf, 0)
		if _, err := zw.Write(v.input); err != nil {
			t.Fatalf("test %d, %s: unexpected Write error: %v", i, v.name, err)
		}
		if err := zw.Close(); err != nil {
			t.Fatalf("test %d, %s: unexpected Close error: %v", i, v.name, err)
		}

		var kinds []byte
		for b := buf.Bytes(); len(b) > 0; {
			kinds = append(kinds, b[0])
			dataLen := int(b[5])<<24 | int(b[6])<<16 | int(b[7])<<8 | int(b[8])
			b = b[9+dataLen:]
		}
		if !bytes.Equal(kinds, v.kinds) {
			t.Errorf("test %d, %s: block kinds mismatch: got %v, want %v", i, v.name, kinds, v.kinds)
		}

		zr := Decoders[StageRaw]["huff0"](&buf)
		got, err := io.ReadAll(zr)
		if err != nil {
			t.Fatalf("test %d, %s: unexpected Read error: %v", i, v.name, err)
		}
		if !bytes.Equal(got, v.input) {
			t.Errorf("test %d, %s: output mismatch", i, v.name)
		}
	}
}

// permutation returns every byte value exactly once, which huff0 refuses to
// compress.
func permutation() []byte {
	b := make([]byte, 256)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestHuff0Corrupt(t *testing.T) {
	var vectors = []string{
		"\x00",                                   // Truncated lengths
		"\x01\x00\x00\x00\x04\x00\x00\x00\x04ab", // Truncated data
		"\x03\x00\x00\x00\x01\x00\x00\x00\x01a",  // Unknown kind
		"\x02\x00\x00\x00\x04\x00\x00\x00\x02aa", // RLE with long data
		"\x01\x00\x00\x00\x00\x00\x00\x00\x00",   // Empty block
	}
	for i, v := range vectors {
		zr := Decoders[StageRaw]["huff0"](strings.NewReader(v))
		if _, err := io.ReadAll(zr); err == nil {
			t.Errorf("test %d, unexpected success", i)
		}
		if err := zr.Close(); err == nil {
			t.Errorf("test %d, unexpected Close success", i)
		}
	}
}
