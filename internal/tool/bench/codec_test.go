// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/dsnet/bwtmtf/internal/testutil"
)

func getStageName(s Stage) string {
	switch s {
	case StageRaw:
		return "raw"
	case StageBWTMTF:
		return "bwtmtf"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// TestCodecs tests that the output of each registered encoder is a valid input
// for each registered decoder of the same stage. This test runs in O(n^2)
// where n is the number of registered codecs.
func TestCodecs(t *testing.T) {
	for name, dd := range testutil.Corpus(1 << 13) {
		dd := dd
		t.Run(fmt.Sprintf("File:%v", name), func(t *testing.T) { testStages(t, dd) })
	}
}

func testStages(t *testing.T, dd []byte) {
	t.Parallel()
	for _, st := range []Stage{StageRaw, StageBWTMTF} {
		if len(Encoders[st]) == 0 || len(Decoders[st]) == 0 {
			t.Skip("no codecs available")
		}
		st := st
		t.Run(fmt.Sprintf("Stage:%v", getStageName(st)), func(t *testing.T) { testEncoders(t, st, dd) })
	}
}

func testEncoders(t *testing.T, st Stage, dd []byte) {
	t.Parallel()
	const level = 6 // Default compression on all encoders
	for encName := range Encoders[st] {
		encName := encName
		t.Run(fmt.Sprintf("Encoder:%v", encName), func(t *testing.T) {
			be := new(bytes.Buffer)
			zw := Encoders[st][encName](be, level)
			if _, err := io.Copy(zw, bytes.NewReader(dd)); err != nil {
				t.Fatalf("unexpected Write error: %v", err)
			}
			if err := zw.Close(); err != nil {
				t.Fatalf("unexpected Close error: %v", err)
			}
			de := be.Bytes()
			testDecoders(t, st, encName, dd, de)
		})
	}
}

// Decoders of the same stage can only read each other's output when they
// share a wire format, which is the case for the two flate implementations.
func testDecoders(t *testing.T, st Stage, encName string, dd, de []byte) {
	t.Parallel()
	for decName := range Decoders[st] {
		if !compatible(encName, decName) {
			continue
		}
		decName := decName
		t.Run(fmt.Sprintf("Decoder:%v", decName), func(t *testing.T) {
			bd := new(bytes.Buffer)
			zr := Decoders[st][decName](bytes.NewReader(de))
			if _, err := io.Copy(bd, zr); err != nil {
				t.Fatalf("unexpected Read error: %v", err)
			}
			if err := zr.Close(); err != nil {
				t.Fatalf("unexpected Close error: %v", err)
			}
			if !bytes.Equal(bd.Bytes(), dd) {
				t.Error("data mismatch")
			}
		})
	}
}

func compatible(enc, dec string) bool {
	family := map[string]string{"std": "flate", "kp": "flate", "xz": "xz", "huff0": "huff0"}
	return family[enc] == family[dec]
}
