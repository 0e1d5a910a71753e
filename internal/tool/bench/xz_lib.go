// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_xz_lib
// +build !no_xz_lib

package bench

import (
	"io"

	"github.com/ulikunitz/xz"
)

// The xz encoder has no notion of levels, so the level is ignored.
func init() {
	RegisterCodec("xz",
		func(w io.Writer, _ int) io.WriteCloser {
			zw, err := xz.NewWriter(w)
			if err != nil {
				panic(err)
			}
			return zw
		},
		func(r io.Reader) io.ReadCloser {
			zr, err := xz.NewReader(r)
			if err != nil {
				return &errReader{err}
			}
			return io.NopCloser(zr)
		})
}

type errReader struct{ err error }

func (er *errReader) Read([]byte) (int, error) { return 0, er.err }
func (er *errReader) Close() error             { return er.err }
