// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"io"

	"github.com/dsnet/bwtmtf/bwt"
	"github.com/dsnet/bwtmtf/mtf"
)

// Pipeline wraps enc such that all data is first transformed by the BWT and
// then by the MTF before reaching the entropy coder.
func Pipeline(enc Encoder) Encoder {
	return func(w io.Writer, lvl int) io.WriteCloser {
		ew := enc(w, lvl)
		mw, err := mtf.NewWriter(ew, nil)
		if err != nil {
			panic(err)
		}
		bw, err := bwt.NewWriter(mw, nil)
		if err != nil {
			panic(err)
		}
		return &pipeWriter{bw: bw, mw: mw, ew: ew}
	}
}

// PipelineDecoder wraps dec such that its output is run through the inverse
// MTF and then the inverse BWT.
func PipelineDecoder(dec Decoder) Decoder {
	return func(r io.Reader) io.ReadCloser {
		dr := dec(r)
		mr, err := mtf.NewReader(dr, nil)
		if err != nil {
			panic(err)
		}
		br, err := bwt.NewReader(mr, nil)
		if err != nil {
			panic(err)
		}
		return &pipeReader{br: br, mr: mr, dr: dr}
	}
}

type pipeWriter struct {
	bw *bwt.Writer
	mw *mtf.Writer
	ew io.WriteCloser
}

func (pw *pipeWriter) Write(buf []byte) (int, error) { return pw.bw.Write(buf) }

func (pw *pipeWriter) Close() error {
	if err := pw.bw.Close(); err != nil {
		return err
	}
	if err := pw.mw.Close(); err != nil {
		return err
	}
	return pw.ew.Close()
}

type pipeReader struct {
	br *bwt.Reader
	mr *mtf.Reader
	dr io.ReadCloser
}

func (pr *pipeReader) Read(buf []byte) (int, error) { return pr.br.Read(buf) }

func (pr *pipeReader) Close() error {
	if err := pr.br.Close(); err != nil {
		return err
	}
	if err := pr.mr.Close(); err != nil {
		return err
	}
	return pr.dr.Close()
}
