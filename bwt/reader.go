// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwt

import (
	"bytes"
	"io"

	"github.com/dsnet/bwtmtf/internal/errors"
	"github.com/icza/bitio"
)

type ReaderConfig struct {
	_ struct{} // Blank field to prevent unkeyed struct literals
}

// A Reader is an io.ReadCloser that decodes a BWT stream.
// The whole stream is consumed from the underlying io.Reader on the first
// call to Read, since the rank is only meaningful once n is known.
type Reader struct {
	InputOffset  int64 // Total number of bytes read from underlying io.Reader
	OutputOffset int64 // Total number of bytes emitted from Read

	rd      io.Reader
	buf     []byte
	decoded bool
	err     error
}

// NewReader creates a new Reader reading the given reader.
// A nil ReaderConfig is equivalent to the zero value.
func NewReader(r io.Reader, conf *ReaderConfig) (*Reader, error) {
	zr := new(Reader)
	zr.Reset(r)
	return zr, nil
}

// Reset discards the Reader's state and makes it equivalent to the result
// of a call to NewReader, but reading from r instead.
func (zr *Reader) Reset(r io.Reader) {
	*zr = Reader{rd: r}
}

func (zr *Reader) Read(buf []byte) (int, error) {
	if zr.err != nil {
		return 0, zr.err
	}
	if !zr.decoded {
		zr.decoded = true
		if zr.err = zr.decode(); zr.err != nil {
			return 0, zr.err
		}
	}
	if len(zr.buf) == 0 {
		zr.err = io.EOF
		return 0, zr.err
	}

	cnt := copy(buf, zr.buf)
	zr.buf = zr.buf[cnt:]
	zr.OutputOffset += int64(cnt)
	return cnt, nil
}

// Close ends the stream. Unread decoded data is discarded.
func (zr *Reader) Close() error {
	if zr.err == errClosed {
		return nil
	}
	if zr.err != nil && zr.err != io.EOF {
		return zr.err
	}
	zr.err = errClosed
	zr.rd = nil // Release reference to underlying Reader
	zr.buf = nil
	return nil
}

func (zr *Reader) decode() error {
	data, err := io.ReadAll(zr.rd)
	zr.InputOffset += int64(len(data))
	if err != nil {
		return err
	}
	switch {
	case len(data) == 0:
		return nil // Empty message
	case len(data) < headerSize:
		return errorf(errors.Corrupted, "truncated header: %d bytes", len(data))
	case len(data) == headerSize:
		return errorf(errors.Invalid, "header without last column")
	}

	br := bitio.NewReader(bytes.NewReader(data))
	rank, err := br.ReadBits(rankBits)
	if err != nil {
		return err
	}
	last := data[headerSize:]
	zr.buf, err = InverseTransform(int(rank), last)
	return err
}

// Decode reads an entire BWT stream from r and writes the message to w.
func Decode(w io.Writer, r io.Reader, conf *ReaderConfig) error {
	zr, err := NewReader(r, conf)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, zr); err != nil {
		return err
	}
	return zr.Close()
}
