// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package mtf

import "io"

type ReaderConfig struct {
	// Dict is the alphabet in its initial recency order.
	// If nil, all 256 byte values in ascending order are used.
	Dict []byte

	_ struct{} // Blank field to prevent unkeyed struct literals
}

// A Reader is an io.ReadCloser that decodes MTF indexes read from the
// underlying io.Reader back into symbols.
type Reader struct {
	InputOffset  int64 // Total number of bytes read from underlying io.Reader
	OutputOffset int64 // Total number of bytes emitted from Read

	rd  io.Reader
	mtf *MoveToFront
	err error
}

// NewReader creates a new Reader reading the given reader.
// A nil ReaderConfig is equivalent to the zero value.
func NewReader(r io.Reader, conf *ReaderConfig) (*Reader, error) {
	var mtf *MoveToFront
	if conf == nil || conf.Dict == nil {
		mtf = New()
	} else {
		var err error
		if mtf, err = NewWithDict(conf.Dict); err != nil {
			return nil, err
		}
	}

	zr := &Reader{mtf: mtf}
	zr.Reset(r)
	return zr, nil
}

// Reset discards the Reader's state and makes it equivalent to the result
// of a call to NewReader, but reading from r instead.
func (zr *Reader) Reset(r io.Reader) {
	*zr = Reader{rd: r, mtf: zr.mtf}
	zr.mtf.Reset()
}

// Read reads indexes from the underlying io.Reader and decodes them in place.
// If an index is outside of the alphabet, the symbols decoded before it are
// still returned along with the error.
func (zr *Reader) Read(buf []byte) (int, error) {
	if zr.err != nil {
		return 0, zr.err
	}

	n, err := zr.rd.Read(buf)
	zr.InputOffset += int64(n)
	for i, idx := range buf[:n] {
		sym, derr := zr.mtf.DecodeSymbol(int(idx))
		if derr != nil {
			zr.OutputOffset += int64(i)
			zr.err = derr
			return i, derr
		}
		buf[i] = sym
	}
	zr.OutputOffset += int64(n)
	if err != nil {
		zr.err = err
	}
	return n, err
}

// Close ends the stream.
func (zr *Reader) Close() error {
	if zr.err == errClosed {
		return nil
	}
	if zr.err != nil && zr.err != io.EOF {
		return zr.err
	}
	zr.err = errClosed
	zr.rd = nil // Release reference to underlying Reader
	return nil
}

// Decode reads MTF indexes from r until io.EOF and writes the symbols to w.
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
