// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package mtf

import "io"

type WriterConfig struct {
	// Dict is the alphabet in its initial recency order.
	// If nil, all 256 byte values in ascending order are used.
	Dict []byte

	_ struct{} // Blank field to prevent unkeyed struct literals
}

// A Writer is an io.WriteCloser that writes the MTF indexes of every byte
// written to it. Indexes are written to the underlying io.Writer as soon as
// they are computed.
type Writer struct {
	InputOffset  int64 // Total number of bytes issued to Write
	OutputOffset int64 // Total number of bytes written to underlying io.Writer

	wr  io.Writer
	mtf *MoveToFront
	err error
}

// NewWriter creates a new Writer writing to the given writer.
// A nil WriterConfig is equivalent to the zero value.
func NewWriter(w io.Writer, conf *WriterConfig) (*Writer, error) {
	var mtf *MoveToFront
	if conf == nil || conf.Dict == nil {
		mtf = New()
	} else {
		var err error
		if mtf, err = NewWithDict(conf.Dict); err != nil {
			return nil, err
		}
	}

	zw := &Writer{mtf: mtf}
	zw.Reset(w)
	return zw, nil
}

// Reset discards the Writer's state and makes it equivalent to the result
// of a call to NewWriter, but writing to w instead.
func (zw *Writer) Reset(w io.Writer) {
	*zw = Writer{wr: w, mtf: zw.mtf}
	zw.mtf.Reset()
}

// Write encodes buf and writes the indexes to the underlying io.Writer.
// If a symbol is outside of the alphabet, the indexes of the preceding
// symbols are still written.
func (zw *Writer) Write(buf []byte) (int, error) {
	if zw.err != nil {
		return 0, zw.err
	}

	var cnt int
	for len(buf) > 0 {
		chunk := buf[:min(len(buf), chunkSize)]
		idxs, encErr := zw.mtf.Encode(chunk)
		n, err := zw.wr.Write(idxs)
		zw.OutputOffset += int64(n)
		zw.InputOffset += int64(n)
		cnt += n
		if err == nil {
			err = encErr
		}
		if err != nil {
			zw.err = err
			return cnt, err
		}
		buf = buf[len(chunk):]
	}
	return cnt, nil
}

// Close ends the stream. It does not close the underlying io.Writer.
func (zw *Writer) Close() error {
	if zw.err == errClosed {
		return nil
	}
	if zw.err != nil {
		return zw.err
	}
	zw.err = errClosed
	zw.wr = nil // Release reference to underlying Writer
	return nil
}

// Encode reads symbols from r until io.EOF and writes their MTF indexes to w.
func Encode(w io.Writer, r io.Reader, conf *WriterConfig) error {
	zw, err := NewWriter(w, conf)
	if err != nil {
		return err
	}
	if _, err := io.Copy(zw, r); err != nil {
		return err
	}
	return zw.Close()
}

const chunkSize = 1 << 14
