// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwt

import (
	"io"

	"github.com/dsnet/bwtmtf/suffix"
	"github.com/icza/bitio"
)

type WriterConfig struct {
	// Workers is the maximum number of goroutines used to sort rotations.
	// If Workers <= 0, then runtime.GOMAXPROCS(0) is used.
	Workers int

	_ struct{} // Blank field to prevent unkeyed struct literals
}

// A Writer is an io.WriteCloser that emits the BWT stream of everything
// written to it. Since the transform requires the whole message, nothing is
// written to the underlying io.Writer until Close is called.
type Writer struct {
	InputOffset  int64 // Total number of bytes issued to Write
	OutputOffset int64 // Total number of bytes written to underlying io.Writer
	Rank         int   // Rank of the message; valid after Close

	wr   io.Writer
	conf suffix.Config
	buf  []byte
	err  error
}

// NewWriter creates a new Writer writing to the given writer.
// A nil WriterConfig is equivalent to the zero value.
func NewWriter(w io.Writer, conf *WriterConfig) (*Writer, error) {
	zw := new(Writer)
	if conf != nil {
		zw.conf.Workers = conf.Workers
	}
	zw.Reset(w)
	return zw, nil
}

// Reset discards the Writer's state and makes it equivalent to the result
// of a call to NewWriter, but writing to w instead.
func (zw *Writer) Reset(w io.Writer) {
	*zw = Writer{
		wr:   w,
		conf: zw.conf,
		buf:  zw.buf[:0],
	}
}

func (zw *Writer) Write(buf []byte) (int, error) {
	if zw.err != nil {
		return 0, zw.err
	}
	zw.buf = append(zw.buf, buf...)
	zw.InputOffset += int64(len(buf))
	return len(buf), nil
}

// Close transforms the buffered message and writes the stream.
// It does not close the underlying io.Writer.
func (zw *Writer) Close() error {
	if zw.err == errClosed {
		return nil
	}
	if zw.err != nil {
		return zw.err
	}

	zw.err = zw.encode()
	if zw.err != nil {
		return zw.err
	}
	zw.err = errClosed
	zw.wr = nil  // Release reference to underlying Writer
	zw.buf = nil // Release the buffered message
	return nil
}

func (zw *Writer) encode() error {
	if len(zw.buf) == 0 {
		return nil
	}
	rank, last, err := TransformWithConfig(zw.buf, &zw.conf)
	if err != nil {
		return err
	}
	zw.Rank = rank

	cw := &countWriter{w: zw.wr}
	bw := bitio.NewWriter(cw)
	if err := bw.WriteBits(uint64(rank), rankBits); err != nil {
		return err
	}
	if _, err := bw.Write(last); err != nil {
		return err
	}
	err = bw.Close()
	zw.OutputOffset += cw.n
	return err
}

type countWriter struct {
	w io.Writer
	n int64
}

func (cw *countWriter) Write(buf []byte) (int, error) {
	n, err := cw.w.Write(buf)
	cw.n += int64(n)
	return n, err
}

// Encode reads the entire message from r and writes its BWT stream to w.
func Encode(w io.Writer, r io.Reader, conf *WriterConfig) (err error) {
	zw, err := NewWriter(w, conf)
	if err != nil {
		return err
	}
	if _, err := io.Copy(zw, r); err != nil {
		return err
	}
	return zw.Close()
}
