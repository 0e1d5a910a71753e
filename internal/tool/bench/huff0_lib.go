// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_huff0_lib
// +build !no_huff0_lib

package bench

import (
	"bytes"
	"fmt"
	"io"

	"github.com/icza/bitio"
	"github.com/klauspost/compress/huff0"
)

// The huff0 codec is an order-0 Huffman coder without any framing of its own.
// Each block is written as:
//
//	kind:    8 bits (huffBlock, rawBlock, or rleBlock)
//	rawLen:  32 bits
//	dataLen: 32 bits
//	data:    dataLen bytes
//
// The level is ignored.
func init() {
	RegisterCodec("huff0",
		func(w io.Writer, _ int) io.WriteCloser {
			return &huff0Writer{bw: bitio.NewWriter(w)}
		},
		func(r io.Reader) io.ReadCloser {
			return &huff0Reader{br: bitio.NewReader(r)}
		})
}

const (
	huffBlock = iota
	rawBlock
	rleBlock
)

const huff0BlockSize = 1 << 16

type huff0Writer struct {
	bw  *bitio.Writer
	buf []byte
	err error
}

func (zw *huff0Writer) Write(buf []byte) (int, error) {
	if zw.err != nil {
		return 0, zw.err
	}
	zw.buf = append(zw.buf, buf...)
	for len(zw.buf) >= huff0BlockSize && zw.err == nil {
		zw.err = zw.writeBlock(zw.buf[:huff0BlockSize])
		zw.buf = zw.buf[:copy(zw.buf, zw.buf[huff0BlockSize:])]
	}
	if zw.err != nil {
		return 0, zw.err
	}
	return len(buf), nil
}

func (zw *huff0Writer) Close() error {
	if zw.err != nil {
		return zw.err
	}
	if len(zw.buf) > 0 {
		if zw.err = zw.writeBlock(zw.buf); zw.err != nil {
			return zw.err
		}
	}
	zw.buf = nil
	zw.err = zw.bw.Close()
	if zw.err != nil {
		return zw.err
	}
	zw.err = io.ErrClosedPipe
	return nil
}

func (zw *huff0Writer) writeBlock(b []byte) error {
	kind, data := huffBlock, b
	out, _, err := huff0.Compress1X(b, nil)
	switch err {
	case nil:
		data = out
	case huff0.ErrIncompressible:
		kind = rawBlock
	case huff0.ErrUseRLE:
		kind, data = rleBlock, b[:1]
	default:
		return err
	}
	zw.bw.TryWriteBits(uint64(kind), 8)
	zw.bw.TryWriteBits(uint64(len(b)), 32)
	zw.bw.TryWriteBits(uint64(len(data)), 32)
	zw.bw.TryWrite(data)
	return zw.bw.TryError
}

type huff0Reader struct {
	br  *bitio.Reader
	buf []byte
	err error
}

func (zr *huff0Reader) Read(buf []byte) (int, error) {
	for len(zr.buf) == 0 {
		if zr.err != nil {
			return 0, zr.err
		}
		zr.buf, zr.err = zr.readBlock()
	}
	n := copy(buf, zr.buf)
	zr.buf = zr.buf[n:]
	return n, nil
}

func (zr *huff0Reader) Close() error {
	if zr.err != nil && zr.err != io.EOF {
		return zr.err
	}
	zr.buf = nil
	return nil
}

func (zr *huff0Reader) readBlock() ([]byte, error) {
	kind, err := zr.br.ReadBits(8)
	if err != nil {
		return nil, err // io.EOF only on a block boundary
	}
	rawLen := int(zr.br.TryReadBits(32))
	dataLen := int(zr.br.TryReadBits(32))
	if err := zr.br.TryError; err != nil {
		return nil, io.ErrUnexpectedEOF
	}
	if rawLen == 0 || rawLen > huff0BlockSize || dataLen > rawLen {
		return nil, fmt.Errorf("huff0: invalid block lengths: raw %d, data %d", rawLen, dataLen)
	}
	data := make([]byte, dataLen)
	if _, err := io.ReadFull(zr.br, data); err != nil {
		return nil, io.ErrUnexpectedEOF
	}

	var out []byte
	switch kind {
	case huffBlock:
		s, rem, err := huff0.ReadTable(data, nil)
		if err != nil {
			return nil, err
		}
		if out, err = s.Decompress1X(rem); err != nil {
			return nil, err
		}
	case rawBlock:
		out = data
	case rleBlock:
		if dataLen != 1 {
			return nil, fmt.Errorf("huff0: invalid RLE block length: %d", dataLen)
		}
		out = bytes.Repeat(data, rawLen)
	default:
		return nil, fmt.Errorf("huff0: invalid block kind: %d", kind)
	}
	if len(out) != rawLen {
		return nil, fmt.Errorf("huff0: block length mismatch: got %d, want %d", len(out), rawLen)
	}
	return out, nil
}
