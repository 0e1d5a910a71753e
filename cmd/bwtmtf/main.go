// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command bwtmtf applies the Burrows-Wheeler and move-to-front transforms,
// or their inverses, to standard input and writes the result to standard
// output.
//
// Usage:
//
//	bwtmtf --mode=transform < msg > msg.bwt
//	bwtmtf --mode=inverse-transform < msg.bwt > msg
//	bwtmtf --mode=encode < msg > msg.mtf
//	bwtmtf --mode=decode < msg.mtf > msg
//	bwtmtf --mode=compress < msg > msg.bwtmtf
//	bwtmtf --mode=decompress < msg.bwtmtf > msg
//
// A single "-" argument selects the forward direction and "+" the inverse,
// applied to the stages named by --stage (bwt, mtf, or both):
//
//	bwtmtf --stage=bwt - < msg > msg.bwt
//	bwtmtf --stage=mtf + < msg.mtf > msg
//
// The exit status is 0 on success, 1 if the input could not be processed,
// and 2 if the arguments are invalid.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dsnet/bwtmtf/bwt"
	"github.com/dsnet/bwtmtf/internal/errors"
	"github.com/dsnet/bwtmtf/mtf"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

const (
	modeTransform        = "transform"
	modeInverseTransform = "inverse-transform"
	modeEncode           = "encode"
	modeDecode           = "decode"
	modeCompress         = "compress"
	modeDecompress       = "decompress"
)

var modes = []string{
	modeTransform, modeInverseTransform,
	modeEncode, modeDecode,
	modeCompress, modeDecompress,
}

// directions maps a stage and a "-" (forward) or "+" (inverse) argument to
// the equivalent mode.
var directions = map[string]map[string]string{
	"bwt":  {"-": modeTransform, "+": modeInverseTransform},
	"mtf":  {"-": modeEncode, "+": modeDecode},
	"both": {"-": modeCompress, "+": modeDecompress},
}

type options struct {
	mode    string
	stage   string
	workers int
	verbose bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	fs := pflag.NewFlagSet("bwtmtf", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&opts.mode, "mode", "m", "", "One of: "+strings.Join(modes, ", "))
	fs.StringVar(&opts.stage, "stage", "both", "Stages selected by a - or + argument: bwt, mtf, or both")
	fs.IntVar(&opts.workers, "workers", 0, "Number of goroutines used to sort rotations (0 means GOMAXPROCS)")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return exitOK
		}
		return exitUsage
	}

	log := newLogger(stderr, opts.verbose)
	defer log.Sync()

	if fs.NArg() == 1 && opts.mode == "" {
		dir, ok := directions[opts.stage]
		if !ok {
			log.Errorw("invalid stage", "stage", opts.stage)
			return exitUsage
		}
		if opts.mode, ok = dir[fs.Arg(0)]; !ok {
			log.Errorw("invalid direction, want - or +", "arg", fs.Arg(0))
			return exitUsage
		}
	} else if fs.NArg() > 0 {
		log.Errorw("unexpected positional arguments", "args", fs.Args())
		return exitUsage
	}
	fn, ok := modeFuncs[opts.mode]
	if !ok {
		log.Errorw("invalid mode", "mode", opts.mode, "want", modes)
		return exitUsage
	}

	bw := bufio.NewWriter(stdout)
	cr := &countReader{r: stdin}
	log.Debugw("starting", "mode", opts.mode, "workers", opts.workers)
	if err := fn(bw, cr, opts); err != nil {
		log.Errorw("failed to process input", "mode", opts.mode, "kind", errorKind(err), "error", err)
		return exitFailure
	}
	if err := bw.Flush(); err != nil {
		log.Errorw("failed to write output", "error", err)
		return exitFailure
	}
	log.Debugw("done", "mode", opts.mode, "read", cr.n)
	return exitOK
}

type modeFunc func(w io.Writer, r io.Reader, opts options) error

var modeFuncs = map[string]modeFunc{
	modeTransform: func(w io.Writer, r io.Reader, opts options) error {
		return bwt.Encode(w, r, &bwt.WriterConfig{Workers: opts.workers})
	},
	modeInverseTransform: func(w io.Writer, r io.Reader, _ options) error {
		return bwt.Decode(w, r, nil)
	},
	modeEncode: func(w io.Writer, r io.Reader, _ options) error {
		return mtf.Encode(w, r, nil)
	},
	modeDecode: func(w io.Writer, r io.Reader, _ options) error {
		return mtf.Decode(w, r, nil)
	},
	modeCompress: func(w io.Writer, r io.Reader, opts options) error {
		mw, err := mtf.NewWriter(w, nil)
		if err != nil {
			return err
		}
		if err := bwt.Encode(mw, r, &bwt.WriterConfig{Workers: opts.workers}); err != nil {
			return err
		}
		return mw.Close()
	},
	modeDecompress: func(w io.Writer, r io.Reader, _ options) error {
		mr, err := mtf.NewReader(r, nil)
		if err != nil {
			return err
		}
		if err := bwt.Decode(w, mr, nil); err != nil {
			return err
		}
		return mr.Close()
	},
}

func newLogger(w io.Writer, verbose bool) *zap.SugaredLogger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encConf := zap.NewDevelopmentEncoderConfig()
	encConf.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encConf), zapcore.AddSync(w), level)
	return zap.New(core).Sugar()
}

func errorKind(err error) string {
	switch {
	case errors.IsCorrupted(err):
		return "malformed stream"
	case errors.IsInvalid(err):
		return "invalid input"
	case errors.IsOverflow(err):
		return "alphabet overflow"
	case errors.IsInternal(err):
		return "internal"
	default:
		return fmt.Sprintf("%T", err)
	}
}

type countReader struct {
	r io.Reader
	n int64
}

func (cr *countReader) Read(buf []byte) (int, error) {
	n, err := cr.r.Read(buf)
	cr.n += int64(n)
	return n, err
}
