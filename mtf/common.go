// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package mtf implements the Move-To-Front transform.
//
// Each symbol is replaced by its current position in a recency list, and the
// symbol is then moved to the front of that list. Applied to the output of
// the Burrows-Wheeler Transform, recently seen symbols migrate to low indices,
// which produces long runs of small values that an entropy coder can exploit.
// The transform itself neither shrinks nor grows the data.
//
// The recency list is owned by a single MoveToFront value. Encoding and
// decoding are strictly sequential since every step depends on the list left
// by the previous step. Independent streams must use independent values.
//
// Stream format:
//
//	index: one byte per symbol, in [0, R)
package mtf

import (
	"fmt"

	"github.com/dsnet/bwtmtf/internal/errors"
)

func errorf(c int, f string, a ...interface{}) error {
	return errors.Error{Code: c, Pkg: "mtf", Msg: fmt.Sprintf(f, a...)}
}

func panicf(c int, f string, a ...interface{}) {
	errors.Panic(errorf(c, f, a...))
}

var errClosed = errorf(errors.Closed, "")
