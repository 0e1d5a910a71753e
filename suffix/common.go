// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package suffix sorts the circular rotations of a message.
//
// The resulting order is a permutation of all rotation start offsets such
// that the rotations are in ascending lexicographical order. Rotations that
// are symbol-for-symbol identical, which only happens for periodic messages,
// are ordered by ascending offset so that the permutation is unique.
//
// Short messages are sorted by directly comparing rotations. Longer messages
// use prefix doubling: after each round, every rotation is assigned a class
// such that two rotations share a class iff their first 2k symbols are equal.
// A round costs one sort by (class[i], class[i+k], i) and at most log2(n)
// rounds are needed.
//
// References:
//
//	https://en.wikipedia.org/wiki/Suffix_array#Construction_algorithms
//	http://www.cs.au.dk/~gerth/advising/thesis/henrik-knakkegaard-christensen.pdf
package suffix

import (
	"fmt"
	"runtime"

	"github.com/dsnet/bwtmtf/internal/errors"
)

// Config configures how the order is computed.
// The zero value is valid and uses GOMAXPROCS workers.
type Config struct {
	// Workers is the maximum number of goroutines used to sort rotations.
	// If Workers <= 0, then runtime.GOMAXPROCS(0) is used.
	Workers int

	_ struct{} // Blank field to prevent unkeyed struct literals
}

func (c *Config) workers() int {
	if c == nil || c.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return c.Workers
}

func errorf(c int, f string, a ...interface{}) error {
	return errors.Error{Code: c, Pkg: "suffix", Msg: fmt.Sprintf(f, a...)}
}
