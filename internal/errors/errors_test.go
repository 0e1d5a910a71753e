// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package errors

import (
	"io"
	"testing"
)

func TestError(t *testing.T) {
	var vectors = []struct {
		err  Error
		want string
		pred func(error) bool
	}{
		{Error{Code: Invalid, Pkg: "bwt", Msg: "rank out of range"}, "bwt: invalid argument: rank out of range", IsInvalid},
		{Error{Code: Corrupted, Pkg: "bwt"}, "bwt: malformed stream", IsCorrupted},
		{Error{Code: Overflow, Pkg: "mtf", Msg: "index 9"}, "mtf: alphabet overflow: index 9", IsOverflow},
		{Error{Code: Internal, Msg: "oops"}, "internal error: oops", IsInternal},
		{Error{Code: Closed, Pkg: "mtf"}, "mtf: closed handler", IsClosed},
	}

	for i, v := range vectors {
		if got := v.err.Error(); got != v.want {
			t.Errorf("test %d, message mismatch:\ngot  %q\nwant %q", i, got, v.want)
		}
		if !v.pred(v.err) {
			t.Errorf("test %d, predicate mismatch for %v", i, v.err)
		}
		if IsInternal(io.EOF) || IsInvalid(io.EOF) {
			t.Errorf("test %d, foreign error classified", i)
		}
	}
}

func TestPanicRecover(t *testing.T) {
	want := Error{Code: Invalid, Pkg: "suffix"}
	got := func() (err error) {
		defer Recover(&err)
		Panic(want)
		return nil
	}()
	if got != want {
		t.Errorf("recovered error mismatch: got %v, want %v", got, want)
	}

	defer func() {
		if ex := recover(); ex != "foreign" {
			t.Errorf("foreign panic mismatch: got %v", ex)
		}
	}()
	func() (err error) {
		defer Recover(&err)
		panic("foreign")
	}()
}
