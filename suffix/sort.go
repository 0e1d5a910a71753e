// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package suffix

import (
	"cmp"
	"slices"

	"golang.org/x/sync/errgroup"
)

const (
	// Messages shorter than this are sorted with Compare directly.
	naiveLimit = 64

	// Smallest number of offsets worth handing to a separate worker.
	minChunkSize = 1 << 12
)

// Compare compares the rotations of buf starting at offsets i and j.
// Identical rotations are ordered by ascending offset, so the result is zero
// only when i == j. Both offsets must be within [0, len(buf)).
//
// This costs O(n) in the worst case.
func Compare(buf []byte, i, j int) int {
	n := len(buf)
	for k, xi, xj := 0, i, j; k < n; k++ {
		if bi, bj := buf[xi], buf[xj]; bi != bj {
			return cmp.Compare(bi, bj)
		}
		if xi++; xi == n {
			xi = 0
		}
		if xj++; xj == n {
			xj = 0
		}
	}
	return cmp.Compare(i, j)
}

func sortNaive(buf []byte, order []int) {
	slices.SortFunc(order, func(i, j int) int { return Compare(buf, i, j) })
}

// sortDoubling sorts order using prefix doubling over circular rotations.
func sortDoubling(buf []byte, order []int, workers int) {
	n := len(buf)
	class := make([]int, n)
	next := make([]int, n)
	scratch := make([]int, n)
	for i, b := range buf {
		class[i] = int(b)
	}

	for k := 1; ; k *= 2 {
		// Rotations sharing both halves of a 2k-symbol prefix are still tied
		// after this round; the offset then acts as the final tie-breaker.
		cmpFn := func(a, b int) int {
			if c := cmp.Compare(class[a], class[b]); c != 0 {
				return c
			}
			if c := cmp.Compare(class[(a+k)%n], class[(b+k)%n]); c != 0 {
				return c
			}
			return cmp.Compare(a, b)
		}
		parallelSort(order, scratch, cmpFn, workers)

		next[order[0]] = 0
		for r := 1; r < n; r++ {
			a, b := order[r-1], order[r]
			next[b] = next[a]
			if class[a] != class[b] || class[(a+k)%n] != class[(b+k)%n] {
				next[b]++
			}
		}
		class, next = next, class

		if class[order[n-1]] == n-1 || 2*k >= n {
			return // All classes distinct or every rotation fully compared
		}
	}
}

// parallelSort sorts s according to cmpFn. The input is split into up to
// workers contiguous chunks that are sorted concurrently and then merged
// pairwise. The scratch slice must be as long as s.
//
// Since cmpFn is a total order, the result is identical to a sequential sort.
func parallelSort(s, scratch []int, cmpFn func(a, b int) int, workers int) {
	n := len(s)
	chunks := min(workers, n/minChunkSize)
	if chunks <= 1 {
		slices.SortFunc(s, cmpFn)
		return
	}
	size := (n + chunks - 1) / chunks

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += size {
		hi := min(lo+size, n)
		g.Go(func() error {
			slices.SortFunc(s[lo:hi], cmpFn)
			return nil
		})
	}
	g.Wait()

	src, dst := s, scratch
	for width := size; width < n; width *= 2 {
		for lo := 0; lo < n; lo += 2 * width {
			mid, hi := min(lo+width, n), min(lo+2*width, n)
			g.Go(func() error {
				merge(dst[lo:hi], src[lo:mid], src[mid:hi], cmpFn)
				return nil
			})
		}
		g.Wait()
		src, dst = dst, src
	}
	if &src[0] != &s[0] {
		copy(s, src)
	}
}

// merge merges the sorted slices a and b into dst.
func merge(dst, a, b []int, cmpFn func(a, b int) int) {
	var i, j, k int
	for i < len(a) && j < len(b) {
		if cmpFn(b[j], a[i]) < 0 {
			dst[k] = b[j]
			j++
		} else {
			dst[k] = a[i]
			i++
		}
		k++
	}
	k += copy(dst[k:], a[i:])
	copy(dst[k:], b[j:])
}
