// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dsnet/bwtmtf/internal/tool/bench"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintResults(t *testing.T) {
	results := [][]bench.Result{
		{{R: 2.5, D: 1}, {R: 5, D: 2}},
		{{R: 1.25, D: 1}, {}},
	}
	names := []string{"twain.txt:6:1e4", "zeros.bin:6:1e4"}
	buf := new(bytes.Buffer)
	printResults(buf, results, names, []string{"std", "kp"}, "ratio", "x")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "\tbenchmark            std ratio  delta      kp ratio  delta", lines[0])
	assert.Equal(t, "\ttwain.txt:6:1e4          2.50x  1.00x         5.00x  2.00x", lines[1])
	assert.Equal(t, "\tzeros.bin:6:1e4          1.25x  1.00x                     ", lines[2])
}

func TestRunBenchmarksRatio(t *testing.T) {
	buf := new(bytes.Buffer)
	runBenchmarks(buf, []string{"periodic.bin"}, []string{"std"},
		[]int{bench.TestCompressRatio}, []int{6}, []int{1 << 12},
		[]bench.Stage{bench.StageRaw, bench.StageBWTMTF})

	out := buf.String()
	assert.Contains(t, out, "BENCHMARK: raw:ratio")
	assert.Contains(t, out, "BENCHMARK: bwtmtf:ratio")
	assert.Contains(t, out, "std ratio")
}

func TestRunBenchmarksSkip(t *testing.T) {
	buf := new(bytes.Buffer)
	runBenchmarks(buf, []string{"zeros.bin"}, []string{"missing"},
		[]int{bench.TestEncodeRate}, []int{6}, []int{1 << 10},
		[]bench.Stage{bench.StageRaw})
	assert.Contains(t, buf.String(), "SKIP: There are no encoders available.")
}
