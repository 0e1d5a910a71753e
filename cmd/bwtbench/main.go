// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command bwtbench measures how much the BWT and MTF stages improve the
// speed and ratio of external entropy coders.
package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/dsnet/bwtmtf/internal/tool/bench"
	strconv "github.com/dsnet/golib/unitconv"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const (
	defaultTests  = "encRate,decRate,ratio"
	defaultStages = "raw,bwtmtf"
	defaultFiles  = "zeros.bin,random.bin,periodic.bin,repeats.bin,digits.txt,twain.txt"
	defaultLevels = "1,6,9"
	defaultSizes  = "1e4,1e5"
)

var (
	stageToEnum = map[string]bench.Stage{
		"raw":    bench.StageRaw,
		"bwtmtf": bench.StageBWTMTF,
	}
	enumToStage = map[bench.Stage]string{
		bench.StageRaw:    "raw",
		bench.StageBWTMTF: "bwtmtf",
	}
	testToEnum = map[string]int{
		"encRate": bench.TestEncodeRate,
		"decRate": bench.TestDecodeRate,
		"ratio":   bench.TestCompressRatio,
	}
	enumToTest = map[int]string{
		bench.TestEncodeRate:    "encRate",
		bench.TestDecodeRate:    "decRate",
		bench.TestCompressRatio: "ratio",
	}
)

func defaultCodecs() string {
	m := make(map[string]bool)
	for _, v := range bench.Encoders {
		for k := range v {
			m[k] = true
		}
	}
	hasStd := m["std"]
	delete(m, "std")
	var s []string
	for k := range m {
		s = append(s, k)
	}
	sort.Strings(s)
	if hasStd {
		s = append([]string{"std"}, s...) // Ensure "std" always appears first
	}
	return strings.Join(s, ",")
}

func main() {
	fs := pflag.NewFlagSet("bwtbench", pflag.ExitOnError)
	f0 := fs.String("tests", defaultTests, "List of different benchmark tests")
	f1 := fs.String("files", defaultFiles, "List of input files to benchmark")
	f2 := fs.String("levels", defaultLevels, "List of compression levels to benchmark")
	f3 := fs.String("sizes", defaultSizes, "List of input sizes to benchmark")
	f4 := fs.String("codecs", defaultCodecs(), "List of codecs to benchmark")
	f5 := fs.String("stages", defaultStages, "List of stages to benchmark")
	f6 := fs.String("paths", "", "List of paths to search for test files")
	fs.Parse(os.Args[1:])

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()
	log := logger.Sugar()

	// Parse the flag arguments.
	var sep = regexp.MustCompile("[,:]")
	var files, codecs, paths []string
	var tests, levels, sizes []int
	var stages []bench.Stage
	files = sep.Split(*f1, -1)
	codecs = sep.Split(*f4, -1)
	if *f6 != "" {
		paths = sep.Split(*f6, -1)
	}
	for _, s := range sep.Split(*f0, -1) {
		if _, ok := testToEnum[s]; !ok {
			log.Fatalw("invalid test", "test", s)
		}
		tests = append(tests, testToEnum[s])
	}
	for _, s := range sep.Split(*f2, -1) {
		lvl, err := strconv.ParsePrefix(s, strconv.AutoParse)
		if err != nil {
			log.Fatalw("invalid level", "level", s, "error", err)
		}
		levels = append(levels, int(lvl))
	}
	for _, s := range sep.Split(*f3, -1) {
		nf, err := strconv.ParsePrefix(s, strconv.AutoParse)
		if err != nil {
			log.Fatalw("invalid size", "size", s, "error", err)
		}
		sizes = append(sizes, int(nf))
	}
	for _, s := range sep.Split(*f5, -1) {
		if _, ok := stageToEnum[s]; !ok {
			log.Fatalw("invalid stage", "stage", s)
		}
		stages = append(stages, stageToEnum[s])
	}

	bench.Paths = paths
	runBenchmarks(os.Stdout, files, codecs, tests, levels, sizes, stages)
}

func runBenchmarks(w io.Writer, files, codecs []string, tests, levels, sizes []int, stages []bench.Stage) {
	for _, st := range stages {
		// Get lists of encoders and decoders that exist.
		var encs, decs []string
		for _, c := range codecs {
			if _, ok := bench.Encoders[st][c]; ok {
				encs = append(encs, c)
			}
			if _, ok := bench.Decoders[st][c]; ok {
				decs = append(decs, c)
			}
		}

		for _, t := range tests {
			var results [][]bench.Result
			var names, codecs []string
			var title, suffix string

			// Check that we can actually do this benchmark.
			fmt.Fprintf(w, "BENCHMARK: %s:%s\n", enumToStage[st], enumToTest[t])
			if len(encs) == 0 {
				fmt.Fprint(w, "\tSKIP: There are no encoders available.\n\n")
				continue
			}
			if len(decs) == 0 && t == bench.TestDecodeRate {
				fmt.Fprint(w, "\tSKIP: There are no decoders available.\n\n")
				continue
			}

			// Progress ticker.
			var cnt int
			tick := func() {
				total := len(codecs) * len(files) * len(levels) * len(sizes)
				pct := 100.0 * float64(cnt) / float64(total)
				fmt.Fprintf(w, "\t[%6.2f%%] %d of %d\r", pct, cnt, total)
				cnt++
			}

			// Perform the benchmark. This may take some time.
			switch t {
			case bench.TestEncodeRate:
				codecs, title, suffix = encs, "MB/s", ""
				results, names = bench.BenchmarkEncoderSuite(st, encs, files, levels, sizes, tick)
			case bench.TestDecodeRate:
				codecs, title, suffix = decs, "MB/s", ""
				results, names = bench.BenchmarkDecoderSuite(st, decs, files, levels, sizes, tick)
			case bench.TestCompressRatio:
				codecs, title, suffix = encs, "ratio", "x"
				results, names = bench.BenchmarkRatioSuite(st, encs, files, levels, sizes, tick)
			}

			// Print all of the results.
			printResults(w, results, names, codecs, title, suffix)
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w)
	}
}

func printResults(w io.Writer, results [][]bench.Result, names, codecs []string, title, suffix string) {
	// Allocate result table.
	cells := make([][]string, 1+len(names))
	for i := range cells {
		cells[i] = make([]string, 1+2*len(codecs))
	}

	// Label the first row.
	cells[0][0] = "benchmark"
	for i, c := range codecs {
		cells[0][1+2*i] = c + " " + title
		cells[0][2+2*i] = "delta"
	}

	// Insert all rows.
	for j, row := range results {
		cells[1+j][0] = names[j]
		for i, r := range row {
			if r.R != 0 && !math.IsNaN(r.R) && !math.IsInf(r.R, 0) {
				cells[1+j][1+2*i] = fmt.Sprintf("%.2f", r.R) + suffix
			}
			if r.D != 0 && !math.IsNaN(r.D) && !math.IsInf(r.D, 0) {
				cells[1+j][2+2*i] = fmt.Sprintf("%.2f", r.D) + "x"
			}
		}
	}

	// Compute the maximum lengths.
	maxLens := make([]int, 1+2*len(codecs))
	for _, row := range cells {
		for i, s := range row {
			if maxLens[i] < len(s) {
				maxLens[i] = len(s)
			}
		}
	}

	// Print padded versions of all cells.
	for _, row := range cells {
		fmt.Fprint(w, "\t")
		for i, s := range row {
			switch {
			case i == 0: // Column 0
				row[i] = s + strings.Repeat(" ", maxLens[i]-len(s))
			case i%2 == 1: // Column 1, 3, 5, 7, ...
				row[i] = strings.Repeat(" ", 6+maxLens[i]-len(s)) + s
			case i%2 == 0: // Column 2, 4, 6, 8, ...
				row[i] = strings.Repeat(" ", 2+maxLens[i]-len(s)) + s
			}
			fmt.Fprint(w, row[i])
		}
		fmt.Fprintln(w)
	}
}
