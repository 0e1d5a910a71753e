// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bytes"
	"hash/crc32"
	"io"
	"sort"
	"testing"

	"github.com/dsnet/bwtmtf/internal/testutil"
)

var testFiles = func() []string {
	var fs []string
	for f := range testutil.Corpus(0) {
		fs = append(fs, f)
	}
	sort.Strings(fs)
	return fs
}()

func testRoundTrip(t *testing.T, enc Encoder, dec Decoder) {
	type entry struct {
		name  string // Name of the test
		file  string // The input test file
		level int    // The compression level
		size  int    // The size of the input
	}
	var vectors []entry
	for _, f := range testFiles {
		var l, s int = 6, 1 << 15
		vectors = append(vectors, entry{getName(f, l, s), f, l, s})
	}

	for i, v := range vectors {
		input, err := LoadFile(v.file, v.size)
		if err != nil {
			t.Fatalf("test %d, %s: unexpected error: %v", i, v.name, err)
		}
		buf := new(bytes.Buffer)
		wr := enc(buf, v.level)
		_, cpErr := io.Copy(wr, bytes.NewReader(input))
		if err := wr.Close(); err != nil {
			t.Errorf("test %d, %s: unexpected error: %v", i, v.name, err)
			continue
		}
		if cpErr != nil {
			t.Errorf("test %d, %s: unexpected error: %v", i, v.name, cpErr)
			continue
		}

		hash := crc32.NewIEEE()
		rd := dec(buf)
		cnt, cpErr := io.Copy(hash, rd)
		if err := rd.Close(); err != nil {
			t.Errorf("test %d, %s: unexpected error: %v", i, v.name, err)
			continue
		}
		if cpErr != nil {
			t.Errorf("test %d, %s: unexpected error: %v", i, v.name, cpErr)
			continue
		}

		sum := crc32.ChecksumIEEE(input)
		if int(cnt) != len(input) {
			t.Errorf("test %d, %s: mismatching count: got %d, want %d", i, v.name, cnt, len(input))
		}
		if hash.Sum32() != sum {
			t.Errorf("test %d, %s: mismatching checksum: got 0x%08x, want 0x%08x", i, v.name, hash.Sum32(), sum)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, stage := range []Stage{StageRaw, StageBWTMTF} {
		for name := range Encoders[stage] {
			stage, name := stage, name
			t.Run(getStageName(stage)+":"+name, func(t *testing.T) {
				t.Parallel()
				testRoundTrip(t, Encoders[stage][name], Decoders[stage][name])
			})
		}
	}
}

func TestLoadFile(t *testing.T) {
	b, err := LoadFile("twain.txt", 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(b) != 1000 {
		t.Errorf("mismatching length: got %d, want %d", len(b), 1000)
	}
	if _, err := LoadFile("missing.bin", 1000); err == nil {
		t.Errorf("unexpected success for missing file")
	}
}

func TestGetName(t *testing.T) {
	var vectors = []struct {
		file  string
		level int
		size  int
		want  string
	}{
		{"twain.txt", 6, 1e4, "twain.txt:6:1e4"},
		{"dir/zeros.bin", 1, 1e6, "zeros.bin:1:1e6"},
	}
	for i, v := range vectors {
		if got := getName(v.file, v.level, v.size); got != v.want {
			t.Errorf("test %d, getName(%q, %d, %d): got %q, want %q", i, v.file, v.level, v.size, got, v.want)
		}
	}
}

// Zeros and periodic inputs collapse to runs of zero indexes after the MTF
// stage, which any of the entropy coders compresses far better than the
// equivalent raw input of the same size.
func TestRatioSuite(t *testing.T) {
	if _, ok := Encoders[StageRaw]["std"]; !ok {
		t.Skip("std codec not registered")
	}
	files := []string{"periodic.bin", "twain.txt"}
	raw, names := BenchmarkRatioSuite(StageRaw, []string{"std"}, files, []int{6}, []int{1 << 14}, nil)
	pre, _ := BenchmarkRatioSuite(StageBWTMTF, []string{"std"}, files, []int{6}, []int{1 << 14}, nil)
	if len(raw) != len(files) || len(pre) != len(files) {
		t.Fatalf("mismatching result count: got (%d, %d), want %d", len(raw), len(pre), len(files))
	}
	for i := range raw {
		if raw[i][0].R <= 1 || pre[i][0].R <= 1 {
			t.Errorf("test %d, %s: ratio not above 1: raw %.2f, bwtmtf %.2f", i, names[i], raw[i][0].R, pre[i][0].R)
		}
	}
}
