// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/check.v1"

	"github.com/biogo/mgfsplit/mgf"
)

// writeMGF writes an MGF file holding one block per title to dir and
// returns its path.
func writeMGF(c *check.C, dir string, titles ...string) string {
	var buf bytes.Buffer
	buf.WriteString("MASS=Monoisotopic\n")
	for i, t := range titles {
		fmt.Fprintf(&buf, "BEGIN IONS\nTITLE=%s\nSEQ=PEPTIDE%c\n%d.5 10\nEND IONS\n\n", t, 'A'+i%20, 100+i)
	}
	name := filepath.Join(dir, "in.mgf")
	c.Assert(os.WriteFile(name, buf.Bytes(), 0o644), check.IsNil)
	return name
}

func readSplits(c *check.C, dir string) map[string][]*mgf.Spectrum {
	names, err := filepath.Glob(filepath.Join(dir, "split_file_*.mgf"))
	c.Assert(err, check.IsNil)
	splits := make(map[string][]*mgf.Spectrum)
	for _, n := range names {
		f, err := os.Open(n)
		c.Assert(err, check.IsNil)
		s, err := mgf.ReadAll(f)
		f.Close()
		c.Assert(err, check.IsNil)
		splits[filepath.Base(n)] = s
	}
	return splits
}

func titles(t string, n int) []string {
	s := make([]string, n)
	for i := range s {
		s[i] = fmt.Sprintf("%s %d", t, i)
	}
	return s
}

func (s *S) TestRun(c *check.C) {
	dir := c.MkDir()
	var in []string
	in = append(in, titles("scan Phospho", 8)...)
	in = append(in, titles("scan", 2)...)
	in = append(in, "scan Acetyl (K)")
	inf := writeMGF(c, dir, in...)
	out := filepath.Join(dir, "out")
	plotf := filepath.Join(dir, "comp.png")

	var stdout, stderr bytes.Buffer
	err := run([]string{"-in", inf, "-out", out, "-size", "5", "-seed", "3", "-fasta", "-plot", plotf},
		strings.NewReader(""), &stdout, &stderr)
	c.Assert(err, check.IsNil)
	c.Check(strings.HasSuffix(stdout.String(), fmt.Sprintf("\nDone. Saved 2 split files to '%s'\n", out)), check.Equals, true)
	c.Check(strings.Contains(stdout.String(), "Found 11 spectra in file."), check.Equals, true)
	c.Check(strings.Contains(stderr.String(), "Using random seed 3."), check.Equals, true)

	splits := readSplits(c, out)
	c.Assert(splits, check.HasLen, 2)
	var got []string
	for _, name := range []string{"split_file_001.mgf", "split_file_002.mgf"} {
		c.Check(splits[name], check.HasLen, 5, check.Commentf("%s", name))
		var phospho int
		for _, sp := range splits[name] {
			got = append(got, sp.Title)
			if strings.Contains(sp.Title, "Phospho") {
				phospho++
			}
		}
		c.Check(phospho, check.Equals, 4, check.Commentf("%s", name))
	}
	sort.Strings(got)
	want := append(titles("scan", 2), titles("scan Phospho", 8)...)
	sort.Strings(want)
	c.Check(got, check.DeepEquals, want)

	for _, name := range []string{"split_file_001.fasta", "split_file_002.fasta", "comp.png"} {
		d := out
		if name == "comp.png" {
			d = dir
		}
		_, err = os.Stat(filepath.Join(d, name))
		c.Check(err, check.IsNil, check.Commentf("%s", name))
	}

	// The same seed gives the same splits.
	out2 := filepath.Join(dir, "out2")
	err = run([]string{"-in", inf, "-out", out2, "-size", "5", "-seed", "3"},
		strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	c.Assert(err, check.IsNil)
	c.Check(readSplits(c, out2), check.DeepEquals, splits)
}

func (s *S) TestRunSize(c *check.C) {
	dir := c.MkDir()
	inf := writeMGF(c, dir, titles("scan", 3)...)

	var stdout bytes.Buffer
	out := filepath.Join(dir, "yes")
	err := run([]string{"-in", inf, "-out", out, "-yes"}, strings.NewReader(""), &stdout, &bytes.Buffer{})
	c.Assert(err, check.IsNil)
	c.Check(strings.Contains(stdout.String(), "Do you want"), check.Equals, false)
	c.Check(strings.Contains(stdout.String(), "Done. Saved 1 split files"), check.Equals, true)
	c.Check(readSplits(c, out)["split_file_001.mgf"], check.HasLen, 3)

	stdout.Reset()
	out = filepath.Join(dir, "asked")
	err = run([]string{"-in", inf, "-out", out}, strings.NewReader("n\n2\n"), &stdout, &bytes.Buffer{})
	c.Assert(err, check.IsNil)
	c.Check(strings.Contains(stdout.String(), "Do you want to use this split? [Y/n]: "), check.Equals, true)
	c.Check(strings.Contains(stdout.String(), "Done. Saved 2 split files"), check.Equals, true)

	err = run([]string{"-in", inf, "-out", out}, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	c.Check(err, check.ErrorMatches, "failed to read split size: .*")

	err = run([]string{"-in", inf, "-size", "-1"}, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	c.Check(err, check.ErrorMatches, "invalid split size: -1")
}

func (s *S) TestRunMods(c *check.C) {
	dir := c.MkDir()
	inf := writeMGF(c, dir, "a Phospho", "b Oxidation", "c K_GG", "d")

	var stdout, stderr bytes.Buffer
	out := filepath.Join(dir, "empty")
	err := run([]string{"-in", inf, "-out", out, "-mods", " , ", "-yes"}, strings.NewReader(""), &stdout, &stderr)
	c.Assert(err, check.IsNil)
	c.Check(strings.Contains(stderr.String(), "no modifications given; using phospho,oxidation"), check.Equals, true)
	c.Check(readSplits(c, out)["split_file_001.mgf"], check.HasLen, 3)

	stderr.Reset()
	out = filepath.Join(dir, "unknown")
	err = run([]string{"-in", inf, "-out", out, "-mods", "methyl,k_gg", "-yes"}, strings.NewReader(""), &bytes.Buffer{}, &stderr)
	c.Assert(err, check.IsNil)
	c.Check(strings.Contains(stderr.String(), `modification "methyl" is not a recognised label`), check.Equals, true)
	c.Check(strings.Contains(stderr.String(), `"k_gg"`), check.Equals, false)
	c.Check(readSplits(c, out)["split_file_001.mgf"], check.HasLen, 2)
}

func (s *S) TestRunEmpty(c *check.C) {
	dir := c.MkDir()
	inf := writeMGF(c, dir)
	out := filepath.Join(dir, "out")

	var stdout bytes.Buffer
	err := run([]string{"-in", inf, "-out", out, "-yes", "-fasta"}, strings.NewReader(""), &stdout, &bytes.Buffer{})
	c.Assert(err, check.IsNil)
	c.Check(strings.HasSuffix(stdout.String(), fmt.Sprintf("\nDone. Saved 0 split files to '%s'\n", out)), check.Equals, true)
	ents, err := os.ReadDir(out)
	c.Assert(err, check.IsNil)
	c.Check(ents, check.HasLen, 0)
}

func (s *S) TestRunUsage(c *check.C) {
	var stderr bytes.Buffer
	err := run(nil, strings.NewReader(""), &bytes.Buffer{}, &stderr)
	c.Check(errors.Is(err, errUsage), check.Equals, true)
	c.Check(strings.Contains(stderr.String(), "-in"), check.Equals, true)

	err = run([]string{"-bogus"}, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	c.Check(errors.Is(err, errUsage), check.Equals, true)

	err = run([]string{"-in", filepath.Join(c.MkDir(), "missing.mgf")}, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	c.Check(err, check.ErrorMatches, `failed to open .*`)
}
