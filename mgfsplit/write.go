// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"github.com/biogo/mgfsplit/mgf"
)

// splitName returns the base file name of the i'th split, counting from
// zero, with the given extension.
func splitName(i int, ext string) string {
	return fmt.Sprintf("split_file_%03d%s", i+1, ext)
}

// writeSplits writes each group to its own MGF file in dir, creating dir
// if necessary.
func writeSplits(dir string, groups [][]entry) error {
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return err
	}
	for i, g := range groups {
		name := filepath.Join(dir, splitName(i, ".mgf"))
		if err = writeSplit(name, g); err != nil {
			return fmt.Errorf("split %d: %w", i+1, err)
		}
	}
	return nil
}

func writeSplit(name string, g []entry) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	w := mgf.NewWriter(f)
	for _, e := range g {
		if err = w.Write(e.spec); err != nil {
			f.Close()
			return err
		}
	}
	if err = w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writePeptides writes the SEQ peptide of every spectrum of each group
// that has one to a FASTA file alongside the group's MGF file. Spectra
// are named by the first word of their title and the remainder of the
// title is used as the description. Groups with no peptides produce no
// file.
func writePeptides(dir string, groups [][]entry) error {
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return err
	}
	for i, g := range groups {
		var seqs []*linear.Seq
		for j, e := range g {
			if e.spec.Peptide == "" {
				continue
			}
			id := fmt.Sprintf("spectrum_%d", j+1)
			var desc string
			if f := strings.Fields(e.spec.Title); len(f) != 0 {
				id, desc = f[0], strings.Join(f[1:], " ")
			}
			s := linear.NewSeq(id, alphabet.BytesToLetters([]byte(e.spec.Peptide)), alphabet.Protein)
			s.Desc = desc
			seqs = append(seqs, s)
		}
		if len(seqs) == 0 {
			continue
		}
		name := filepath.Join(dir, splitName(i, ".fasta"))
		if err = writeFasta(name, seqs); err != nil {
			return fmt.Errorf("split %d: %w", i+1, err)
		}
	}
	return nil
}

func writeFasta(name string, seqs []*linear.Seq) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	w := fasta.NewWriter(f, 60)
	for _, s := range seqs {
		if _, err = w.Write(s); err != nil {
			f.Close()
			return err
		}
	}
	return f.Close()
}
