// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// mgfsplit splits an MGF spectrum file into a number of smaller MGF files
// that each preserve the overall proportion of post-translational
// modification classes.
//
// Each spectrum is labelled from its TITLE as phospho, oxidation, k_gg,
// k_ac or unmodified. Spectra labelled with a modification that is not
// listed in -mods are omitted. The remaining spectra are shuffled within
// their class and dealt out so that every split file, apart from the
// last few, holds the same class proportions as the whole input.
//
// Split files are written to the output directory as split_file_001.mgf,
// split_file_002.mgf and so on. If -size is not given the user is asked
// to confirm a recommended split size.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"golang.org/x/exp/rand"

	"github.com/biogo/mgfsplit/balance"
	"github.com/biogo/mgfsplit/mgf"
	"github.com/biogo/mgfsplit/ptm"
)

// entry is a spectrum and its modification label.
type entry struct {
	spec  *mgf.Spectrum
	label ptm.Label
}

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
	case errors.Is(err, errUsage):
		os.Exit(2)
	default:
		log.Fatal(err)
	}
}

// errUsage is returned by run when the command line is unusable.
var errUsage = errors.New("usage error")

// run executes mgfsplit with the given command line arguments, reading
// prompt answers from stdin and writing the report to stdout and progress
// messages to stderr.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("mgfsplit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		inf   = fs.String("in", "", "input MGF file name (required)")
		outd  = fs.String("out", ".", "directory to write split files to")
		mods  = fs.String("mods", "phospho,oxidation", "comma separated modifications to include")
		size  = fs.Int("size", 0, "spectra per split file; 0 asks interactively")
		yes   = fs.Bool("yes", false, "accept the recommended split size without asking")
		seed  = fs.Uint64("seed", 0, "random seed; 0 uses the current time")
		plotf = fs.String("plot", "", "write a split composition chart to this file (png, svg, pdf)")
		fa    = fs.Bool("fasta", false, "also write the SEQ peptides of each split as FASTA")
		help  = fs.Bool("help", false, "help prints this message.")
	)
	err := fs.Parse(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return errUsage
	}
	if *help {
		fs.Usage()
		return nil
	}
	if *inf == "" {
		fs.Usage()
		return errUsage
	}
	if *size < 0 {
		return fmt.Errorf("invalid split size: %d", *size)
	}
	logger := log.New(stderr, "", log.LstdFlags)

	tracked := ptm.ParseSet(*mods)
	if tracked.Len() == 0 {
		logger.Printf("no modifications given; using %s", ptm.DefaultSet())
		tracked = ptm.DefaultSet()
	}
	for _, l := range tracked.Labels() {
		if !ptm.Known(string(l)) {
			logger.Printf("modification %q is not a recognised label and will never match", l)
		}
	}

	in, err := os.Open(*inf)
	if err != nil {
		return fmt.Errorf("failed to open %q: %w", *inf, err)
	}
	fmt.Fprintf(stderr, "Reading spectra from `%s'.\n", *inf)
	spectra, err := mgf.ReadAll(in)
	in.Close()
	if err != nil {
		return fmt.Errorf("failed during read: %w", err)
	}

	entries := make([]entry, len(spectra))
	labels := make([]ptm.Label, len(spectra))
	for i, s := range spectra {
		labels[i] = ptm.LabelOf(s.Title)
		entries[i] = entry{spec: s, label: labels[i]}
	}

	fmt.Fprintf(stdout, "\nFound %d spectra in file.\n", len(spectra))
	checkBalance(stdout, labels, tracked)

	if *size == 0 {
		if *yes {
			*size = recommendedSize
		} else {
			*size, err = askSplitSize(stdin, stdout, len(spectra))
			if err != nil {
				return fmt.Errorf("failed to read split size: %w", err)
			}
		}
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	fmt.Fprintf(stderr, "Using random seed %d.\n", *seed)
	groups, err := balance.Partition(entries, labels, tracked, *size, rand.New(rand.NewSource(*seed)))
	if err != nil {
		return fmt.Errorf("failed to split spectra: %w", err)
	}
	comp := balance.Summarize(groups, func(e entry) ptm.Label { return e.label })

	if err = writeSplits(*outd, groups); err != nil {
		return fmt.Errorf("failed to write splits: %w", err)
	}
	if *fa {
		if err = writePeptides(*outd, groups); err != nil {
			return fmt.Errorf("failed to write peptides: %w", err)
		}
	}
	if *plotf != "" && len(groups) != 0 {
		order := ptm.NewSet(append(tracked.Labels(), ptm.Unmodified)...)
		if err = plotComposition(*plotf, comp, order.Labels()); err != nil {
			return fmt.Errorf("failed to plot composition: %w", err)
		}
		fmt.Fprintf(stderr, "Wrote composition chart to `%s'.\n", *plotf)
	}

	fmt.Fprintf(stdout, "\nDone. Saved %d split files to '%s'\n", len(groups), *outd)
	return nil
}
