// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/biogo/mgfsplit/ptm"
)

// imbalanceTolerance is the largest spread between the most and least
// frequent tracked modification, as a fraction of the most frequent,
// that is not reported as imbalanced.
const imbalanceTolerance = 0.1

// checkBalance writes the class distribution of labels to w and reports
// whether the tracked modifications present in the data are imbalanced.
// Modifications with no spectra do not take part in the comparison.
func checkBalance(w io.Writer, labels []ptm.Label, tracked ptm.Set) bool {
	counts := make(map[ptm.Label]int)
	for _, l := range labels {
		counts[l]++
	}

	fmt.Fprintln(w, "\nClass distribution:")
	var present []float64
	for _, l := range tracked.Labels() {
		fmt.Fprintf(w, " - %s: %d\n", l, counts[l])
		if counts[l] > 0 && l != ptm.Unmodified {
			present = append(present, float64(counts[l]))
		}
	}
	if !tracked.Has(ptm.Unmodified) {
		fmt.Fprintf(w, " - %s: %d\n", ptm.Unmodified, counts[ptm.Unmodified])
	}

	if len(present) > 1 {
		p := make([]float64, len(present))
		copy(p, present)
		floats.Scale(1/floats.Sum(p), p)
		fmt.Fprintf(w, " evenness: %.3f\n", stat.Entropy(p)/math.Log(float64(len(p))))
	}

	if len(present) == 0 {
		return false
	}
	min, max := floats.Min(present), floats.Max(present)
	if max-min > imbalanceTolerance*max {
		fmt.Fprintln(w, "\nWarning: The dataset is imbalanced. Balanced splitting may not be possible across all files.")
		return true
	}
	return false
}
