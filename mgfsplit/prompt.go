// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// recommendedSize is the default number of spectra per split file.
const recommendedSize = 1200

// askSplitSize offers the recommended split size for total spectra on out
// and reads the answer from in. Declining the recommendation prompts for
// a positive integer until one is given.
func askSplitSize(in io.Reader, out io.Writer, total int) (int, error) {
	files := (total + recommendedSize - 1) / recommendedSize
	fmt.Fprintf(out, "Recommended: %d spectra per file -> %d files.\n", recommendedSize, files)

	sc := bufio.NewScanner(in)
	fmt.Fprint(out, "Do you want to use this split? [Y/n]: ")
	answer, err := readLine(sc)
	if err != nil {
		return 0, err
	}
	switch strings.ToLower(answer) {
	case "", "y", "yes":
		return recommendedSize, nil
	}

	for {
		fmt.Fprint(out, "Enter your custom number of spectra per file: ")
		answer, err = readLine(sc)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(answer)
		if err == nil && n > 0 {
			return n, nil
		}
		fmt.Fprintln(out, "Please enter a valid positive integer.")
	}
}

func readLine(sc *bufio.Scanner) (string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(sc.Text()), nil
}
