// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mgf reads and writes Mascot Generic Format spectrum files at
// the level of whole ion blocks.
//
// Blocks are delimited by BEGIN IONS and END IONS lines. The contents of
// a block are kept verbatim apart from surrounding white space; only the
// TITLE and SEQ parameters are interpreted. Lines outside blocks, such as
// global parameters, are discarded.
package mgf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	beginIons = "BEGIN IONS"
	endIons   = "END IONS"

	titleKey = "TITLE="
	seqKey   = "SEQ="
)

// Spectrum is a single MGF ion block.
type Spectrum struct {
	// Lines holds the block including the BEGIN IONS and END IONS lines.
	Lines []string

	Title   string // Value of the first TITLE parameter.
	Peptide string // Value of the first SEQ parameter, if any.
}

// Reader reads ion blocks from an MGF stream.
type Reader struct {
	sc   *bufio.Scanner
	line int
	curr *Spectrum
	err  error
}

// NewReader returns a Reader reading from r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	// Peak lists can be long single lines in some exporters.
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &Reader{sc: sc}
}

// Next advances to the next ion block. It returns false at the end of the
// stream or on error; Err distinguishes the two.
func (r *Reader) Next() bool {
	r.curr = nil
	if r.err != nil {
		return false
	}
	s, err := r.read()
	if err != nil {
		if err != io.EOF {
			r.err = err
		}
		return false
	}
	r.curr = s
	return true
}

// Spectrum returns the block read by the last call to Next.
func (r *Reader) Spectrum() *Spectrum { return r.curr }

// Err returns the first non-EOF error encountered by the Reader.
func (r *Reader) Err() error { return r.err }

func (r *Reader) read() (*Spectrum, error) {
	var (
		s                  *Spectrum
		seenTitle, seenSeq bool
	)
	for r.sc.Scan() {
		r.line++
		line := strings.TrimSpace(r.sc.Text())
		switch {
		case line == beginIons:
			if s != nil {
				return nil, fmt.Errorf("mgf: line %d: %s inside open ion block", r.line, beginIons)
			}
			s = &Spectrum{Lines: []string{line}}
		case line == endIons:
			if s == nil {
				return nil, fmt.Errorf("mgf: line %d: %s without %s", r.line, endIons, beginIons)
			}
			s.Lines = append(s.Lines, line)
			return s, nil
		case s == nil:
			// Global parameters and blank lines between blocks.
		default:
			s.Lines = append(s.Lines, line)
			if !seenTitle && strings.HasPrefix(line, titleKey) {
				s.Title = line[len(titleKey):]
				seenTitle = true
			}
			if !seenSeq && strings.HasPrefix(line, seqKey) {
				s.Peptide = line[len(seqKey):]
				seenSeq = true
			}
		}
	}
	if err := r.sc.Err(); err != nil {
		return nil, fmt.Errorf("mgf: line %d: %w", r.line, err)
	}
	if s != nil {
		return nil, fmt.Errorf("mgf: line %d: %w", r.line, ErrUnterminated)
	}
	return nil, io.EOF
}

// ErrUnterminated is returned when the stream ends inside an ion block.
var ErrUnterminated = errors.New("unterminated ion block")

// ReadAll reads every ion block from r.
func ReadAll(r io.Reader) ([]*Spectrum, error) {
	var spectra []*Spectrum
	mr := NewReader(r)
	for mr.Next() {
		spectra = append(spectra, mr.Spectrum())
	}
	return spectra, mr.Err()
}

// Writer writes ion blocks to an MGF stream.
type Writer struct {
	w *bufio.Writer
	n int
}

// NewWriter returns a Writer writing to w. Callers must call Flush when
// done.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write writes s as one block. Successive blocks are separated by a
// newline.
func (w *Writer) Write(s *Spectrum) error {
	if w.n > 0 {
		if err := w.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	for _, l := range s.Lines {
		if _, err := w.w.WriteString(l); err != nil {
			return err
		}
		if err := w.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	w.n++
	return nil
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error { return w.w.Flush() }
