// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ptm assigns post-translational modification labels to spectra
// based on their free-text titles.
package ptm

import "strings"

// Label is a modification class.
type Label string

// Labels assigned by LabelOf.
const (
	Phospho    Label = "phospho"
	Oxidation  Label = "oxidation"
	KGG        Label = "k_gg"
	KAc        Label = "k_ac"
	Unmodified Label = "unmodified"
)

// rules are tested in order; the first rule with a matching pattern wins.
var rules = []struct {
	label    Label
	patterns []string
}{
	{Phospho, []string{"phospho"}},
	{Oxidation, []string{"oxidation"}},
	{KGG, []string{"k_gg", "ubiquitin"}},
	{KAc, []string{"k_ac", "acetyl"}},
}

// LabelOf returns the modification label for a spectrum title. Matching
// is case-insensitive. Titles matching no rule are Unmodified.
func LabelOf(title string) Label {
	t := strings.ToLower(title)
	for _, r := range rules {
		for _, p := range r.patterns {
			if strings.Contains(t, p) {
				return r.label
			}
		}
	}
	return Unmodified
}

// Labels returns every label LabelOf can produce, in matching priority
// order followed by Unmodified.
func Labels() []Label {
	l := make([]Label, 0, len(rules)+1)
	for _, r := range rules {
		l = append(l, r.label)
	}
	return append(l, Unmodified)
}

// Known returns whether name is a label LabelOf can produce.
func Known(name string) bool {
	for _, l := range Labels() {
		if string(l) == name {
			return true
		}
	}
	return false
}

// Set is an ordered set of tracked modification labels.
type Set struct {
	order []Label
	has   map[Label]bool
}

// NewSet returns a Set holding the given labels in first-seen order.
func NewSet(labels ...Label) Set {
	s := Set{has: make(map[Label]bool, len(labels))}
	for _, l := range labels {
		if s.has[l] {
			continue
		}
		s.has[l] = true
		s.order = append(s.order, l)
	}
	return s
}

// DefaultSet returns the set of modifications tracked when none are given.
func DefaultSet() Set { return NewSet(Phospho, Oxidation) }

// ParseSet parses a comma separated list of modification names. Names are
// trimmed and lower-cased; empty names are ignored.
func ParseSet(list string) Set {
	var labels []Label
	for _, f := range strings.Split(list, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" {
			continue
		}
		labels = append(labels, Label(f))
	}
	return NewSet(labels...)
}

// Has returns whether l is tracked.
func (s Set) Has(l Label) bool { return s.has[l] }

// Labels returns the tracked labels in insertion order.
func (s Set) Labels() []Label { return append([]Label(nil), s.order...) }

// Len returns the number of tracked labels.
func (s Set) Len() int { return len(s.order) }

// Retains returns whether a record with label l takes part in splitting:
// it must be tracked or unmodified.
func (s Set) Retains(l Label) bool { return l == Unmodified || s.has[l] }

// String returns the tracked labels comma separated.
func (s Set) String() string {
	n := make([]string, len(s.order))
	for i, l := range s.order {
		n[i] = string(l)
	}
	return strings.Join(n, ",")
}
