// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package balance splits labeled records into groups of a target size
// while keeping the overall proportion of each label in every group.
//
// Records are placed into one bucket per label and each bucket is
// shuffled. The share of each label is fixed from the initial bucket
// sizes. Groups are then built in rounds: each round takes
// ceil(size*share) records from every bucket, in the order the labels
// were first seen, and shuffles them together. Rounds continue until all
// buckets are empty, so the final group is usually short, and once a
// small bucket is exhausted later groups hold only the remaining labels.
package balance

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"github.com/biogo/mgfsplit/ptm"
)

// ErrInvalidInput is returned when the arguments to a split violate its
// preconditions.
var ErrInvalidInput = errors.New("balance: invalid input")

// bucket is the queue of record indices sharing one label.
type bucket struct {
	label ptm.Label
	idx   []int

	// take is the number of records drawn per round.
	take int
}

// Indices partitions the records described by labels and returns groups
// of record indices. A record takes part iff tracked retains its label;
// other records are dropped. If rnd is nil a time-seeded source is used.
func Indices(labels []ptm.Label, tracked ptm.Set, size int, rnd *rand.Rand) ([][]int, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: group size %d < 1", ErrInvalidInput, size)
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	var (
		buckets []*bucket
		byLabel = make(map[ptm.Label]*bucket)
		total   int
	)
	for i, l := range labels {
		if !tracked.Retains(l) {
			continue
		}
		b, ok := byLabel[l]
		if !ok {
			b = &bucket{label: l}
			byLabel[l] = b
			buckets = append(buckets, b)
		}
		b.idx = append(b.idx, i)
		total++
	}
	if total == 0 {
		return nil, nil
	}
	// Any size beyond total gives the same takes; capping it keeps
	// size*len(b.idx) below total² so it cannot overflow.
	if size > total {
		size = total
	}

	for _, b := range buckets {
		rnd.Shuffle(len(b.idx), func(i, j int) { b.idx[i], b.idx[j] = b.idx[j], b.idx[i] })
		// ceil(size * len/total) without floating point error.
		b.take = (size*len(b.idx) + total - 1) / total
	}

	var groups [][]int
	for remain := total; remain > 0; {
		var g []int
		for _, b := range buckets {
			n := b.take
			if n > len(b.idx) {
				n = len(b.idx)
			}
			g = append(g, b.idx[:n]...)
			b.idx = b.idx[n:]
		}
		if len(g) == 0 {
			break
		}
		rnd.Shuffle(len(g), func(i, j int) { g[i], g[j] = g[j], g[i] })
		groups = append(groups, g)
		remain -= len(g)
	}
	return groups, nil
}

// Partition splits records into balanced groups using the label at the
// same position in labels. It is Indices applied to records.
func Partition[T any](records []T, labels []ptm.Label, tracked ptm.Set, size int, rnd *rand.Rand) ([][]T, error) {
	if len(records) != len(labels) {
		return nil, fmt.Errorf("%w: %d records with %d labels", ErrInvalidInput, len(records), len(labels))
	}
	idx, err := Indices(labels, tracked, size, rnd)
	if err != nil {
		return nil, err
	}
	groups := make([][]T, len(idx))
	for i, g := range idx {
		groups[i] = make([]T, len(g))
		for j, k := range g {
			groups[i][j] = records[k]
		}
	}
	return groups, nil
}

// Composition holds the number of records of each label in one group.
type Composition map[ptm.Label]int

// Summarize returns the label composition of each group, using label to
// obtain the label of a record.
func Summarize[T any](groups [][]T, label func(T) ptm.Label) []Composition {
	comp := make([]Composition, len(groups))
	for i, g := range groups {
		comp[i] = make(Composition)
		for _, r := range g {
			comp[i][label(r)]++
		}
	}
	return comp
}
