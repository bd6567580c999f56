// SPDX-License-Identifier: MIT

package clustering

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOutOfRange indicates a cluster or point index outside the membership.
var ErrOutOfRange = errors.New("clustering: index out of range")

// Membership is a clusters×points row-major matrix of soft memberships.
// Row i is the probability of every point belonging to cluster i; columns
// sum to 1 unless no cluster was found.
type Membership struct {
	r, c int
	data []float64 // len == r*c, offset = i*c + j
}

// newMembership copies rows (all of length points) into a flat buffer.
func newMembership(rows [][]float64, points int) *Membership {
	m := &Membership{r: len(rows), c: points, data: make([]float64, len(rows)*points)}
	for i, row := range rows {
		copy(m.data[i*points:(i+1)*points], row)
	}

	return m
}

// Rows returns the number of clusters.
func (m *Membership) Rows() int { return m.r }

// Cols returns the number of points.
func (m *Membership) Cols() int { return m.c }

// At returns the membership of point j in cluster i.
func (m *Membership) At(i, j int) (float64, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, fmt.Errorf("clustering: Membership.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return m.data[i*m.c+j], nil
}

// Row returns a copy of cluster i's memberships.
func (m *Membership) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("clustering: Membership.Row(%d): %w", i, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// String renders one bracketed row per line.
func (m *Membership) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%.4g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
