// SPDX-License-Identifier: MIT

package cuts

import "github.com/bits-and-blooms/bitset"

// Orientation is the side of a cut chosen inside a tangle.
// It converts to bool: Left is true, Right is false.
type Orientation bool

const (
	// Left keeps the points marked true in the cut.
	Left Orientation = true
	// Right keeps the complement of the cut.
	Right Orientation = false
)

// Direction returns "left" or "right".
func (o Orientation) Direction() string {
	if o {
		return "left"
	}

	return "right"
}

// String implements fmt.Stringer.
func (o Orientation) String() string { return o.Direction() }

// Short returns the one-letter tree label form, "T" for Left and "F" for Right.
func (o Orientation) Short() string {
	if o {
		return "T"
	}

	return "F"
}

// Opposite returns the other side.
func (o Orientation) Opposite() Orientation { return !o }

// OrientCut returns cut itself for Left and a fresh complement for Right.
// The input is never modified; for Left the returned set aliases cut.
func (o Orientation) OrientCut(cut *bitset.BitSet) *bitset.BitSet {
	if o {
		return cut
	}

	return cut.Complement()
}
