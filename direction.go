// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tunnel

import "fmt"

// Direction is the heading of a vehicle travelling through the tunnel.
type Direction uint8

const (
	North Direction = iota
	South

	numDirections = 2
)

// Directions lists every valid direction.
var Directions = [numDirections]Direction{North, South}

func (d Direction) Opposite() Direction {
	return d ^ 1
}

func (d Direction) Valid() bool {
	return d < numDirections
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

func mustBeValid(d Direction) {
	if !d.Valid() {
		panic(fmt.Sprintf("invalid direction %d", uint8(d)))
	}
}
