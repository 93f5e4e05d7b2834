// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package driver

import "fmt"

// State is a stage of a vehicle's trip.
type State uint8

const (
	Created State = iota
	WantsEnter
	InTunnel
	WantsExit
	Done

	numStates
)

var States = [numStates]State{Created, WantsEnter, InTunnel, WantsExit, Done}

func (s State) String() string {
	switch s {
	case Created:
		return "created"
	case WantsEnter:
		return "wants to enter"
	case InTunnel:
		return "in tunnel"
	case WantsExit:
		return "wants to exit"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}
