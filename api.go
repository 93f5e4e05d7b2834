// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tunnel

import "go.uber.org/zap"

type Logger interface {
	// Log that a fatal error has occurred. The program should likely exit soon
	// after this is called
	Fatal(msg string, fields ...zap.Field)
	// Log that an error has occurred. The program should be able to recover
	// from this error
	Error(msg string, fields ...zap.Field)
	// Log that an event has occurred that may indicate a future error or
	// vulnerability
	Warn(msg string, fields ...zap.Field)
	// Log an event that may be useful for a user to see to measure the progress
	// of the simulation
	Info(msg string, fields ...zap.Field)
	// Log an event that may be useful for understanding the order in which
	// vehicles are admitted
	Trace(msg string, fields ...zap.Field)
	// Log an event that may be useful for a programmer to see when debuging the
	// admission policy
	Debug(msg string, fields ...zap.Field)
	// Log extremely detailed events that can be useful for inspecting every
	// aspect of the program
	Verbo(msg string, fields ...zap.Field)
}

// Monitor controls admission to a single-lane tunnel that may be traversed in
// both directions, but only in one direction at a time.
type Monitor interface {
	// Enter blocks until a vehicle heading in the given direction may drive
	// into the tunnel, and then records it as inside.
	Enter(dir Direction)

	// Exit records that a vehicle heading in the given direction has left the
	// tunnel. Every call must be paired with a preceding Enter in the same
	// direction. Depending on the policy, Exit may block.
	Exit(dir Direction)

	// Occupancy returns a snapshot of the monitor's counters.
	Occupancy() Occupancy
}
