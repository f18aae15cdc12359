package monitor

import (
	"context"
)

// Monitor defines the interface for background chain monitors.
// Monitors poll the chain on an interval and write what they find to the store.
type Monitor interface {
	// Start launches the polling loop and returns immediately.
	// Calling Start on a running monitor is a no-op.
	Start(ctx context.Context) error

	// Stop cancels the polling loop and waits for the in-flight cycle,
	// bounded by ctx
	Stop(ctx context.Context) error

	// RunOnce executes a single cycle. It returns false without doing
	// anything when another cycle is still executing.
	RunOnce(ctx context.Context) bool

	// Running reports whether the polling loop is active
	Running() bool

	// Name returns the monitor's name for logging and identification
	Name() string
}
