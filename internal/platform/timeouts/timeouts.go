// Package timeouts defines shared timeout constants used by the runtime,
// the host client, and the example commands.
package timeouts

import "time"

// GRPCDial caps the wait time when dialing a plugin socket.
const GRPCDial = 2 * time.Second

// GRPCRequest caps the time allowed for a single unary call made by capctl.
const GRPCRequest = 5 * time.Second

// Shutdown limits how long the runtime waits for in-flight unary calls to
// finish before the gRPC server is stopped forcefully.
const Shutdown = 5 * time.Second

// Telemetry limits how long the OTel provider may spend flushing spans.
const Telemetry = 5 * time.Second
