// Package pkg provides shared utilities for the softscsi disk emulator.
//
// This package contains common functionality used by the device, storage,
// configuration and command-line packages:
//
//   - Structured logging via Go's standard [log/slog] package
//   - Sentinel errors for device state and command failures
//   - The [IOError] type returned when a backing store cannot be opened
//   - Component identifiers for log filtering
//
// # Logging
//
// The logging subsystem wraps [log/slog] and tags every record with the
// emitting component:
//
//	pkg.SetLogLevel(slog.LevelDebug)
//	pkg.LogInfo(pkg.ComponentDevice, "device opened", "blocks", 2048)
//
// # Errors
//
// Open failures carry a reason that can be matched with [errors.Is]:
//
//	if errors.Is(err, pkg.ErrMisalignedSize) {
//	    // image size is not a multiple of 512
//	}
package pkg
