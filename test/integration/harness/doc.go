// Package harness provides utilities for integration testing the gitnag CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - GITNAG_HOME: Isolated per test (temp directory)
//   - GITNAG_DEBUG: Disabled to reduce noise
//   - GITNAG_EDITOR: Set to a no-op command
package harness
