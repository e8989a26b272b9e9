// Package logging provides structured logging for the soft-AP firmware.
//
// This package wraps a process-global zap logger with convenience functions
// for the log lines the device emits at boot milestones and on station
// events. Subsystems obtain named child loggers through Named, and the boot
// sequence may raise the minimum level of noisy subsystems with
// SetSubsystemLevel.
//
// # Log Levels
//
//   - Debug: event payloads, driver bookkeeping
//   - Info: boot milestones, station connect/disconnect, HTTP requests
//   - Warn: degraded subsystems (HTTP server or mDNS not available)
//   - Error: fatal boot failures
//
// # Configuration
//
// Initialize logging once at process entry:
//
//	if err := logging.Initialize(""); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// An empty level consults SOFTAP_LOG_LEVEL and falls back to "info".
//
// # Subsystem Levels
//
// Subsystem levels are written once during boot, before the event and HTTP
// contexts start, and only read afterwards.
//
//	logging.SetSubsystemLevel("wifi", zapcore.WarnLevel)
//	log := logging.Named("wifi") // info entries are now dropped
package logging
