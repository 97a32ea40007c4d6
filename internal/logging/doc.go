// Package logging provides structured logging for quotedesk.
//
// This package wraps a zap logger with convenience functions for the events
// the editor and its server care about. Logging is silent unless a level is
// passed on the command line or QUOTEDESK_LOG_LEVEL is set.
//
// # Log Levels
//
//   - Debug: session transitions, wire messages
//   - Info: recalculations, rejected input, connections
//   - Warn: dropped connections, unreadable config
//   - Error: pricing faults, startup failures
//
// # Specialized Logging
//
//	logging.LogTransition("modeToggle", "dualChain", "", "dualChain", "dual")
//	logging.LogRecalculation("drive", 415)
//	logging.LogRejected("dual_adjacency", msg)
//	logging.LogConnection(remoteAddr, "websocket_upgraded")
//
// # Configuration
//
//	if err := logging.InitializeToFile("debug", "/tmp/quotedesk.log"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use.
package logging
