// Package lifecycle holds shared constants for component startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds startup probes and graceful shutdown of managed
// components such as the HTTP server and database connections.
const DefaultTimeout = 10 * time.Second
