// Package lifecycle holds shared lifecycle constants for graceful startup
// and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown and startup probes.
const DefaultTimeout = 30 * time.Second
