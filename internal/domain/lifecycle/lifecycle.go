// Package lifecycle holds shared limits for fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single start or stop hook (pings, closes, drains).
const DefaultTimeout = 10 * time.Second
