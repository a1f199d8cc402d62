// Package lifecycle holds process-wide lifecycle constants shared by deliveries and infra hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every fx start/stop hook.
const DefaultTimeout = 10 * time.Second
