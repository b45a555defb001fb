// Package lifecycle holds shared settings for fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds each OnStart/OnStop hook.
const DefaultTimeout = 10 * time.Second
