// Package lifecycle holds process lifecycle constants shared between the
// delivery layers and the infrastructure layer.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown steps such as the
// initial store ping and the HTTP server drain.
const DefaultTimeout = 10 * time.Second
