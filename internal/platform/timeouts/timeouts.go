// Package timeouts defines shared timeout constants used across services.
package timeouts

import "time"

// StoreRequest caps a single admin call to the storefront API when no
// override is configured.
const StoreRequest = 5 * time.Second

// ScreenTTL is how long an idle list or edit screen stays addressable.
const ScreenTTL = 30 * time.Minute

// ScreenCleanup controls how often expired screens are purged.
const ScreenCleanup = 5 * time.Minute

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
