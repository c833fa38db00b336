package ai

import "errors"

// ErrUnavailable means the provider is not configured; it is not transient
// and must not be retried.
var ErrUnavailable = errors.New("ai provider unavailable")
