package domain

import "errors"

// Guard errors. ErrServerMisconfigured is deliberately a server-side (5xx)
// condition: a missing admin secret is a deployment fault, not a client one.
var ErrUnauthorized = errors.New("unauthorized")
var ErrServerMisconfigured = errors.New("admin token not configured")
