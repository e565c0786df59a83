package service

import "errors"

// Sentinel errors for the delivery pipeline. The orchestrator switches on
// these to pick the user-facing message; the wrapped detail stays in logs.
var (
	ErrNotConfigured = errors.New("webhook destination not configured")
	ErrTimeout       = errors.New("webhook request timed out")
	ErrDelivery      = errors.New("webhook delivery failed")
)
