// Package ratelimit implements per-client sliding-window request limiting.
// The production backend keeps windows in Redis so limits hold across
// replicas; the in-memory backend serves single-process deployments and
// tests.
package ratelimit

import "context"

// Limiter decides whether one more request from the given key is allowed
// inside the configured window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
