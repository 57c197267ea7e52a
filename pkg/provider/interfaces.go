package provider

import (
	"context"
	"errors"

	"github.com/cloudpulse/cloudpulse/pkg/types"
)

// Common errors
var (
	// ErrAuthFailed marks failures caused by missing, invalid, or expired
	// credentials. Callers degrade the affected resource type to an empty
	// list and show a remediation hint instead of aborting the run.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrThrottled marks throttling-class provider failures. These are the
	// only failures worth retrying.
	ErrThrottled = errors.New("request throttled")

	// ErrMalformedRecord marks a provider record missing a required field.
	ErrMalformedRecord = errors.New("malformed provider record")
)

// Fetcher retrieves the resource listings one report run needs. All calls
// must be read-only against the provider account and idempotent; the region
// is fixed when the fetcher is built.
type Fetcher interface {
	// ListInstances returns every instance in the region, in every
	// lifecycle state.
	ListInstances(ctx context.Context) ([]types.Instance, error)

	// ListAlarms returns every metric alarm in the region.
	ListAlarms(ctx context.Context) ([]types.Alarm, error)
}
