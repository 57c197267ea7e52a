package aws

import (
	"context"

	"github.com/avast/retry-go/v5"
	"go.uber.org/zap"
)

// throttleAttempts bounds how often a throttled call is retried before the
// failure surfaces to the caller.
const throttleAttempts = 3

// withThrottleRetry runs fn, retrying with exponential backoff while the
// failure is throttling. Any other failure returns immediately.
func (c *Client) withThrottleRetry(ctx context.Context, op string, fn func() error) error {
	r := retry.New(
		retry.Context(ctx),
		retry.Attempts(throttleAttempts),
		retry.RetryIf(isThrottle),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(attempt uint, err error) {
			c.logger.Warn("request throttled, backing off",
				zap.String("operation", op),
				zap.Uint("attempt", attempt+1),
				zap.Error(err))
		}),
	)

	return r.Do(fn)
}
