package aws

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aws/smithy-go"

	"github.com/cloudpulse/cloudpulse/pkg/provider"
)

// authErrorCodes are API error codes that mean the caller's credentials are
// missing, invalid, or expired.
var authErrorCodes = map[string]bool{
	"AccessDenied":                true,
	"AccessDeniedException":       true,
	"AuthFailure":                 true,
	"ExpiredToken":                true,
	"ExpiredTokenException":       true,
	"InvalidClientTokenId":        true,
	"MissingAuthenticationToken":  true,
	"RequestExpired":              true,
	"SignatureDoesNotMatch":       true,
	"UnauthorizedOperation":       true,
	"UnrecognizedClientException": true,
}

// throttleErrorCodes are API error codes the services return when the
// account's request rate limit is hit.
var throttleErrorCodes = map[string]bool{
	"RequestLimitExceeded":      true,
	"RequestThrottled":          true,
	"RequestThrottledException": true,
	"Throttling":                true,
	"ThrottlingException":       true,
	"TooManyRequestsException":  true,
}

// classify tags err with the provider error category the report pipeline
// reacts to. Failures that fit no category pass through unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch {
		case authErrorCodes[apiErr.ErrorCode()]:
			return fmt.Errorf("%w: %w", provider.ErrAuthFailed, err)
		case throttleErrorCodes[apiErr.ErrorCode()]:
			return fmt.Errorf("%w: %w", provider.ErrThrottled, err)
		}
		return err
	}

	// Credential resolution failures never reach the API, so there is no
	// error code to match on.
	if strings.Contains(strings.ToLower(err.Error()), "credential") {
		return fmt.Errorf("%w: %w", provider.ErrAuthFailed, err)
	}

	return err
}

// isThrottle reports whether err is a throttling failure worth retrying.
func isThrottle(err error) bool {
	if errors.Is(err, provider.ErrThrottled) {
		return true
	}

	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && throttleErrorCodes[apiErr.ErrorCode()]
}
