package aws

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"

	"github.com/cloudpulse/cloudpulse/pkg/provider"
)

// apiError builds an error the way SDK operations surface them, with the
// API error buried in an operation wrapper.
func apiError(code, message string) error {
	return fmt.Errorf("operation error EC2: DescribeInstances, %w", &smithy.GenericAPIError{
		Code:    code,
		Message: message,
	})
}

func TestClassify_AuthCodes(t *testing.T) {
	codes := []string{
		"AuthFailure",
		"UnauthorizedOperation",
		"AccessDenied",
		"ExpiredToken",
		"InvalidClientTokenId",
	}

	for _, code := range codes {
		t.Run(code, func(t *testing.T) {
			err := classify(apiError(code, "denied"))

			assert.ErrorIs(t, err, provider.ErrAuthFailed)
			assert.NotErrorIs(t, err, provider.ErrThrottled)
		})
	}
}

func TestClassify_ThrottleCodes(t *testing.T) {
	codes := []string{
		"Throttling",
		"RequestLimitExceeded",
		"TooManyRequestsException",
	}

	for _, code := range codes {
		t.Run(code, func(t *testing.T) {
			err := classify(apiError(code, "slow down"))

			assert.ErrorIs(t, err, provider.ErrThrottled)
			assert.NotErrorIs(t, err, provider.ErrAuthFailed)
		})
	}
}

func TestClassify_KeepsOriginalChain(t *testing.T) {
	original := apiError("AuthFailure", "denied")

	err := classify(original)

	var apiErr smithy.APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "AuthFailure", apiErr.ErrorCode())
}

func TestClassify_UnknownCodePassesThrough(t *testing.T) {
	original := apiError("InvalidParameterValue", "bad filter")

	err := classify(original)

	assert.Equal(t, original, err)
	assert.NotErrorIs(t, err, provider.ErrAuthFailed)
	assert.NotErrorIs(t, err, provider.ErrThrottled)
}

func TestClassify_CredentialResolutionFailure(t *testing.T) {
	err := classify(errors.New("failed to retrieve credentials, no EC2 IMDS role found"))

	assert.ErrorIs(t, err, provider.ErrAuthFailed)
}

func TestClassify_PlainErrorPassesThrough(t *testing.T) {
	original := errors.New("connection reset by peer")

	err := classify(original)

	assert.Equal(t, original, err)
}

func TestClassify_Nil(t *testing.T) {
	assert.NoError(t, classify(nil))
}

func TestIsThrottle(t *testing.T) {
	assert.True(t, isThrottle(apiError("ThrottlingException", "slow down")))
	assert.True(t, isThrottle(classify(apiError("Throttling", "slow down"))))
	assert.False(t, isThrottle(apiError("AuthFailure", "denied")))
	assert.False(t, isThrottle(errors.New("connection reset by peer")))
}
