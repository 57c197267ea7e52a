// Package aws fetches instance and alarm records from the AWS APIs and
// normalizes them into the report's record shapes. All calls are read-only.
package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"go.uber.org/zap"

	"github.com/cloudpulse/cloudpulse/pkg/provider"
)

// Client wraps the AWS SDK clients one report run needs.
type Client struct {
	ec2 *ec2.Client
	cw  *cloudwatch.Client
	sts *sts.Client

	logger  *zap.Logger
	profile string
	region  string
}

var _ provider.Fetcher = (*Client)(nil)

// ClientOption allows customizing the AWS Client
type ClientOption func(*Client)

// WithProfile sets the AWS shared-config profile for the client
func WithProfile(profile string) ClientOption {
	return func(c *Client) {
		c.profile = profile
	}
}

// WithRegion sets the AWS region for the client
func WithRegion(region string) ClientOption {
	return func(c *Client) {
		c.region = region
	}
}

// WithLogger sets the diagnostic logger. The default is a no-op logger.
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new AWS Client with the given options
func NewClient(ctx context.Context, opts ...ClientOption) (*Client, error) {
	c := &Client{
		logger: zap.NewNop(),
	}

	// Apply options
	for _, opt := range opts {
		opt(c)
	}

	// Build config options
	var configOpts []func(*config.LoadOptions) error

	if c.profile != "" {
		configOpts = append(configOpts, config.WithSharedConfigProfile(c.profile))
	}

	if c.region != "" {
		configOpts = append(configOpts, config.WithRegion(c.region))
	}

	// Load AWS config
	cfg, err := config.LoadDefaultConfig(ctx, configOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS SDK config: %w", err)
	}

	c.ec2 = ec2.NewFromConfig(cfg)
	c.cw = cloudwatch.NewFromConfig(cfg)
	c.sts = sts.NewFromConfig(cfg)

	return c, nil
}

// Region returns the region the client was built for.
func (c *Client) Region() string {
	return c.region
}
