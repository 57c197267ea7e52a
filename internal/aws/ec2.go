package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"go.uber.org/zap"

	"github.com/cloudpulse/cloudpulse/pkg/provider"
	"github.com/cloudpulse/cloudpulse/pkg/types"
)

// ListInstances returns every EC2 instance in the region, in every
// lifecycle state. The report needs stopped and pending instances as much
// as running ones, so no state filter is applied.
func (c *Client) ListInstances(ctx context.Context) ([]types.Instance, error) {
	paginator := ec2.NewDescribeInstancesPaginator(c.ec2, &ec2.DescribeInstancesInput{})

	var instances []types.Instance
	for paginator.HasMorePages() {
		var page *ec2.DescribeInstancesOutput
		err := c.withThrottleRetry(ctx, "DescribeInstances", func() error {
			var err error
			page, err = paginator.NextPage(ctx)
			return err
		})
		if err != nil {
			return nil, classify(fmt.Errorf("failed to describe instances: %w", err))
		}

		for _, reservation := range page.Reservations {
			for _, inst := range reservation.Instances {
				converted, err := toInstance(inst)
				if err != nil {
					return nil, err
				}
				instances = append(instances, converted)
			}
		}
	}

	c.logger.Debug("listed EC2 instances",
		zap.String("region", c.region),
		zap.Int("count", len(instances)))

	return instances, nil
}

// toInstance converts an EC2 API instance into the report record shape.
// Lifecycle states outside the known set pass through verbatim.
func toInstance(i ec2types.Instance) (types.Instance, error) {
	if i.InstanceId == nil || *i.InstanceId == "" {
		return types.Instance{}, fmt.Errorf("%w: instance record has no instance ID", provider.ErrMalformedRecord)
	}
	if i.State == nil || i.State.Name == "" {
		return types.Instance{}, fmt.Errorf("%w: instance %s has no state", provider.ErrMalformedRecord, *i.InstanceId)
	}

	inst := types.Instance{
		ID:    *i.InstanceId,
		Type:  string(i.InstanceType),
		State: types.InstanceState(i.State.Name),
		Name:  types.UnnamedInstance,
	}

	if i.PrivateIpAddress != nil {
		inst.PrivateIP = *i.PrivateIpAddress
	}

	if i.Placement != nil && i.Placement.AvailabilityZone != nil {
		inst.AZ = *i.Placement.AvailabilityZone
	}

	if i.LaunchTime != nil {
		launched := *i.LaunchTime
		inst.LaunchTime = &launched
	}

	// Extract the Name tag
	for _, tag := range i.Tags {
		if deref(tag.Key) == "Name" && deref(tag.Value) != "" {
			inst.Name = deref(tag.Value)
			break
		}
	}

	return inst, nil
}

// deref safely dereferences a string pointer
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
