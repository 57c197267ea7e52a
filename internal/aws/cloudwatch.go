package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"go.uber.org/zap"

	"github.com/cloudpulse/cloudpulse/pkg/provider"
	"github.com/cloudpulse/cloudpulse/pkg/types"
)

// ListAlarms returns every CloudWatch metric alarm in the region.
func (c *Client) ListAlarms(ctx context.Context) ([]types.Alarm, error) {
	paginator := cloudwatch.NewDescribeAlarmsPaginator(c.cw, &cloudwatch.DescribeAlarmsInput{})

	var alarms []types.Alarm
	for paginator.HasMorePages() {
		var page *cloudwatch.DescribeAlarmsOutput
		err := c.withThrottleRetry(ctx, "DescribeAlarms", func() error {
			var err error
			page, err = paginator.NextPage(ctx)
			return err
		})
		if err != nil {
			return nil, classify(fmt.Errorf("failed to describe alarms: %w", err))
		}

		for _, alarm := range page.MetricAlarms {
			converted, err := toAlarm(alarm)
			if err != nil {
				return nil, err
			}
			alarms = append(alarms, converted)
		}
	}

	c.logger.Debug("listed CloudWatch alarms",
		zap.String("region", c.region),
		zap.Int("count", len(alarms)))

	return alarms, nil
}

// toAlarm converts a CloudWatch metric alarm into the report record shape.
// Alarm states outside the known set pass through verbatim.
func toAlarm(a cwtypes.MetricAlarm) (types.Alarm, error) {
	if a.AlarmName == nil || *a.AlarmName == "" {
		return types.Alarm{}, fmt.Errorf("%w: alarm record has no name", provider.ErrMalformedRecord)
	}
	if a.StateValue == "" {
		return types.Alarm{}, fmt.Errorf("%w: alarm %s has no state", provider.ErrMalformedRecord, *a.AlarmName)
	}

	alarm := types.Alarm{
		Name:        *a.AlarmName,
		State:       types.AlarmState(a.StateValue),
		Metric:      deref(a.MetricName),
		Description: types.NoAlarmDescription,
	}

	if a.AlarmDescription != nil && *a.AlarmDescription != "" {
		alarm.Description = *a.AlarmDescription
	}

	return alarm, nil
}
