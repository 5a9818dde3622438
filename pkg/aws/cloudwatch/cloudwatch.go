package cloudwatch

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cloudwatchTypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"

	"github.com/grafana/cloudtags/pkg/aws/common"
	cloudwatchclient "github.com/grafana/cloudtags/pkg/aws/services/cloudwatch"
	"github.com/grafana/cloudtags/pkg/tags"
)

const (
	subsystem = "cloudwatch"
	kind      = "CloudWatch alarm"
)

// Lister prints the tags of every CloudWatch metric alarm in a region. Lines
// are keyed by alarm name, lookups by alarm ARN.
type Lister struct {
	client func(ctx context.Context, region string) (cloudwatchclient.CloudWatch, error)
	logger *slog.Logger
}

type Config struct {
	Logger *slog.Logger
	Client func(ctx context.Context, region string) (cloudwatchclient.CloudWatch, error)
}

func New(config *Config) *Lister {
	return &Lister{
		client: config.Client,
		logger: config.Logger.With("logger", subsystem),
	}
}

func (l *Lister) Name() string {
	return subsystem
}

func (l *Lister) ListTags(ctx context.Context, region string, w io.Writer) error {
	c, err := l.client(ctx, region)
	if err != nil {
		return fmt.Errorf("creating cloudwatch client: %w", err)
	}

	out, err := c.DescribeAlarms(ctx, &cloudwatch.DescribeAlarmsInput{})
	if err != nil {
		return fmt.Errorf("describing alarms: %w", err)
	}

	for _, alarm := range out.MetricAlarms {
		name := aws.ToString(alarm.AlarmName)
		resp, err := c.ListTagsForResource(ctx, &cloudwatch.ListTagsForResourceInput{ResourceARN: alarm.AlarmArn})
		if err != nil {
			return fmt.Errorf("listing tags for alarm %s: %w", name, err)
		}
		if err := common.PrintTags(w, kind, name, region, fromTags(resp.Tags)); err != nil {
			return err
		}
	}
	return nil
}

func fromTags(in []cloudwatchTypes.Tag) tags.List {
	out := make(tags.List, 0, len(in))
	for _, t := range in {
		out = append(out, tags.Tag{Key: aws.ToString(t.Key), Value: aws.ToString(t.Value)})
	}
	return out
}
