package ec2

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2Types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/grafana/cloudtags/pkg/aws/common"
	ec2client "github.com/grafana/cloudtags/pkg/aws/services/ec2"
	"github.com/grafana/cloudtags/pkg/tags"
)

const (
	subsystem = "ec2"
	kind      = "EC2 instance"
)

// Lister prints the tags of every EC2 instance in a region. Instance tags
// come back with DescribeInstances, so there is no separate tag call.
type Lister struct {
	client func(ctx context.Context, region string) (ec2client.EC2, error)
	logger *slog.Logger
}

type Config struct {
	Logger *slog.Logger
	Client func(ctx context.Context, region string) (ec2client.EC2, error)
}

// New creates an ec2 lister
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
		return fmt.Errorf("creating ec2 client: %w", err)
	}

	out, err := c.DescribeInstances(ctx, &ec2.DescribeInstancesInput{})
	if err != nil {
		return fmt.Errorf("describing instances: %w", err)
	}

	for _, reservation := range out.Reservations {
		for _, instance := range reservation.Instances {
			if err := common.PrintTags(w, kind, aws.ToString(instance.InstanceId), region, instanceTags(instance)); err != nil {
				return err
			}
		}
	}
	return nil
}

// instanceTags renders tags as a mapping, falling back to an empty list for
// instances that carry no tags at all.
func instanceTags(instance ec2Types.Instance) fmt.Stringer {
	if len(instance.Tags) == 0 {
		return tags.List{}
	}
	out := make(tags.Dict, 0, len(instance.Tags))
	for _, t := range instance.Tags {
		out = append(out, tags.Tag{Key: aws.ToString(t.Key), Value: aws.ToString(t.Value)})
	}
	return out
}
