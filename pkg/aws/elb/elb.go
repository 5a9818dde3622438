package elb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	elbTypes "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"

	"github.com/grafana/cloudtags/pkg/aws/common"
	elbv2client "github.com/grafana/cloudtags/pkg/aws/services/elbv2"
	"github.com/grafana/cloudtags/pkg/tags"
)

const (
	subsystem = "elb"
	kind      = "Elastic Load Balancer"
)

var ErrNoTagDescription = errors.New("no tag description returned")

// Lister prints the tags of every ELBv2 load balancer in a region.
type Lister struct {
	client func(ctx context.Context, region string) (elbv2client.ELBv2, error)
	logger *slog.Logger
}

type Config struct {
	Logger *slog.Logger
	Client func(ctx context.Context, region string) (elbv2client.ELBv2, error)
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
		return fmt.Errorf("creating elbv2 client: %w", err)
	}

	out, err := c.DescribeLoadBalancers(ctx, &elasticloadbalancingv2.DescribeLoadBalancersInput{})
	if err != nil {
		return fmt.Errorf("describing load balancers: %w", err)
	}

	for _, lb := range out.LoadBalancers {
		arn := aws.ToString(lb.LoadBalancerArn)
		// DescribeTags is batched by ARN; one ARN in means one description out.
		resp, err := c.DescribeTags(ctx, &elasticloadbalancingv2.DescribeTagsInput{ResourceArns: []string{arn}})
		if err != nil {
			return fmt.Errorf("describing tags for load balancer %s: %w", arn, err)
		}
		if len(resp.TagDescriptions) == 0 {
			return fmt.Errorf("load balancer %s: %w", arn, ErrNoTagDescription)
		}
		if err := common.PrintTags(w, kind, arn, region, fromTags(resp.TagDescriptions[0].Tags)); err != nil {
			return err
		}
	}
	return nil
}

func fromTags(in []elbTypes.Tag) tags.List {
	out := make(tags.List, 0, len(in))
	for _, t := range in {
		out = append(out, tags.Tag{Key: aws.ToString(t.Key), Value: aws.ToString(t.Value)})
	}
	return out
}
