package vpc

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2Types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/grafana/cloudtags/pkg/aws/common"
	vpcclient "github.com/grafana/cloudtags/pkg/aws/services/vpc"
	"github.com/grafana/cloudtags/pkg/tags"
)

const (
	subsystem = "vpc"
	kind      = "VPC"

	resourceIDFilter = "resource-id"
)

// Lister prints the tags of every VPC in a region. Tags are looked up with
// the generic EC2 DescribeTags call filtered on the VPC ID.
type Lister struct {
	client func(ctx context.Context, region string) (vpcclient.VPC, error)
	logger *slog.Logger
}

type Config struct {
	Logger *slog.Logger
	Client func(ctx context.Context, region string) (vpcclient.VPC, error)
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
		return fmt.Errorf("creating ec2 client: %w", err)
	}

	out, err := c.DescribeVpcs(ctx, &ec2.DescribeVpcsInput{})
	if err != nil {
		return fmt.Errorf("describing vpcs: %w", err)
	}

	for _, vpc := range out.Vpcs {
		id := aws.ToString(vpc.VpcId)
		resp, err := c.DescribeTags(ctx, &ec2.DescribeTagsInput{
			Filters: []ec2Types.Filter{
				{
					Name:   aws.String(resourceIDFilter),
					Values: []string{id},
				},
			},
		})
		if err != nil {
			return fmt.Errorf("describing tags for vpc %s: %w", id, err)
		}
		if err := common.PrintTags(w, kind, id, region, fromTagDescriptions(resp.Tags)); err != nil {
			return err
		}
	}
	return nil
}

// fromTagDescriptions keeps every field of the DescribeTags records, not just
// the key and value.
func fromTagDescriptions(in []ec2Types.TagDescription) tags.Records {
	out := make(tags.Records, 0, len(in))
	for _, t := range in {
		out = append(out, tags.Dict{
			{Key: "Key", Value: aws.ToString(t.Key)},
			{Key: "ResourceId", Value: aws.ToString(t.ResourceId)},
			{Key: "ResourceType", Value: string(t.ResourceType)},
			{Key: "Value", Value: aws.ToString(t.Value)},
		})
	}
	return out
}
