package cloudfront

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	cloudfrontTypes "github.com/aws/aws-sdk-go-v2/service/cloudfront/types"

	"github.com/grafana/cloudtags/pkg/aws/common"
	cloudfrontclient "github.com/grafana/cloudtags/pkg/aws/services/cloudfront"
	"github.com/grafana/cloudtags/pkg/tags"
)

const (
	subsystem = "cloudfront"
	kind      = "CloudFront distribution"
)

// Lister prints the tags of every CloudFront distribution. CloudFront is a
// global service; the region only scopes the client and the output line.
type Lister struct {
	client func(ctx context.Context, region string) (cloudfrontclient.CloudFront, error)
	logger *slog.Logger
}

type Config struct {
	Logger *slog.Logger
	Client func(ctx context.Context, region string) (cloudfrontclient.CloudFront, error)
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
		return fmt.Errorf("creating cloudfront client: %w", err)
	}

	out, err := c.ListDistributions(ctx, &cloudfront.ListDistributionsInput{})
	if err != nil {
		return fmt.Errorf("listing distributions: %w", err)
	}
	if out.DistributionList == nil || len(out.DistributionList.Items) == 0 {
		l.logger.LogAttrs(ctx, slog.LevelDebug, "no distributions found",
			slog.String("region", region),
		)
		return nil
	}

	for _, distribution := range out.DistributionList.Items {
		arn := aws.ToString(distribution.ARN)
		resp, err := c.ListTagsForResource(ctx, &cloudfront.ListTagsForResourceInput{Resource: distribution.ARN})
		if err != nil {
			return fmt.Errorf("listing tags for distribution %s: %w", arn, err)
		}
		if err := common.PrintTags(w, kind, arn, region, fromTags(resp.Tags)); err != nil {
			return err
		}
	}
	return nil
}

// fromTags keeps the Items envelope CloudFront returns tags in.
func fromTags(in *cloudfrontTypes.Tags) tags.Items {
	if in == nil {
		return tags.Items{}
	}
	out := make(tags.Items, 0, len(in.Items))
	for _, t := range in.Items {
		out = append(out, tags.Tag{Key: aws.ToString(t.Key), Value: aws.ToString(t.Value)})
	}
	return out
}
