package s3

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3Types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/grafana/cloudtags/pkg/aws/common"
	s3client "github.com/grafana/cloudtags/pkg/aws/services/s3"
	"github.com/grafana/cloudtags/pkg/tags"
)

const (
	subsystem = "s3"
	kind      = "S3 bucket"
)

// Lister prints the tags of every S3 bucket visible from a region.
//
// GetBucketTagging fails with NoSuchTagSet for buckets without tags. That
// error is returned like any other and ends the run.
type Lister struct {
	client func(ctx context.Context, region string) (s3client.S3, error)
	logger *slog.Logger
}

type Config struct {
	Logger *slog.Logger
	Client func(ctx context.Context, region string) (s3client.S3, error)
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
		return fmt.Errorf("creating s3 client: %w", err)
	}

	out, err := c.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return fmt.Errorf("listing buckets: %w", err)
	}
	l.logger.LogAttrs(ctx, slog.LevelDebug, "listed buckets",
		slog.String("region", region),
		slog.Int("count", len(out.Buckets)),
	)

	for _, bucket := range out.Buckets {
		name := aws.ToString(bucket.Name)
		resp, err := c.GetBucketTagging(ctx, &s3.GetBucketTaggingInput{Bucket: bucket.Name})
		if err != nil {
			return fmt.Errorf("getting tags for bucket %s: %w", name, err)
		}
		if err := common.PrintTags(w, kind, name, region, fromTags(resp.TagSet)); err != nil {
			return err
		}
	}
	return nil
}

func fromTags(in []s3Types.Tag) tags.List {
	out := make(tags.List, 0, len(in))
	for _, t := range in {
		out = append(out, tags.Tag{Key: aws.ToString(t.Key), Value: aws.ToString(t.Value)})
	}
	return out
}
