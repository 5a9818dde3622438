package rds

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	rdsTypes "github.com/aws/aws-sdk-go-v2/service/rds/types"

	"github.com/grafana/cloudtags/pkg/aws/common"
	rdsclient "github.com/grafana/cloudtags/pkg/aws/services/rds"
	"github.com/grafana/cloudtags/pkg/tags"
)

const (
	subsystem = "rds"
	kind      = "RDS instance"
)

// Lister prints the tags of every RDS DB instance in a region.
type Lister struct {
	client func(ctx context.Context, region string) (rdsclient.RDS, error)
	logger *slog.Logger
}

type Config struct {
	Logger *slog.Logger
	Client func(ctx context.Context, region string) (rdsclient.RDS, error)
}

// New creates an rds lister
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
		return fmt.Errorf("creating rds client: %w", err)
	}

	out, err := c.DescribeDBInstances(ctx, &rds.DescribeDBInstancesInput{})
	if err != nil {
		return fmt.Errorf("describing db instances: %w", err)
	}
	if out == nil || len(out.DBInstances) == 0 {
		l.logger.LogAttrs(ctx, slog.LevelDebug, "no db instances found",
			slog.String("region", region),
		)
		return nil
	}

	for _, instance := range out.DBInstances {
		arn := aws.ToString(instance.DBInstanceArn)
		resp, err := c.ListTagsForResource(ctx, &rds.ListTagsForResourceInput{ResourceName: instance.DBInstanceArn})
		if err != nil {
			return fmt.Errorf("listing tags for db instance %s: %w", arn, err)
		}
		if err := common.PrintTags(w, kind, arn, region, fromTags(resp.TagList)); err != nil {
			return err
		}
	}
	return nil
}

func fromTags(in []rdsTypes.Tag) tags.List {
	out := make(tags.List, 0, len(in))
	for _, t := range in {
		out = append(out, tags.Tag{Key: aws.ToString(t.Key), Value: aws.ToString(t.Value)})
	}
	return out
}
