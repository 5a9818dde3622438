package msk

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kafka"

	"github.com/grafana/cloudtags/pkg/aws/common"
	kafkaclient "github.com/grafana/cloudtags/pkg/aws/services/kafka"
	"github.com/grafana/cloudtags/pkg/tags"
)

const (
	subsystem = "msk"
	kind      = "MSK cluster"
)

// Lister prints the tags of every MSK cluster in a region.
type Lister struct {
	client func(ctx context.Context, region string) (kafkaclient.Kafka, error)
	logger *slog.Logger
}

type Config struct {
	Logger *slog.Logger
	Client func(ctx context.Context, region string) (kafkaclient.Kafka, error)
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
		return fmt.Errorf("creating kafka client: %w", err)
	}

	out, err := c.ListClusters(ctx, &kafka.ListClustersInput{})
	if err != nil {
		return fmt.Errorf("listing clusters: %w", err)
	}

	for _, cluster := range out.ClusterInfoList {
		arn := aws.ToString(cluster.ClusterArn)
		resp, err := c.ListTagsForResource(ctx, &kafka.ListTagsForResourceInput{ResourceArn: cluster.ClusterArn})
		if err != nil {
			return fmt.Errorf("listing tags for cluster %s: %w", arn, err)
		}
		if err := common.PrintTags(w, kind, arn, region, tags.FromMap(resp.Tags)); err != nil {
			return err
		}
	}
	return nil
}
