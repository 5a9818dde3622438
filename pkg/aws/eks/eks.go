package eks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eks"

	"github.com/grafana/cloudtags/pkg/aws/common"
	eksclient "github.com/grafana/cloudtags/pkg/aws/services/eks"
	"github.com/grafana/cloudtags/pkg/tags"
)

const (
	subsystem = "eks"
	kind      = "Elastic Container Service for Kubernetes (EKS) cluster"
)

var ErrClusterNotFound = errors.New("cluster not found")

// Lister prints the tags of every EKS cluster in a region. ListClusters only
// returns names, so each cluster is described to resolve its ARN before the
// tag lookup.
type Lister struct {
	client func(ctx context.Context, region string) (eksclient.EKS, error)
	logger *slog.Logger
}

type Config struct {
	Logger *slog.Logger
	Client func(ctx context.Context, region string) (eksclient.EKS, error)
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
		return fmt.Errorf("creating eks client: %w", err)
	}

	out, err := c.ListClusters(ctx, &eks.ListClustersInput{})
	if err != nil {
		return fmt.Errorf("listing clusters: %w", err)
	}

	for _, name := range out.Clusters {
		cluster, err := c.DescribeCluster(ctx, &eks.DescribeClusterInput{Name: aws.String(name)})
		if err != nil {
			return fmt.Errorf("describing cluster %s: %w", name, err)
		}
		if cluster.Cluster == nil {
			return fmt.Errorf("describing cluster %s: %w", name, ErrClusterNotFound)
		}

		l.logger.LogAttrs(ctx, slog.LevelDebug, "resolved cluster",
			slog.String("cluster", name),
			slog.String("arn", aws.ToString(cluster.Cluster.Arn)),
		)

		resp, err := c.ListTagsForResource(ctx, &eks.ListTagsForResourceInput{ResourceArn: cluster.Cluster.Arn})
		if err != nil {
			return fmt.Errorf("listing tags for cluster %s: %w", name, err)
		}
		if err := common.PrintTags(w, kind, name, region, tags.FromMap(resp.Tags)); err != nil {
			return err
		}
	}
	return nil
}
