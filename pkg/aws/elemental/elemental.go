package elemental

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/medialive"

	"github.com/grafana/cloudtags/pkg/aws/common"
	medialiveclient "github.com/grafana/cloudtags/pkg/aws/services/medialive"
	"github.com/grafana/cloudtags/pkg/tags"
)

const (
	subsystem = "elemental"
	kind      = "Elemental Live channel"
)

// Lister prints the tags of every Elemental MediaLive channel in a region.
type Lister struct {
	client func(ctx context.Context, region string) (medialiveclient.MediaLive, error)
	logger *slog.Logger
}

type Config struct {
	Logger *slog.Logger
	Client func(ctx context.Context, region string) (medialiveclient.MediaLive, error)
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
		return fmt.Errorf("creating medialive client: %w", err)
	}

	out, err := c.ListChannels(ctx, &medialive.ListChannelsInput{})
	if err != nil {
		return fmt.Errorf("listing channels: %w", err)
	}

	for _, channel := range out.Channels {
		arn := aws.ToString(channel.Arn)
		resp, err := c.ListTagsForResource(ctx, &medialive.ListTagsForResourceInput{ResourceArn: channel.Arn})
		if err != nil {
			return fmt.Errorf("listing tags for channel %s: %w", arn, err)
		}
		if err := common.PrintTags(w, kind, arn, region, tags.FromMap(resp.Tags)); err != nil {
			return err
		}
	}
	return nil
}
