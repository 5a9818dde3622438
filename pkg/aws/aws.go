package aws

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/grafana/cloudtags/pkg/aws/client"
	"github.com/grafana/cloudtags/pkg/aws/cloudfront"
	"github.com/grafana/cloudtags/pkg/aws/cloudwatch"
	"github.com/grafana/cloudtags/pkg/aws/ec2"
	"github.com/grafana/cloudtags/pkg/aws/eks"
	"github.com/grafana/cloudtags/pkg/aws/elb"
	"github.com/grafana/cloudtags/pkg/aws/elemental"
	"github.com/grafana/cloudtags/pkg/aws/msk"
	"github.com/grafana/cloudtags/pkg/aws/rds"
	"github.com/grafana/cloudtags/pkg/aws/s3"
	"github.com/grafana/cloudtags/pkg/aws/vpc"
	"github.com/grafana/cloudtags/pkg/gatherer"
	"github.com/grafana/cloudtags/pkg/provider"
)

var ErrUnsupportedService = errors.New("unsupported service")

// UnsupportedServiceError is returned by Run for a service name that has no
// registered lister.
type UnsupportedServiceError struct {
	Service string
}

func (e *UnsupportedServiceError) Error() string {
	return fmt.Sprintf("Invalid service name: %s. Supported services: %s", e.Service, strings.Join(SupportedServices, ", "))
}

func (e *UnsupportedServiceError) Unwrap() error {
	return ErrUnsupportedService
}

type Config struct {
	Logger   *slog.Logger
	Output   io.Writer
	Factory  *client.Factory
	Gatherer *gatherer.Gatherer
}

type AWS struct {
	listers  map[string]provider.Lister
	gatherer *gatherer.Gatherer
	output   io.Writer
	logger   *slog.Logger
}

func New(config *Config) *AWS {
	logger := config.Logger.With("provider", "aws")
	return newAWS(config, logger, Listers(logger, config.Factory))
}

func newAWS(config *Config, logger *slog.Logger, listers map[string]provider.Lister) *AWS {
	g := config.Gatherer
	if g == nil {
		g = gatherer.New(logger)
	}
	return &AWS{
		listers:  listers,
		gatherer: g,
		output:   config.Output,
		logger:   logger,
	}
}

// Listers returns the registry of every supported service, keyed by its
// lower-case name. Clients are created lazily per region by f.
func Listers(logger *slog.Logger, f *client.Factory) map[string]provider.Lister {
	return map[string]provider.Lister{
		ServiceRDS:        rds.New(&rds.Config{Logger: logger, Client: f.RDS}),
		ServiceEC2:        ec2.New(&ec2.Config{Logger: logger, Client: f.EC2}),
		ServiceS3:         s3.New(&s3.Config{Logger: logger, Client: f.S3}),
		ServiceMSK:        msk.New(&msk.Config{Logger: logger, Client: f.Kafka}),
		ServiceElemental:  elemental.New(&elemental.Config{Logger: logger, Client: f.MediaLive}),
		ServiceVPC:        vpc.New(&vpc.Config{Logger: logger, Client: f.VPC}),
		ServiceCloudFront: cloudfront.New(&cloudfront.Config{Logger: logger, Client: f.CloudFront}),
		ServiceCloudWatch: cloudwatch.New(&cloudwatch.Config{Logger: logger, Client: f.CloudWatch}),
		ServiceELB:        elb.New(&elb.Config{Logger: logger, Client: f.ELBv2}),
		ServiceEKS:        eks.New(&eks.Config{Logger: logger, Client: f.EKS}),
	}
}

// Run lists tags for every service in every region, service-major. Service
// names are matched case-insensitively as they are reached, so an unknown
// name stops the run only after earlier pairs have printed their output.
func (a *AWS) Run(ctx context.Context, services, regions []string) error {
	for _, service := range services {
		for _, region := range regions {
			l, ok := a.listers[strings.ToLower(service)]
			if !ok {
				return &UnsupportedServiceError{Service: service}
			}

			a.logger.LogAttrs(ctx, slog.LevelDebug, "listing tags",
				slog.String("service", l.Name()),
				slog.String("region", region),
			)
			if err := a.gatherer.Observe(ctx, l, region, a.output); err != nil {
				return fmt.Errorf("%s in region %s: %w", l.Name(), region, err)
			}
		}
	}
	return nil
}
