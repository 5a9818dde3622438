package client

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/eks"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/kafka"
	"github.com/aws/aws-sdk-go-v2/service/medialive"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	cloudfrontclient "github.com/grafana/cloudtags/pkg/aws/services/cloudfront"
	cloudwatchclient "github.com/grafana/cloudtags/pkg/aws/services/cloudwatch"
	ec2client "github.com/grafana/cloudtags/pkg/aws/services/ec2"
	eksclient "github.com/grafana/cloudtags/pkg/aws/services/eks"
	elbv2client "github.com/grafana/cloudtags/pkg/aws/services/elbv2"
	kafkaclient "github.com/grafana/cloudtags/pkg/aws/services/kafka"
	medialiveclient "github.com/grafana/cloudtags/pkg/aws/services/medialive"
	rdsclient "github.com/grafana/cloudtags/pkg/aws/services/rds"
	s3client "github.com/grafana/cloudtags/pkg/aws/services/s3"
	vpcclient "github.com/grafana/cloudtags/pkg/aws/services/vpc"
)

type loadFunc func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error)

type Option func(f *Factory)

func WithProfile(profile string) Option {
	return func(f *Factory) {
		f.profile = profile
	}
}

func WithRoleARN(roleARN string) Option {
	return func(f *Factory) {
		f.roleARN = roleARN
	}
}

// WithMetrics instruments every API call made by clients of the factory.
func WithMetrics(m *Metrics) Option {
	return func(f *Factory) {
		f.metrics = m
	}
}

// Factory builds region-scoped service clients from the SDK's default
// credential chain. Configs are loaded once per region.
type Factory struct {
	profile string
	roleARN string
	metrics *Metrics
	load    loadFunc

	mu      sync.Mutex
	configs map[string]aws.Config
}

func NewFactory(opts ...Option) *Factory {
	f := &Factory{
		load:    awsconfig.LoadDefaultConfig,
		configs: make(map[string]aws.Config),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Config returns the aws.Config for region.
func (f *Factory) Config(ctx context.Context, region string) (aws.Config, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if ac, ok := f.configs[region]; ok {
		return ac, nil
	}

	optionsFunc := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if f.profile != "" {
		optionsFunc = append(optionsFunc, awsconfig.WithSharedConfigProfile(f.profile))
	}

	ac, err := f.load(ctx, optionsFunc...)
	if err != nil {
		return aws.Config{}, err
	}

	if f.roleARN != "" {
		ac.Credentials = aws.NewCredentialsCache(
			stscreds.NewAssumeRoleProvider(
				sts.NewFromConfig(ac),
				f.roleARN,
			),
		)
	}

	if f.metrics != nil {
		ac.APIOptions = append(ac.APIOptions, f.metrics.AddMiddleware)
	}

	f.configs[region] = ac
	return ac, nil
}

func (f *Factory) EC2(ctx context.Context, region string) (ec2client.EC2, error) {
	ac, err := f.Config(ctx, region)
	if err != nil {
		return nil, err
	}
	return ec2.NewFromConfig(ac), nil
}

func (f *Factory) VPC(ctx context.Context, region string) (vpcclient.VPC, error) {
	ac, err := f.Config(ctx, region)
	if err != nil {
		return nil, err
	}
	return ec2.NewFromConfig(ac), nil
}

func (f *Factory) RDS(ctx context.Context, region string) (rdsclient.RDS, error) {
	ac, err := f.Config(ctx, region)
	if err != nil {
		return nil, err
	}
	return rds.NewFromConfig(ac), nil
}

func (f *Factory) S3(ctx context.Context, region string) (s3client.S3, error) {
	ac, err := f.Config(ctx, region)
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(ac), nil
}

func (f *Factory) Kafka(ctx context.Context, region string) (kafkaclient.Kafka, error) {
	ac, err := f.Config(ctx, region)
	if err != nil {
		return nil, err
	}
	return kafka.NewFromConfig(ac), nil
}

func (f *Factory) MediaLive(ctx context.Context, region string) (medialiveclient.MediaLive, error) {
	ac, err := f.Config(ctx, region)
	if err != nil {
		return nil, err
	}
	return medialive.NewFromConfig(ac), nil
}

func (f *Factory) CloudFront(ctx context.Context, region string) (cloudfrontclient.CloudFront, error) {
	ac, err := f.Config(ctx, region)
	if err != nil {
		return nil, err
	}
	return cloudfront.NewFromConfig(ac), nil
}

func (f *Factory) CloudWatch(ctx context.Context, region string) (cloudwatchclient.CloudWatch, error) {
	ac, err := f.Config(ctx, region)
	if err != nil {
		return nil, err
	}
	return cloudwatch.NewFromConfig(ac), nil
}

func (f *Factory) ELBv2(ctx context.Context, region string) (elbv2client.ELBv2, error) {
	ac, err := f.Config(ctx, region)
	if err != nil {
		return nil, err
	}
	return elasticloadbalancingv2.NewFromConfig(ac), nil
}

func (f *Factory) EKS(ctx context.Context, region string) (eksclient.EKS, error) {
	ac, err := f.Config(ctx, region)
	if err != nil {
		return nil, err
	}
	return eks.NewFromConfig(ac), nil
}
