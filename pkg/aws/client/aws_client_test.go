package client

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loadRecorder struct {
	calls   int
	options []awsconfig.LoadOptions
	err     error
}

func (l *loadRecorder) load(_ context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
	l.calls++
	var lo awsconfig.LoadOptions
	for _, fn := range optFns {
		if err := fn(&lo); err != nil {
			return aws.Config{}, err
		}
	}
	l.options = append(l.options, lo)
	if l.err != nil {
		return aws.Config{}, l.err
	}
	return aws.Config{Region: lo.Region}, nil
}

func TestFactory_Config(t *testing.T) {
	for _, tc := range []struct {
		name            string
		opts            []Option
		expectedProfile string
		assumesRole     bool
		instrumented    bool
	}{
		{
			name: "default chain",
		},
		{
			name:            "shared config profile",
			opts:            []Option{WithProfile("ops")},
			expectedProfile: "ops",
		},
		{
			name:        "assume role",
			opts:        []Option{WithRoleARN("arn:aws:iam::123456789012:role/reader")},
			assumesRole: true,
		},
		{
			name:         "metrics middleware",
			opts:         []Option{WithMetrics(NewMetrics())},
			instrumented: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rec := &loadRecorder{}
			f := NewFactory(tc.opts...)
			f.load = rec.load

			ac, err := f.Config(context.Background(), "eu-central-1")
			require.NoError(t, err)
			require.Len(t, rec.options, 1)

			assert.Equal(t, "eu-central-1", ac.Region)
			assert.Equal(t, "eu-central-1", rec.options[0].Region)
			assert.Equal(t, tc.expectedProfile, rec.options[0].SharedConfigProfile)
			if tc.assumesRole {
				assert.IsType(t, &aws.CredentialsCache{}, ac.Credentials)
			} else {
				assert.Nil(t, ac.Credentials)
			}
			if tc.instrumented {
				assert.Len(t, ac.APIOptions, 1)
			} else {
				assert.Empty(t, ac.APIOptions)
			}
		})
	}
}

func TestFactory_ConfigIsCachedPerRegion(t *testing.T) {
	rec := &loadRecorder{}
	f := NewFactory()
	f.load = rec.load

	ctx := context.Background()
	for _, region := range []string{"us-east-1", "us-east-1", "eu-west-1", "us-east-1"} {
		_, err := f.Config(ctx, region)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, rec.calls)
}

func TestFactory_ConfigError(t *testing.T) {
	rec := &loadRecorder{err: assert.AnError}
	f := NewFactory()
	f.load = rec.load

	_, err := f.RDS(context.Background(), "us-east-1")
	require.ErrorIs(t, err, assert.AnError)

	// failures are not cached
	_, err = f.EKS(context.Background(), "us-east-1")
	require.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 2, rec.calls)
}

func TestFactory_ServiceClients(t *testing.T) {
	rec := &loadRecorder{}
	f := NewFactory()
	f.load = rec.load
	ctx := context.Background()

	ec2c, err := f.EC2(ctx, "us-east-1")
	require.NoError(t, err)
	assert.NotNil(t, ec2c)

	vpcc, err := f.VPC(ctx, "us-east-1")
	require.NoError(t, err)
	assert.NotNil(t, vpcc)

	s3c, err := f.S3(ctx, "us-east-1")
	require.NoError(t, err)
	assert.NotNil(t, s3c)

	kc, err := f.Kafka(ctx, "us-east-1")
	require.NoError(t, err)
	assert.NotNil(t, kc)

	mc, err := f.MediaLive(ctx, "us-east-1")
	require.NoError(t, err)
	assert.NotNil(t, mc)

	cfc, err := f.CloudFront(ctx, "us-east-1")
	require.NoError(t, err)
	assert.NotNil(t, cfc)

	cwc, err := f.CloudWatch(ctx, "us-east-1")
	require.NoError(t, err)
	assert.NotNil(t, cwc)

	elbc, err := f.ELBv2(ctx, "us-east-1")
	require.NoError(t, err)
	assert.NotNil(t, elbc)

	assert.Equal(t, 1, rec.calls)
}
