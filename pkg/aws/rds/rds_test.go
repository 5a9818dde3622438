package rds

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	rdsTypes "github.com/aws/aws-sdk-go-v2/service/rds/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	rdsclient "github.com/grafana/cloudtags/pkg/aws/services/rds"
)

// MockRDSClient is a mock implementation of the RDS interface
type MockRDSClient struct {
	mock.Mock
}

func (m *MockRDSClient) DescribeDBInstances(ctx context.Context, params *rds.DescribeDBInstancesInput, optFns ...func(*rds.Options)) (*rds.DescribeDBInstancesOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*rds.DescribeDBInstancesOutput)
	return out, args.Error(1)
}

func (m *MockRDSClient) ListTagsForResource(ctx context.Context, params *rds.ListTagsForResourceInput, optFns ...func(*rds.Options)) (*rds.ListTagsForResourceOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*rds.ListTagsForResourceOutput)
	return out, args.Error(1)
}

func newLister(c rdsclient.RDS) *Lister {
	return New(&Config{
		Logger: slog.Default(),
		Client: func(context.Context, string) (rdsclient.RDS, error) { return c, nil },
	})
}

func TestLister_Name(t *testing.T) {
	assert.Equal(t, "rds", newLister(&MockRDSClient{}).Name())
}

func TestLister_ListTags(t *testing.T) {
	tests := map[string]struct {
		instances *rds.DescribeDBInstancesOutput
		tags      map[string][]rdsTypes.Tag
		expected  string
	}{
		"nil output skips tag lookups": {
			instances: nil,
		},
		"no instances skips tag lookups": {
			instances: &rds.DescribeDBInstancesOutput{},
		},
		"instance without tags": {
			instances: &rds.DescribeDBInstancesOutput{DBInstances: []rdsTypes.DBInstance{
				{DBInstanceArn: aws.String("arn:db:1")},
			}},
			tags:     map[string][]rdsTypes.Tag{"arn:db:1": {}},
			expected: "Tags for RDS instance arn:db:1 in region us-east-1: []\n",
		},
		"instances in provider order": {
			instances: &rds.DescribeDBInstancesOutput{DBInstances: []rdsTypes.DBInstance{
				{DBInstanceArn: aws.String("arn:db:2")},
				{DBInstanceArn: aws.String("arn:db:1")},
			}},
			tags: map[string][]rdsTypes.Tag{
				"arn:db:2": {{Key: aws.String("env"), Value: aws.String("prod")}},
				"arn:db:1": {{Key: aws.String("team"), Value: aws.String("data")}},
			},
			expected: "Tags for RDS instance arn:db:2 in region us-east-1: [{'Key': 'env', 'Value': 'prod'}]\n" +
				"Tags for RDS instance arn:db:1 in region us-east-1: [{'Key': 'team', 'Value': 'data'}]\n",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := &MockRDSClient{}
			c.On("DescribeDBInstances", mock.Anything, mock.Anything).Return(tt.instances, nil)
			for arn, tagList := range tt.tags {
				c.On("ListTagsForResource", mock.Anything, &rds.ListTagsForResourceInput{ResourceName: aws.String(arn)}).
					Return(&rds.ListTagsForResourceOutput{TagList: tagList}, nil)
			}

			var buf bytes.Buffer
			err := newLister(c).ListTags(context.Background(), "us-east-1", &buf)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, buf.String())
			if len(tt.tags) == 0 {
				c.AssertNotCalled(t, "ListTagsForResource", mock.Anything, mock.Anything)
			}
			c.AssertExpectations(t)
		})
	}
}

func TestLister_ListTagsErrors(t *testing.T) {
	t.Run("describe error", func(t *testing.T) {
		c := &MockRDSClient{}
		c.On("DescribeDBInstances", mock.Anything, mock.Anything).Return(nil, assert.AnError)

		err := newLister(c).ListTags(context.Background(), "us-east-1", &bytes.Buffer{})
		require.ErrorIs(t, err, assert.AnError)
	})

	t.Run("tag error aborts after partial output", func(t *testing.T) {
		c := &MockRDSClient{}
		c.On("DescribeDBInstances", mock.Anything, mock.Anything).Return(&rds.DescribeDBInstancesOutput{DBInstances: []rdsTypes.DBInstance{
			{DBInstanceArn: aws.String("arn:db:1")},
			{DBInstanceArn: aws.String("arn:db:2")},
			{DBInstanceArn: aws.String("arn:db:3")},
		}}, nil)
		c.On("ListTagsForResource", mock.Anything, &rds.ListTagsForResourceInput{ResourceName: aws.String("arn:db:1")}).
			Return(&rds.ListTagsForResourceOutput{}, nil)
		c.On("ListTagsForResource", mock.Anything, &rds.ListTagsForResourceInput{ResourceName: aws.String("arn:db:2")}).
			Return(nil, assert.AnError)

		var buf bytes.Buffer
		err := newLister(c).ListTags(context.Background(), "us-east-1", &buf)
		require.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), "arn:db:2")
		assert.Equal(t, "Tags for RDS instance arn:db:1 in region us-east-1: []\n", buf.String())
		c.AssertNumberOfCalls(t, "ListTagsForResource", 2)
	})

	t.Run("client error", func(t *testing.T) {
		l := New(&Config{
			Logger: slog.Default(),
			Client: func(context.Context, string) (rdsclient.RDS, error) { return nil, assert.AnError },
		})
		err := l.ListTags(context.Background(), "us-east-1", &bytes.Buffer{})
		require.ErrorIs(t, err, assert.AnError)
	})
}
