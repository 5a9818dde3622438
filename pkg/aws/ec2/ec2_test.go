package ec2

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2Types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	ec2client "github.com/grafana/cloudtags/pkg/aws/services/ec2"
)

type MockEC2Client struct {
	mock.Mock
}

func (m *MockEC2Client) DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*ec2.DescribeInstancesOutput)
	return out, args.Error(1)
}

func newLister(c ec2client.EC2) *Lister {
	return New(&Config{
		Logger: slog.Default(),
		Client: func(context.Context, string) (ec2client.EC2, error) { return c, nil },
	})
}

func TestLister_ListTags(t *testing.T) {
	tests := map[string]struct {
		region       string
		reservations []ec2Types.Reservation
		expected     string
	}{
		"no reservations": {},
		"tagged instance": {
			reservations: []ec2Types.Reservation{{
				Instances: []ec2Types.Instance{{
					InstanceId: aws.String("i-1"),
					Tags:       []ec2Types.Tag{{Key: aws.String("env"), Value: aws.String("prod")}},
				}},
			}},
			expected: "Tags for EC2 instance i-1 in region us-east-1: {'env': 'prod'}\n",
		},
		"untagged instance defaults to empty list": {
			reservations: []ec2Types.Reservation{{
				Instances: []ec2Types.Instance{{InstanceId: aws.String("i-2")}},
			}},
			expected: "Tags for EC2 instance i-2 in region us-east-1: []\n",
		},
		"instances across reservations keep order": {
			region: "eu-central-1",
			reservations: []ec2Types.Reservation{
				{Instances: []ec2Types.Instance{
					{InstanceId: aws.String("i-b"), Tags: []ec2Types.Tag{
						{Key: aws.String("Name"), Value: aws.String("web")},
						{Key: aws.String("env"), Value: aws.String("dev")},
					}},
					{InstanceId: aws.String("i-a")},
				}},
				{Instances: []ec2Types.Instance{{InstanceId: aws.String("i-c")}}},
			},
			expected: "Tags for EC2 instance i-b in region eu-central-1: {'Name': 'web', 'env': 'dev'}\n" +
				"Tags for EC2 instance i-a in region eu-central-1: []\n" +
				"Tags for EC2 instance i-c in region eu-central-1: []\n",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			region := tt.region
			if region == "" {
				region = "us-east-1"
			}
			c := &MockEC2Client{}
			c.On("DescribeInstances", mock.Anything, mock.Anything).
				Return(&ec2.DescribeInstancesOutput{Reservations: tt.reservations}, nil)

			var buf bytes.Buffer
			require.NoError(t, newLister(c).ListTags(context.Background(), region, &buf))
			assert.Equal(t, tt.expected, buf.String())
			c.AssertNumberOfCalls(t, "DescribeInstances", 1)
		})
	}
}

func TestLister_ListTagsError(t *testing.T) {
	c := &MockEC2Client{}
	c.On("DescribeInstances", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	var buf bytes.Buffer
	err := newLister(c).ListTags(context.Background(), "us-east-1", &buf)
	require.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, buf.String())
}

func TestLister_Name(t *testing.T) {
	assert.Equal(t, "ec2", newLister(&MockEC2Client{}).Name())
}
