package ec2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

type EC2 interface {
	DescribeInstances(ctx context.Context, e *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
}
