package vpc

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// VPC is served by the EC2 API; tags come from the generic DescribeTags call.
type VPC interface {
	DescribeVpcs(ctx context.Context, params *ec2.DescribeVpcsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeVpcsOutput, error)
	DescribeTags(ctx context.Context, params *ec2.DescribeTagsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeTagsOutput, error)
}
