package aws

// Service names accepted on the command line, lower case.
const (
	ServiceRDS        = "rds"
	ServiceEC2        = "ec2"
	ServiceS3         = "s3"
	ServiceMSK        = "msk"
	ServiceElemental  = "elemental"
	ServiceVPC        = "vpc"
	ServiceCloudFront = "cloudfront"
	ServiceCloudWatch = "cloudwatch"
	ServiceELB        = "elb"
	ServiceEKS        = "eks"
)

// SupportedServices lists every registered service in display order.
var SupportedServices = []string{
	ServiceRDS,
	ServiceEC2,
	ServiceS3,
	ServiceMSK,
	ServiceElemental,
	ServiceVPC,
	ServiceCloudFront,
	ServiceCloudWatch,
	ServiceELB,
	ServiceEKS,
}
