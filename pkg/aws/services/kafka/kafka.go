package kafka

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/kafka"
)

// Kafka is the MSK API.
type Kafka interface {
	ListClusters(ctx context.Context, params *kafka.ListClustersInput, optFns ...func(*kafka.Options)) (*kafka.ListClustersOutput, error)
	ListTagsForResource(ctx context.Context, params *kafka.ListTagsForResourceInput, optFns ...func(*kafka.Options)) (*kafka.ListTagsForResourceOutput, error)
}
