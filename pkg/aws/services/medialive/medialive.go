package medialive

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/medialive"
)

type MediaLive interface {
	ListChannels(ctx context.Context, params *medialive.ListChannelsInput, optFns ...func(*medialive.Options)) (*medialive.ListChannelsOutput, error)
	ListTagsForResource(ctx context.Context, params *medialive.ListTagsForResourceInput, optFns ...func(*medialive.Options)) (*medialive.ListTagsForResourceOutput, error)
}
