package common

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafana/cloudtags/pkg/tags"
)

func TestPrintTags(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintTags(&buf, "VPC", "vpc-1", "eu-central-1", tags.List{{Key: "Name", Value: "main"}}))
	assert.Equal(t, "Tags for VPC vpc-1 in region eu-central-1: [{'Key': 'Name', 'Value': 'main'}]\n", buf.String())
}

func TestAPIErrorCode(t *testing.T) {
	noTags := &smithy.GenericAPIError{Code: "NoSuchTagSet", Message: "The TagSet does not exist"}
	wrapped := &smithy.OperationError{ServiceID: "S3", OperationName: "GetBucketTagging", Err: noTags}

	for _, tc := range []struct {
		name          string
		err           error
		expectedCode  string
		expectedNoTag bool
		expectedOp    string
	}{
		{
			name: "plain error",
			err:  assert.AnError,
		},
		{
			name:          "api error",
			err:           noTags,
			expectedCode:  "NoSuchTagSet",
			expectedNoTag: true,
		},
		{
			name:          "operation error wrapped by caller",
			err:           fmt.Errorf("listing tags: %w", wrapped),
			expectedCode:  "NoSuchTagSet",
			expectedNoTag: true,
			expectedOp:    "GetBucketTagging",
		},
		{
			name:         "access denied",
			err:          &smithy.GenericAPIError{Code: "AccessDenied"},
			expectedCode: "AccessDenied",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedCode, APIErrorCode(tc.err))
			assert.Equal(t, tc.expectedNoTag, IsNoSuchTagSet(tc.err))
			assert.Equal(t, tc.expectedOp, OperationName(tc.err))
		})
	}
}
