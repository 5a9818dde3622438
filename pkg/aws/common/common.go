package common

import (
	"errors"
	"fmt"
	"io"

	"github.com/aws/smithy-go"
)

// PrintTags writes one result line for a resource.
func PrintTags(w io.Writer, kind, id, region string, tags fmt.Stringer) error {
	_, err := fmt.Fprintf(w, "Tags for %s %s in region %s: %s\n", kind, id, region, tags)
	return err
}

// APIErrorCode returns the provider error code carried by err, or "" if err
// did not come from an AWS API.
func APIErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

// IsNoSuchTagSet reports whether err is S3's response for a bucket without tags.
func IsNoSuchTagSet(err error) bool {
	return APIErrorCode(err) == "NoSuchTagSet"
}

// OperationName returns the API operation that failed, or "" if unknown.
func OperationName(err error) string {
	var opErr *smithy.OperationError
	if errors.As(err, &opErr) {
		return opErr.Operation()
	}
	return ""
}
