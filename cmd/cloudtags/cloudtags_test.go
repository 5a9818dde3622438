package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Usage(t *testing.T) {
	for _, tc := range []struct {
		name string
		args []string
	}{
		{name: "no arguments", args: nil},
		{name: "one argument", args: []string{"ec2"}},
		{name: "three arguments", args: []string{"ec2", "us-east-1", "extra"}},
		{name: "flags do not count", args: []string{"-log.level", "debug", "ec2"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			code := run(context.Background(), tc.args, &out)
			assert.Equal(t, 1, code)
			assert.Equal(t, usage+"\n", out.String())
		})
	}
}

func TestRun_UnsupportedService(t *testing.T) {
	for _, tc := range []struct {
		name     string
		services string
		expected string
	}{
		{
			name:     "bogus",
			services: "bogus",
			expected: "Invalid service name: bogus. Supported services: rds, ec2, s3, msk, elemental, vpc, cloudfront, cloudwatch, elb, eks\n",
		},
		{
			name:     "token is reported as given",
			services: "Lambda",
			expected: "Invalid service name: Lambda. Supported services: rds, ec2, s3, msk, elemental, vpc, cloudfront, cloudwatch, elb, eks\n",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			code := run(context.Background(), []string{"-log.level", "error", tc.services, "us-east-1,eu-west-1"}, &out)
			assert.Equal(t, 1, code)
			assert.Equal(t, tc.expected, out.String())
		})
	}
}

func TestRun_MetricsTextfileOnFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cloudtags.prom")

	var out bytes.Buffer
	code := run(context.Background(), []string{"-log.level", "error", "-metrics.textfile", path, "bogus", "us-east-1"}, &out)
	assert.Equal(t, 1, code)

	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	code := run(context.Background(), []string{"-version"}, &out)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "cloudtags")
}

func TestRun_BadFlag(t *testing.T) {
	var out bytes.Buffer
	code := run(context.Background(), []string{"-no-such-flag", "ec2", "us-east-1"}, &out)
	assert.Equal(t, 1, code)
	assert.Empty(t, out.String())
}
