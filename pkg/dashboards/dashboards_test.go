package dashboards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDashboards(t *testing.T) {
	dashes := BuildDashboards()
	require.Len(t, dashes, 1)

	build, err := dashes[0].Build()
	require.NoError(t, err)
	require.NotNil(t, build.Title)
	assert.Equal(t, "Cloudtags Operations Dashboard", *build.Title)
	require.NotNil(t, build.Uid)
	assert.Equal(t, operationsUID, *build.Uid)
	assert.NotEmpty(t, build.Panels)
}
