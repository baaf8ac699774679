package version

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInfo_UsesLinkerValues(t *testing.T) {
	oldVersion, oldCommit, oldTime := Version, GitCommit, BuildTime
	t.Cleanup(func() { Version, GitCommit, BuildTime = oldVersion, oldCommit, oldTime })

	Version = "v1.2.3"
	GitCommit = "0123456789abcdef"
	BuildTime = "2024-05-01T10:00:00Z"

	info := Info()

	assert.Equal(t, "v1.2.3", info.Version)
	assert.Equal(t, "0123456789abcdef", info.GitCommit)
	assert.Equal(t, time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC), info.BuildTime)
	assert.True(t, info.IsRelease())
	assert.Equal(t, "v1.2.3 (0123456)", info.Short())
	assert.Contains(t, info.String(), "Commit: 0123456789abcdef")
	assert.Contains(t, info.String(), "Built: 2024-05-01T10:00:00Z")
}

func TestBuildInfo_Dev(t *testing.T) {
	info := BuildInfo{Version: "dev-abcdef1", GitCommit: "abcdef1234", GoVersion: "go1.24", Platform: "linux/amd64"}

	assert.False(t, info.IsRelease())
	assert.Equal(t, "dev-abcdef1", info.Short())
	assert.NotContains(t, info.String(), "Built:")
}
