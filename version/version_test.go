package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionString(t *testing.T) {
	saved := gitCommit
	defer func() { gitCommit = saved }()

	gitCommit = ""
	v := &version{majorVersion: 1, minorVersion: 2, patchVersion: 3}
	assert.Equal(t, "1.2.3", v.String())

	gitCommit = "1a2b3c4d5e6f"
	v = &version{majorVersion: 1, minorVersion: 2, patchVersion: 3}
	assert.Equal(t, "1.2.3+1a2b3c4d", v.String())

	// Short commits are ignored.
	gitCommit = "1a2b"
	v = &version{majorVersion: 1, minorVersion: 2, patchVersion: 3}
	assert.Equal(t, "1.2.3", v.String())
}

func TestGetVersion(t *testing.T) {
	assert.NotEmpty(t, GetVersion())
	assert.Equal(t, GetVersion(), GetVersion())
}

func TestGetGitCommit(t *testing.T) {
	saved := gitCommit
	defer func() { gitCommit = saved }()

	gitCommit = "1a2b3c4d5e6f708192a3b4c5d6e7f8091a2b3c4d"
	assert.Equal(t, gitCommit, GetGitCommit())
}
