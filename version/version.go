package version

import "fmt"

const (
	majorVersion uint32 = 0
	minorVersion uint32 = 1
	patchVersion uint32 = 0
)

var (
	// gitCommit is set at build time by
	// -ldflags "-X massnet.org/shadigest/version.gitCommit=<sha>".
	gitCommit string
	ver       *version
)

type version struct {
	majorVersion  uint32
	minorVersion  uint32
	patchVersion  uint32
	versionString string
}

// Format version to "<majorVersion>.<minorVersion>.<patchVersion>[+<gitCommit>]",
// like "0.1.0", or "0.1.0+1a2b3c4d".
func (v *version) String() string {
	if v.versionString != "" {
		return v.versionString
	}

	v.versionString = fmt.Sprintf("%d.%d.%d", v.majorVersion, v.minorVersion, v.patchVersion)
	if len(gitCommit) >= 8 {
		v.versionString += "+" + gitCommit[:8]
	}
	return v.versionString
}

func GetVersion() string {
	return ver.String()
}

// GetGitCommit returns the full commit hash the binary was built from, if known.
func GetGitCommit() string {
	return gitCommit
}

func init() {
	ver = &version{
		majorVersion: majorVersion,
		minorVersion: minorVersion,
		patchVersion: patchVersion,
	}
}
