package params

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionWithMeta(t *testing.T) {
	require.Equal(t, Version+"-"+VersionMeta, VersionWithMeta)
}

func TestVersionWithCommit(t *testing.T) {
	require.Equal(t, VersionWithMeta+"-0123abcd", VersionWithCommit("0123abcdef", ""))
	require.Equal(t, VersionWithMeta+"-0123abcd-20260825", VersionWithCommit("0123abcdef", "20260825"))
	// short commits are not appended
	require.Equal(t, VersionWithMeta, VersionWithCommit("0123", ""))
}

func TestArchiveVersion(t *testing.T) {
	require.Equal(t, Version+"-"+VersionMeta+"-0123abcd", ArchiveVersion("0123abcdef"))
	require.Equal(t, Version+"-"+VersionMeta, ArchiveVersion(""))
}
