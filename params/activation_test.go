package params

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestActiveMainline(t *testing.T) {
	type activationCase struct {
		current Fork
		fork    Fork
		want    bool
	}
	testCases := []activationCase{
		{current: Frontier, fork: Frontier, want: true},
		{current: Frontier, fork: Homestead, want: false},
		{current: Homestead, fork: Frontier, want: true},
		{current: Petersburg, fork: Constantinople, want: true},
		{current: Constantinople, fork: Petersburg, want: false},
		{current: Merge, fork: London, want: true},
		{current: Merge, fork: Shanghai, want: false},
		{current: Shanghai, fork: Merge, want: true},
		{current: Osaka, fork: Prague, want: true},
		{current: Cancun, fork: Latest, want: false},
		{current: Latest, fork: Frontier, want: true},
		{current: Latest, fork: Osaka, want: true},
		{current: Latest, fork: Latest, want: true},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.want, Active(tc.current, tc.fork), "current %s fork %s", tc.current, tc.fork)
	}
}

func TestBedrockPostMergeForks(t *testing.T) {
	// history up to the branch point is inherited
	require.True(t, Active(Bedrock, London))
	require.True(t, Active(Bedrock, Merge))
	// mainline history past the branch point is not
	require.False(t, Active(Bedrock, Shanghai))
	require.False(t, Active(Bedrock, Cancun))
	require.False(t, Active(Bedrock, Latest))
	require.True(t, Active(Bedrock, Bedrock))
	require.False(t, Active(Bedrock, Regolith))
}

func TestRegolithPostMergeForks(t *testing.T) {
	require.True(t, Active(Regolith, London))
	require.True(t, Active(Regolith, Merge))
	require.False(t, Active(Regolith, Shanghai))
	require.False(t, Active(Regolith, Cancun))
	require.False(t, Active(Regolith, Latest))
	require.True(t, Active(Regolith, Bedrock))
	require.True(t, Active(Regolith, Regolith))
}

func TestMainlineCurrentAgainstOptimismForks(t *testing.T) {
	// a mainline current never reaches the OP Stack ranks
	require.False(t, Active(Cancun, Bedrock))
	require.False(t, Active(Osaka, Regolith))
	// the terminal rank sits above both bands
	require.True(t, Active(Latest, Bedrock))
	require.True(t, Active(Latest, Regolith))
}

func TestRulesBindings(t *testing.T) {
	require.Equal(t, London, LondonRules.Fork)
	require.True(t, LondonRules.Active(Berlin))
	require.False(t, LondonRules.Active(Merge))
	require.True(t, LatestRules.Active(Osaka))
	require.True(t, RegolithRules.Active(Bedrock))
	require.False(t, BedrockRules.Active(Shanghai))
	require.True(t, Rules{Fork: Shanghai}.Active(Merge))
}
