package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/dominant-strategies/go-evmspec/cmd/options"
	"github.com/dominant-strategies/go-evmspec/log"
	"github.com/dominant-strategies/go-evmspec/params"
)

func TestMain(m *testing.M) {
	log.ConfigureLogger(log.WithNullLogger())
	os.Exit(m.Run())
}

func TestResolveForkArg(t *testing.T) {
	type resolveCase struct {
		arg      string
		registry *params.Registry
		want     params.Fork
		wantErr  bool
	}
	testCases := []resolveCase{
		{arg: "Shanghai", registry: params.MainnetRegistry, want: params.Shanghai},
		{arg: "16", registry: params.MainnetRegistry, want: params.Shanghai},
		{arg: "255", registry: params.MainnetRegistry, want: params.Latest},
		{arg: "Bedrock", registry: params.OptimismRegistry, want: params.Bedrock},
		{arg: "128", registry: params.OptimismRegistry, want: params.Bedrock},
		{arg: "Bedrock", registry: params.MainnetRegistry, want: params.Latest},
		{arg: "NotAFork", registry: params.OptimismRegistry, want: params.Latest},
		{arg: "128", registry: params.MainnetRegistry, wantErr: true},
		{arg: "20", registry: params.OptimismRegistry, wantErr: true},
		{arg: "254", registry: params.OptimismRegistry, wantErr: true},
	}
	for _, tc := range testCases {
		fork, err := resolveForkArg(tc.registry, tc.arg)
		if tc.wantErr {
			require.Error(t, err, "arg %q", tc.arg)
			continue
		}
		require.NoError(t, err, "arg %q", tc.arg)
		require.Equal(t, tc.want, fork, "arg %q", tc.arg)
	}
}

func TestRegistrySelection(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	require.Same(t, params.MainnetRegistry, registry())
	viper.Set(options.OPTIMISM, true)
	require.Same(t, params.OptimismRegistry, registry())
}

func TestRunResolveOutput(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	require.NoError(t, runResolve(cmd, []string{"Shanghai", "255"}))
	require.Equal(t, "16\tShanghai\tmainline\n255\tLatest\tterminal\n", buf.String())

	// raw ids outside the registry view are rejected
	require.Error(t, runResolve(cmd, []string{"128"}))
}
