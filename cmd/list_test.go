package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dominant-strategies/go-evmspec/cmd/options"
	"github.com/dominant-strategies/go-evmspec/params"
)

func TestListForks(t *testing.T) {
	entries := listForks(params.OptimismRegistry)
	require.Len(t, entries, len(params.OptimismRegistry.Forks()))
	require.Equal(t, forkEntry{ID: 0, Name: "Frontier", Band: "mainline"}, entries[0])
	require.Equal(t, forkEntry{ID: 255, Name: "Latest", Band: "terminal"}, entries[len(entries)-1])
	require.Contains(t, entries, forkEntry{ID: 128, Name: "Bedrock", Band: "op-stack"})

	mainnet := listForks(params.MainnetRegistry)
	require.NotContains(t, mainnet, forkEntry{ID: 128, Name: "Bedrock", Band: "op-stack"})
}

func TestRunListJSON(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	viper.Set(options.FORMAT, "json")

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	require.NoError(t, runList(cmd, nil))

	var entries []forkEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
	require.Equal(t, listForks(params.MainnetRegistry), entries)
}

func TestRunListYAML(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	viper.Set(options.FORMAT, "yaml")
	viper.Set(options.OPTIMISM, true)

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	require.NoError(t, runList(cmd, nil))

	var entries []forkEntry
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &entries))
	require.Equal(t, listForks(params.OptimismRegistry), entries)
}

func TestRunListUnknownFormat(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	viper.Set(options.FORMAT, "xml")

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})
	require.Error(t, runList(cmd, nil))
}

func TestRunListTable(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	viper.Set(options.FORMAT, "table")

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	require.NoError(t, runList(cmd, nil))
	require.Contains(t, buf.String(), "Frontier")
	require.Contains(t, buf.String(), "Latest")
	require.NotContains(t, buf.String(), "Bedrock")
}
