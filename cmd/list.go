package cmd

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/dominant-strategies/go-evmspec/cmd/options"
	"github.com/dominant-strategies/go-evmspec/log"
	"github.com/dominant-strategies/go-evmspec/params"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "lists the hardforks the selected registry recognizes",
	Long: `lists every hardfork the selected registry recognizes, in activation order.
The mainline Ethereum forks are always included; pass --optimism to include
the OP Stack band.`,
	RunE:                       runList,
	SilenceUsage:               true,
	SuggestionsMinimumDistance: 2,
	Example:                    `go-evmspec list --optimism --format json`,
}

func init() {
	rootCmd.AddCommand(listCmd)
	// configure flag for the output format
	listCmd.Flags().StringP(options.FORMAT, "f", "table", "output format (table, json, yaml)")
	viper.BindPFlag(options.FORMAT, listCmd.Flags().Lookup(options.FORMAT))
}

// forkEntry is the listing row for a single fork.
type forkEntry struct {
	ID   uint8  `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Band string `json:"band" yaml:"band"`
}

func runList(cmd *cobra.Command, args []string) error {
	entries := listForks(registry())
	log.Tracef("fork listing: %s", spew.Sdump(entries))

	out := cmd.OutOrStdout()
	switch format := viper.GetString(options.FORMAT); format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case "yaml":
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(entries)
	case "table":
		renderForkTable(out, entries)
		return nil
	default:
		return errors.Errorf("unknown output format %q", format)
	}
}

func listForks(reg *params.Registry) []forkEntry {
	forks := reg.Forks()
	entries := make([]forkEntry, 0, len(forks))
	for _, fork := range forks {
		entries = append(entries, forkEntry{
			ID:   uint8(fork),
			Name: fork.String(),
			Band: band(fork),
		})
	}
	return entries
}

func band(f params.Fork) string {
	switch {
	case f == params.Latest:
		return "terminal"
	case f.IsOptimism():
		return "op-stack"
	default:
		return "mainline"
	}
}

func renderForkTable(out io.Writer, entries []forkEntry) {
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{strconv.Itoa(int(entry.ID)), entry.Name, entry.Band})
	}
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"ID", "Name", "Band"})
	table.AppendBulk(rows)
	table.Render()
}
