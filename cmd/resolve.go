package cmd

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dominant-strategies/go-evmspec/log"
	"github.com/dominant-strategies/go-evmspec/params"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve FORK [FORK...]",
	Short: "resolves fork names or raw identifiers",
	Long: `resolves each argument against the selected registry and prints the
identifier, canonical name and band. Arguments may be canonical fork names
or raw numeric identifiers; unknown names resolve to Latest.`,
	RunE:                       runResolve,
	SilenceUsage:               true,
	SuggestionsMinimumDistance: 2,
	Args:                       cobra.MinimumNArgs(1),
	Example:                    `go-evmspec resolve Shanghai 17 Bedrock`,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	reg := registry()
	for _, arg := range args {
		fork, err := resolveForkArg(reg, arg)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", uint8(fork), fork, band(fork))
	}
	return nil
}

// resolveForkArg resolves a command line argument to a fork identifier.
// Numeric arguments are raw ranks and must name a fork the registry
// recognizes; anything else is parsed as a fork name, where unknown names
// fall back to Latest.
func resolveForkArg(reg *params.Registry, arg string) (params.Fork, error) {
	if id, err := strconv.ParseUint(arg, 10, 8); err == nil {
		fork, ok := reg.ForkByID(uint8(id))
		if !ok {
			return 0, errors.Errorf("no fork with id %d", id)
		}
		return fork, nil
	}
	fork := reg.ParseFork(arg)
	if fork == params.Latest && arg != params.Latest.String() {
		log.Warnf("unknown fork name %q, falling back to %s", arg, params.Latest)
	}
	return fork, nil
}
