package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dominant-strategies/go-evmspec/log"
	"github.com/dominant-strategies/go-evmspec/params"
)

var checkCmd = &cobra.Command{
	Use:   "check CURRENT FORK",
	Short: "reports whether a hardfork's rules are active",
	Long: `reports whether FORK's rule set is active for a chain running at CURRENT.
Both arguments accept a canonical fork name or a raw numeric identifier.
Prints "true" or "false".`,
	RunE:                       runCheck,
	SilenceUsage:               true,
	SuggestionsMinimumDistance: 2,
	Args:                       cobra.ExactArgs(2),
	Example:                    `go-evmspec check --optimism Regolith Shanghai`,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	reg := registry()
	current, err := resolveForkArg(reg, args[0])
	if err != nil {
		return err
	}
	fork, err := resolveForkArg(reg, args[1])
	if err != nil {
		return err
	}
	active := params.Active(current, fork)
	log.WithFields(log.Fields{
		"current": current,
		"fork":    fork,
	}).Debugf("activation check: %t", active)
	fmt.Fprintln(cmd.OutOrStdout(), active)
	return nil
}
