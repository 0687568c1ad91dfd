package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/dominant-strategies/go-evmspec/common/constants"
	"github.com/dominant-strategies/go-evmspec/params"
)

var versionCmd = &cobra.Command{
	Use:          "version",
	Short:        "prints version numbers",
	RunE:         runVersion,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, constants.APP_NAME)
	fmt.Fprintln(out, "Version:", params.VersionWithMeta)
	fmt.Fprintln(out, "Architecture:", runtime.GOARCH)
	fmt.Fprintln(out, "Go Version:", runtime.Version())
	fmt.Fprintln(out, "Operating System:", runtime.GOOS)
	return nil
}
