// go-evmspec is a command line tool for inspecting EVM hardfork
// identifiers and their activation rules.
package main

import (
	"os"

	"github.com/dominant-strategies/go-evmspec/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
