// Command strengl combines structural analysis results per load combination.
package main

import (
	"os"

	"github.com/notargets/strengl/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
