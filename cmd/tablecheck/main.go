// Command tablecheck validates tabular datasets against declared checks.
package main

import (
	"os"

	"github.com/leapstack-labs/tablecheck/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
