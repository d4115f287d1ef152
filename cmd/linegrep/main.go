// linegrep - search a file for lines containing a literal substring.
package main

import (
	"os"

	"github.com/linegrep/linegrep/internal/adapters/driving/cli"
)

func main() {
	// Execute prints the failure reason itself; main only maps it
	// to the process exit code.
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
