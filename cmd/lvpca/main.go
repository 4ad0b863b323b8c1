// SPDX-License-Identifier: MIT

// Command lvpca fits, applies and inspects PCA models on CSV data.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvpca/internal/logging"
)

func main() {
	if err := logging.Configure(logging.LevelWarn); err != nil {
		_, _ = os.Stderr.WriteString("configure logger: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
