package main

import (
	"fmt"
	"os"

	"github.com/subosito/gotenv"

	"actionitems/cmd"
)

func main() {
	// Optional local env file; absence is fine.
	_ = gotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
