// main is the entry point for the winnow CLI.
package main

import (
	"fmt"
	"os"

	"github.com/winnowlabs/winnow/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
