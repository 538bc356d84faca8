// Package main is the entry point for booterctl.
package main

import (
	"fmt"
	"os"

	_ "github.com/opmodel/booter/internal/builtin"
	"github.com/opmodel/booter/internal/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cmd.ExitCodeFromError(err))
	}
}
