// Package main is the booter launcher. It reads its inputs from the
// environment, passes every command-line argument through to the
// application's entry point, and exits with the launch outcome.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/opmodel/booter/internal/builtin"
	"github.com/opmodel/booter/internal/cmd"
	"github.com/opmodel/booter/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cmd.Launch(ctx, config.NewLoader(), os.Args[1:])
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cmd.ExitCodeFromError(err))
	}
}
