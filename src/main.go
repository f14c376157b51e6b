package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"sortdemo/src/cmd"
)

func main() {
	// The first interrupt ends a waiting prompt; once the context is done the
	// default handlers are restored so a second one kills a runaway bogosort.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctx.Done()
		stop()
	}()

	err := cmd.NewApp().RunContext(ctx, os.Args)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
