package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"renlog/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override renlog config path (optional)")
	watchSeconds := flag.Int("watch", 0, "file watch interval in seconds (optional, defaults to 2s)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath}
	if watch := *watchSeconds; watch > 0 {
		opts.WatchSeconds = watch
	}
	if flag.NArg() > 0 {
		opts.LogPath = flag.Arg(0)
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "renlog: %v\n", err)
		return 1
	}
	return 0
}
