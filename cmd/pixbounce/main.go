package main

import (
	"fmt"
	"os"

	"github.com/diegok/pixbounce/internal/app"
	"github.com/diegok/pixbounce/internal/config"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	application := app.NewApp(cfg)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  pixbounce [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --width <px>        World width in pixels (default: 800)")
	fmt.Fprintln(os.Stderr, "  --height <px>       World height in pixels (default: 600)")
	fmt.Fprintln(os.Stderr, "  --gravity <g>       Gravity per frame (default: 0.8)")
	fmt.Fprintln(os.Stderr, "  --fps <n>           Frames per second (default: 60)")
	fmt.Fprintln(os.Stderr, "  --level <n>         Starting level, 1-3 (default: 1)")
	fmt.Fprintln(os.Stderr, "  --data <dir>        Directory for saved settings (default: .)")
	fmt.Fprintln(os.Stderr, "  --mute              Disable sound")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  pixbounce")
	fmt.Fprintln(os.Stderr, "  pixbounce --level 2 --mute")
	fmt.Fprintln(os.Stderr, "  pixbounce --gravity 1.2 --fps 30")
}
