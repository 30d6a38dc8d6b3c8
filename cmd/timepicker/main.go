package main

import (
	"fmt"
	"os"

	"github.com/agiangrant/timepicker/cmd/timepicker/commands"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "demo":
		err = commands.Demo(args)
	case "serve":
		err = commands.Serve(args)
	case "render":
		err = commands.Render(args)
	case "init":
		err = commands.Init(args)
	case "version", "-v", "--version":
		fmt.Printf("timepicker version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`timepicker - circular time picker dial

Usage: timepicker <command> [options]

Commands:
  demo      Open the dial in a desktop window
  serve     Serve the dial to browsers over HTTP and websockets
  render    Print one frame's display list as JSON
  init      Write a default timepicker.toml
  version   Print version information
  help      Show this help message

Examples:
  timepicker demo --mode two-step        Two-step dial in a window
  timepicker serve --addr :8080          Browser dial on port 8080
  timepicker render --time 18:45 --format 12h
  timepicker init --yaml                 Write timepicker.yaml instead

Configuration:
  Commands read timepicker.toml (or the file named by --config) from the
  working directory. Missing files fall back to defaults.`)
}
