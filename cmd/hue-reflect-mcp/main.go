package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/hue-reflect/internal/config"
	"github.com/ironsheep/hue-reflect/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("hue-reflect-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("hue-reflect-mcp - MCP server for hue reflection")
			fmt.Println()
			fmt.Println("Usage: hue-reflect-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  HUE_REFLECT_LOG_LEVEL=debug  Enable debug logging")
			fmt.Println("  HUE_REFLECT_WORKERS=n        Default row worker count (0 = CPUs)")
			fmt.Println("  HUE_REFLECT_CONFIG=path      Optional YAML config file")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load(os.Getenv("HUE_REFLECT_CONFIG"))
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	if cfg.Debug() {
		log.Printf("Hue Reflect MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.FromConfig(cfg, Version)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
