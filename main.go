package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Jabolol/raytracer/pkg/loaders"
	"github.com/Jabolol/raytracer/pkg/renderer"
)

const exitFailure = 84

// Config holds the parsed CLI flags.
type Config struct {
	ScenePath string
	Fast      bool
	Help      bool
}

func main() {
	config := parseFlags()
	if config.Help {
		showHelp()
		return
	}

	logger := renderer.NewDefaultLogger()

	if config.ScenePath == "" {
		logger.Printf("error: --config <path> is required")
		os.Exit(exitFailure)
	}

	world, camConfig, err := loaders.Load(config.ScenePath)
	if err != nil {
		logger.Printf("error: %v", err)
		os.Exit(exitFailure)
	}

	if config.Fast {
		camConfig.ImageWidth = 300
		camConfig.SamplesPerPixel = 10
		camConfig.MaxDepth = 50
	}

	camera := renderer.NewCamera(camConfig)
	rt := renderer.NewRaytracer(camera, world, logger)

	start := time.Now()
	if err := rt.Render(os.Stdout, 0); err != nil {
		logger.Printf("error: %v", err)
		os.Exit(exitFailure)
	}
	logger.Printf("render completed in %v", time.Since(start))
}

func parseFlags() Config {
	config := Config{}
	flag.StringVar(&config.ScenePath, "config", "", "Path to a TOML scene file")
	flag.BoolVar(&config.Fast, "fast", false, "Override sampling parameters for a quick low-quality render")
	flag.BoolVar(&config.Help, "help", false, "Show help information")
	help := flag.Bool("h", false, "Show help information")
	flag.Parse()
	if *help {
		config.Help = true
	}
	return config
}

func showHelp() {
	fmt.Println("raytracer")
	fmt.Println("Usage: raytracer --config <path> [--fast]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Output is written as PPM (P3) to stdout; render progress is written to stderr.")
}
