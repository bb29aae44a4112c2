package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gridforge/dungeon/internal/render"
	"github.com/gridforge/dungeon/pkg/dungeon"
	"github.com/gridforge/dungeon/pkg/tile"
)

const version = "1.0.0"

var (
	configPath = flag.String("config", "", "Path to YAML request file")
	width      = flag.Int("width", 41, "Stage width (ignored if -config is set)")
	height     = flag.Int("height", 41, "Stage height (ignored if -config is set)")
	seedFlag   = flag.String("seed", "", "Override the seed (empty = auto-generate, or use config seed)")
	outputDir  = flag.String("output", ".", "Output directory for -svg/-json")
	svgOut     = flag.Bool("svg", false, "Write an SVG debug visualization")
	jsonOut    = flag.Bool("json", false, "Write a JSON tile dump")
	verbose    = flag.Bool("verbose", false, "Enable verbose output")
	versionF   = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("dungeongen version %s\n", version)
		os.Exit(0)
	}
	if *help {
		printHelp()
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	req, err := loadRequest()
	if err != nil {
		return fmt.Errorf("failed to load request: %w", err)
	}
	if *seedFlag != "" {
		req.Seed = *seedFlag
	}

	if *verbose {
		fmt.Printf("Generating %dx%d dungeon, seed=%q\n", req.Width, req.Height, req.Seed)
	}

	start := time.Now()
	results, err := dungeon.Build(*req)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	elapsed := time.Since(start)

	if *verbose {
		fmt.Printf("Generated in %v (seed=%s, rooms=%d)\n", elapsed, results.Seed, len(results.Rooms))
	}

	fmt.Print(results.RenderText())

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	baseName := fmt.Sprintf("dungeon_%s", results.Seed)

	if *svgOut {
		if err := writeSVG(results, baseName); err != nil {
			return err
		}
	}
	if *jsonOut {
		if err := writeJSON(results, baseName); err != nil {
			return err
		}
	}

	return nil
}

func loadRequest() (*dungeon.Request, error) {
	if *configPath != "" {
		return dungeon.LoadRequest(*configPath)
	}
	req := dungeon.DefaultRequest()
	req.Width, req.Height = *width, *height
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &req, nil
}

func writeSVG(results *dungeon.Results, baseName string) error {
	data, err := render.SVG(results, render.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to render SVG: %w", err)
	}
	filename := filepath.Join(*outputDir, baseName+".svg")
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write SVG: %w", err)
	}
	if *verbose {
		fmt.Printf("Wrote %s (%d bytes)\n", filename, len(data))
	}
	return nil
}

func writeJSON(results *dungeon.Results, baseName string) error {
	data, err := tilesJSON(results)
	if err != nil {
		return fmt.Errorf("failed to marshal tiles: %w", err)
	}
	filename := filepath.Join(*outputDir, baseName+".json")
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	if *verbose {
		fmt.Printf("Wrote %s (%d bytes)\n", filename, len(data))
	}
	return nil
}

func tilesJSON(results *dungeon.Results) ([]byte, error) {
	tiles := make([]tile.Tile, 0, results.Width()*results.Height())
	results.Each(func(t *tile.Tile) {
		tiles = append(tiles, *t)
	})
	return json.Marshal(tiles)
}

func printHelp() {
	fmt.Printf("dungeongen version %s\n\n", version)
	fmt.Println("A command-line tool for generating procedural grid dungeons.")
	fmt.Println("\nUsage:")
	fmt.Println("  dungeongen [-config request.yaml] [options]")
	fmt.Println("\nFlags:")
	flag.PrintDefaults()
	fmt.Println("\nExamples:")
	fmt.Println("  dungeongen -width 41 -height 41 -seed demo")
	fmt.Println("  dungeongen -config request.yaml -svg -output ./out")
}
