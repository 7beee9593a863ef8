package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/max-lv/goldsrc-map-generator/pkg/assembly"
	"github.com/max-lv/goldsrc-map-generator/pkg/export"
	"github.com/max-lv/goldsrc-map-generator/pkg/qmap"
)

const version = "1.0.0"

var (
	configPath = flag.String("config", "", "Path to YAML configuration file (required)")
	outputDir  = flag.String("output", ".", "Output directory for generated files")
	seedFlag   = flag.Uint64("seed", 0, "Override the seed from config (0 = use config seed/policy)")
	preview    = flag.Bool("preview", false, "Also write an SVG preview of the generated map")
	verbose    = flag.Bool("verbose", false, "Enable verbose output")
	versionF   = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("mapgen version %s\n", version)
		os.Exit(0)
	}

	if *help {
		printHelp()
		os.Exit(0)
	}

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -config flag is required")
		printUsage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	if *verbose {
		fmt.Printf("Loading configuration from %s\n", *configPath)
	}

	cfg, err := assembly.LoadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if *seedFlag != 0 {
		if *verbose {
			fmt.Printf("Overriding seed from %d to %d\n", cfg.Seed, *seedFlag)
		}
		cfg.Seed = *seedFlag
	}

	if *verbose {
		fmt.Printf("Using seed: %d\n", cfg.Seed)
		fmt.Printf("Tileset: %s\n", cfg.TilesetDir)
	}

	if *verbose {
		fmt.Println("Loading tileset...")
	}
	tileset, err := assembly.LoadTileset(cfg.TilesetDir)
	if err != nil {
		return fmt.Errorf("failed to load tileset: %w", err)
	}
	if *verbose {
		fmt.Printf("  start=%d cap=%d ordinary=%d\n", len(tileset.Start), len(tileset.Cap), len(tileset.Ordinary))
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	asm := assembly.NewAssembler(qmap.EmptyBase(), tileset, cfg.Options, cfg.Seed)

	start := time.Now()
	if *verbose {
		fmt.Println("Generating map...")
	}

	result, err := asm.Run(ctx)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	elapsed := time.Since(start)
	if *verbose {
		fmt.Printf("Generation completed in %v\n", elapsed)
		printStats(result)
	}

	if !result.Success {
		fmt.Fprintf(os.Stderr, "generation did not close: %s\n", result.FailureReason)
		return fmt.Errorf("assembly failed: %s", result.FailureReason)
	}

	baseName := fmt.Sprintf("map_%d", cfg.Seed)
	if err := exportMap(result.Root, baseName); err != nil {
		return err
	}

	if *preview {
		if err := exportPreview(result.Root, baseName, cfg.Seed); err != nil {
			return err
		}
	}

	fmt.Printf("Successfully generated map (seed=%d) in %v\n", cfg.Seed, elapsed)
	return nil
}

func exportMap(root *qmap.Map, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".map")
	if *verbose {
		fmt.Printf("Writing map to %s\n", filename)
	}

	data := qmap.Serialize(root)
	if err := os.WriteFile(filename, []byte(data), 0644); err != nil {
		return fmt.Errorf("failed to write map: %w", err)
	}
	return nil
}

func exportPreview(root *qmap.Map, baseName string, seed uint64) error {
	filename := filepath.Join(*outputDir, baseName+".svg")
	if *verbose {
		fmt.Printf("Writing preview to %s\n", filename)
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create preview file: %w", err)
	}
	defer f.Close()

	opts := export.DefaultOptions()
	opts.Title = fmt.Sprintf("Generated Map (seed=%d)", seed)
	if err := export.WriteSVG(root, f, opts); err != nil {
		return fmt.Errorf("failed to export preview: %w", err)
	}
	return nil
}

func printStats(result *assembly.Result) {
	fmt.Println("\nAssembly statistics:")
	fmt.Printf("  Placed tiles: %d\n", len(result.PlacedTiles))
	for _, name := range result.PlacedTiles {
		fmt.Printf("    - %s\n", name)
	}
	fmt.Printf("  Success: %v\n", result.Success)
	if !result.Success {
		fmt.Printf("  Failure reason: %s\n", result.FailureReason)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: mapgen -config <config.yaml> [options]")
	fmt.Fprintln(os.Stderr, "\nRun 'mapgen -help' for detailed help")
}

func printHelp() {
	fmt.Printf("mapgen version %s\n\n", version)
	fmt.Println("A command-line tool for procedurally assembling brush-based maps from a tileset.")
	fmt.Println("\nUsage:")
	fmt.Println("  mapgen -config <config.yaml> [options]")
	fmt.Println("\nRequired Flags:")
	fmt.Println("  -config string")
	fmt.Println("        Path to YAML configuration file")
	fmt.Println("\nOptional Flags:")
	fmt.Println("  -output string")
	fmt.Println("        Output directory for generated files (default: current directory)")
	fmt.Println("  -seed uint")
	fmt.Println("        Override the seed from config (0 = use config seed/policy) (default: 0)")
	fmt.Println("  -preview")
	fmt.Println("        Also write an SVG preview of the generated map")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose output")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  # Generate a map from a tileset directory")
	fmt.Println("  mapgen -config mapgen.yaml")
	fmt.Println("\n  # Generate with a fixed seed and a preview SVG")
	fmt.Println("  mapgen -config mapgen.yaml -seed 1337 -preview -output ./out")
	fmt.Println("\nConfiguration File:")
	fmt.Println("  The YAML configuration file specifies:")
	fmt.Println("  - seed / forceSeed (seed policy: force=1337, override, else random 9-digit)")
	fmt.Println("  - tilesetDir (directory of start*/cap*/ordinary .map tiles)")
	fmt.Println("  - options (tileLimit, boundaryLimit, attemptsPerConnector)")
}
