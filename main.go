package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/output"
	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/scene"
)

const scenesDir = "scenes"

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene: 'default', 'shadow', 'mesh', 'sdf' or a path to a .json scene file")
	meshPath := flag.String("mesh", "", "OBJ or PLY model for the 'mesh' scene")
	width := flag.Int("width", 0, "Image width in pixels (0 = scene default)")
	height := flag.Int("height", 0, "Image height in pixels (0 = scene default)")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	ambient := flag.Float64("ambient", 0.1, "Ambient coefficient")
	bias := flag.Float64("bias", 1e-4, "Shadow ray bias")
	format := flag.String("format", "", "Output format: 'ppm', 'png' or 'bmp' (default: from -out extension, else ppm)")
	outPath := flag.String("out", "", "Output file (default output/<scene>/render_<timestamp>.<format>)")
	scale := flag.Float64("scale", 1, "Resize the rendered image by this factor before writing")
	list := flag.Bool("list", false, "List available scenes and exit")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	if *list {
		if err := listScenes(); err != nil {
			fmt.Fprintf(os.Stderr, "Error listing scenes: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logger := renderer.NewDefaultLogger()

	selectedScene, err := createScene(*sceneType, *meshPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating scene: %v\n", err)
		os.Exit(1)
	}
	if *width > 0 {
		selectedScene.Width = *width
	}
	if *height > 0 {
		selectedScene.Height = *height
	}

	// Scene settings override the defaults; explicit flags override both
	config := renderer.MergeRenderConfig(renderer.DefaultRenderConfig(), selectedScene.Settings)
	config.NumWorkers = *workers
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "ambient":
			config.AmbientCoefficient = *ambient
		case "bias":
			config.ShadowBias = *bias
		}
	})

	outputFormat := *format
	if outputFormat == "" {
		outputFormat = output.FormatFromPath(*outPath, output.FormatPPM)
	}
	filename := *outPath
	if filename == "" {
		filename = defaultOutputPath(*sceneType, outputFormat, time.Now())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Starting raycaster (scene %s, %dx%d)...\n", *sceneType, selectedScene.Width, selectedScene.Height)
	img, stats, err := renderer.RenderScene(ctx, selectedScene, config, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Hit ratio: %.1f%% over %d chunks\n", stats.HitRatio()*100, stats.TotalChunks)

	if err := writeImage(filename, outputFormat, img, *scale); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", filename)
}

// createScene builds the selected scene. The mesh scene loads meshPath when
// one is given.
func createScene(sceneType, meshPath string, logger core.Logger) (*scene.Scene, error) {
	if sceneType == "mesh" && meshPath != "" {
		return scene.LoadMeshScene(meshPath, logger)
	}
	return scene.Create(sceneType, scenesDir, logger)
}

// defaultOutputPath returns output/<scene>/render_<timestamp>.<format>. File
// scenes use their base name without extension.
func defaultOutputPath(sceneType, format string, now time.Time) string {
	name := strings.TrimSuffix(filepath.Base(sceneType), filepath.Ext(sceneType))
	if name == "" || name == "." {
		name = "scene"
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", name, fmt.Sprintf("render_%s.%s", timestamp, format))
}

// writeImage optionally resizes img and writes it in the given format
func writeImage(filename, format string, img *renderer.Image, scale float64) error {
	if scale <= 0 {
		return fmt.Errorf("scale must be positive, got %g", scale)
	}
	if scale == 1 {
		return output.WriteFile(filename, img, format)
	}

	width := max(1, int(float64(img.Width)*scale+0.5))
	height := max(1, int(float64(img.Height)*scale+0.5))
	return output.WriteFile(filename, output.Resize(img.ToRGBA(), width, height), format)
}

func listScenes() error {
	groups, err := scene.ListAllScenes(scenesDir)
	if err != nil {
		return err
	}
	for _, group := range groups {
		fmt.Printf("%s:\n", group.Name)
		for _, info := range group.Scenes {
			fmt.Printf("  %-24s %s\n", info.ID, info.Description)
		}
	}
	return nil
}

func showHelp() {
	fmt.Println("Raycaster")
	fmt.Println("Usage: raycaster [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.BuiltinScenes() {
		fmt.Printf("  %-8s - %s\n", info.ID, info.Description)
	}
	fmt.Printf("  <file>   - JSON scene file, or the name of one in %s/\n", scenesDir)
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.<format>")
}
