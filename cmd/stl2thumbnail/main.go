// Command stl2thumbnail renders thumbnails of 3D-printing source
// files.
//
// Usage:
//
//	stl2thumbnail stl [flags] <input> <output>
//	stl2thumbnail gcode [flags] <input> <output>
//	stl2thumbnail 3mf [flags] <input> <output>
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	stl2thumbnail "github.com/krepa098/stl2thumbnail"
	"github.com/krepa098/stl2thumbnail/internal/encoder"
	"github.com/krepa098/stl2thumbnail/internal/gcode"
	"github.com/krepa098/stl2thumbnail/internal/threemf"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "stl":
		err = commandSTL(os.Args[2:])
	case "gcode":
		err = commandGCode(os.Args[2:])
	case "3mf":
		err = command3MF(os.Args[2:])
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `STL thumbnail generator

commands:
  stl    renders an image of an stl file
  gcode  extracts a thumbnail embedded in a gcode file
  3mf    extracts the thumbnail embedded in a 3mf file

run 'stl2thumbnail <command> -h' for the command's flags`)
}

// sizeFlags registers the flags shared by all commands.
func sizeFlags(fs *flag.FlagSet) (width, height *int) {
	width = fs.Int("w", 256, "width of the generated image")
	height = fs.Int("h", 256, "height of the generated image")
	return
}

// inputOutput validates the two positional arguments.
func inputOutput(fs *flag.FlagSet) (string, string, error) {
	if fs.NArg() != 2 {
		return "", "", fmt.Errorf("expected <input> and <output> arguments")
	}
	return fs.Arg(0), fs.Arg(1), nil
}

func extension(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

func commandSTL(args []string) error {
	fs := flag.NewFlagSet("stl", flag.ExitOnError)
	width, height := sizeFlags(fs)
	turntable := fs.Bool("t", false, "enables turntable mode")
	verbose := fs.Bool("v", false, "be verbose")
	lazy := fs.Bool("l", false, "enables low memory usage mode")
	normals := fs.Bool("n", false, "always recalculate normals")
	sizeHint := fs.Bool("d", false, "draws the dimensions underneath the model (requires a height of at least 256 pixels)")
	grid := fs.Bool("g", false, "show the grid")
	elevation := fs.Float64("cam-elevation", 25, "the camera's elevation in degrees")
	azimuth := fs.Float64("cam-azimuth", 45, "the camera's azimuth in degrees")
	timeout := fs.Uint64("timeout", 0, "time budget for the rendering process in milliseconds, 0 to disable")
	fs.Parse(args)

	input, output, err := inputOutput(fs)
	if err != nil {
		return err
	}
	if extension(input) != "stl" {
		return fmt.Errorf("%s: not an stl file", input)
	}

	settings := stl2thumbnail.DefaultSettings()
	settings.Verbose = *verbose
	settings.Lazy = *lazy
	settings.RecalculateNormals = *normals
	settings.Turntable = *turntable
	settings.SizeHint = *sizeHint && *height >= 256
	settings.Grid = *grid
	settings.CamElevation = float32(*elevation)
	settings.CamAzimuth = float32(*azimuth)
	settings.Timeout = time.Duration(*timeout) * time.Millisecond

	if settings.Verbose {
		fmt.Printf("Size                  '%dx%d'\n", *width, *height)
		fmt.Printf("Input                 '%s'\n", input)
		fmt.Printf("Output                '%s'\n", output)
		fmt.Printf("Recalculate normals   '%v'\n", settings.RecalculateNormals)
		fmt.Printf("Low memory usage mode '%v'\n", settings.Lazy)
		fmt.Printf("Draw dimensions       '%v'\n", settings.SizeHint)
		fmt.Printf("Grid visible          '%v'\n", settings.Grid)
		fmt.Printf("Cam elevation         %v°\n", settings.CamElevation)
		fmt.Printf("Cam azimuth           %v°\n", settings.CamAzimuth)
		fmt.Printf("Timeout               %v\n", settings.Timeout)
	}

	start := time.Now()
	if err := stl2thumbnail.RenderSTLFile(input, output, *width, *height, settings); err != nil {
		return err
	}

	if settings.Verbose {
		fmt.Printf("Saved as '%s' (took %.2fs)\n", output, time.Since(start).Seconds())
	}
	return nil
}

func commandGCode(args []string) error {
	fs := flag.NewFlagSet("gcode", flag.ExitOnError)
	width, height := sizeFlags(fs)
	fs.Parse(args)

	input, output, err := inputOutput(fs)
	if err != nil {
		return err
	}
	if ext := extension(input); ext != "gcode" && ext != "bgcode" {
		return fmt.Errorf("%s: not a gcode file", input)
	}

	previews, err := gcode.ExtractPreviewsFromFile(input)
	if err != nil {
		return err
	}
	if len(previews) == 0 {
		return gcode.ErrNoPreview
	}

	// the last preview is the largest one
	preview := previews[len(previews)-1]
	return encoder.SavePNG(output, preview.ResizeKeepAspectRatio(*width, *height))
}

func command3MF(args []string) error {
	fs := flag.NewFlagSet("3mf", flag.ExitOnError)
	width, height := sizeFlags(fs)
	fs.Parse(args)

	input, output, err := inputOutput(fs)
	if err != nil {
		return err
	}
	if extension(input) != "3mf" {
		return fmt.Errorf("%s: not a 3mf file", input)
	}

	preview, err := threemf.ExtractPreviewFromFile(input)
	if err != nil {
		return err
	}
	return encoder.SavePNG(output, preview.ResizeKeepAspectRatio(*width, *height))
}
